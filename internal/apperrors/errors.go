package apperrors

import "errors"

// Data availability errors represent symbols for which the external data
// source returned nothing usable. These are contained per symbol: the
// orchestrator records a warning and continues with the remaining symbols.
var (
	// ErrNoData indicates that the data source returned an empty price
	// history for a symbol (unknown ticker, or no data in the requested range).
	ErrNoData = errors.New("no price data available")

	// ErrMalformedChart indicates that the data source returned a chart that
	// violates basic structural guarantees (mismatched array lengths,
	// duplicate or non-monotonic trading dates).
	ErrMalformedChart = errors.New("malformed chart data")
)

// Core computation errors represent precondition violations inside the
// return-series builder. They should not occur when the orchestrator has
// pre-filtered empty fetches, but the builder guards them explicitly.
var (
	// ErrEmptySeries indicates that a zero-length price series reached the
	// return-series builder.
	ErrEmptySeries = errors.New("empty price series")

	// ErrMisalignedSeries indicates that the price series and the aligned
	// dividend series do not share the same length.
	ErrMisalignedSeries = errors.New("misaligned price and dividend series")

	// ErrInvalidPrice indicates a zero or negative closing price at a point
	// where it must be used as a divisor (reinvesting dividend cash, or
	// normalizing against the first close).
	ErrInvalidPrice = errors.New("invalid closing price")
)

// Request validation errors represent rejected user input. These surface as
// 400 responses before any fetch is attempted.
var (
	// ErrNoTickers indicates that the request contained no tickers and no index.
	ErrNoTickers = errors.New("at least one ticker or index is required")

	// ErrTooManyTickers indicates that the request exceeded the ticker limit.
	ErrTooManyTickers = errors.New("too many tickers")

	// ErrInvalidTicker indicates a ticker that is empty or not a plausible symbol.
	ErrInvalidTicker = errors.New("invalid ticker symbol")

	// ErrUnknownIndex indicates an index name outside the supported set.
	ErrUnknownIndex = errors.New("unknown index")

	// ErrInvalidStartDate indicates a start date not in YYYY-MM-DD format.
	ErrInvalidStartDate = errors.New("invalid start date")
)
