package model

import "time"

// PricePoint represents one trading day's closing price for a symbol.
// Dates are truncated to midnight UTC and strictly increasing within a series.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// DividendPayment represents a single per-share dividend payment.
// Payment series are sparse: only dates with an actual payment appear.
type DividendPayment struct {
	ExDate time.Time
	Amount float64
}

// ReturnBundle holds the parallel value tracks computed for one symbol.
// All slices share the same length and date domain as the fetched price
// series. The normalized tracks equal 1.0 at the first date.
type ReturnBundle struct {
	Dates []time.Time

	// RegularPrice is the unmodified closing price.
	RegularPrice []float64

	// CumulativeDividends is the running total of per-share dividends paid
	// up to and including each date.
	CumulativeDividends []float64

	// DividendsPaid is the closing price plus cumulative dividends, i.e. the
	// value of one share with all dividends collected as cash.
	DividendsPaid []float64

	// SharesHeld simulates reinvestment: it starts at 1.0 and grows each
	// time a dividend buys additional fractional shares at that day's close.
	SharesHeld []float64

	// DividendsReinvested is SharesHeld times the closing price.
	DividendsReinvested []float64

	NormalizedRegularPrice        []float64
	NormalizedDividendsPaid       []float64
	NormalizedDividendsReinvested []float64
}

// Len returns the number of trading days in the bundle.
func (b ReturnBundle) Len() int {
	return len(b.Dates)
}
