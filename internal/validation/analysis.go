package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/apperrors"
	"github.com/mwalraven/stock-comparison-backend/internal/model"
)

// MaxTickers is the maximum number of stock tickers in one comparison,
// not counting the optional major index.
const MaxTickers = 5

// tickerPattern matches plausible ticker symbols after uppercasing:
// letters, digits, and the separators Yahoo uses (dots, dashes, carets).
var tickerPattern = regexp.MustCompile(`^[A-Z0-9.^-]{1,10}$`)

// ParseAnalysisRequest validates the user-facing inputs and converts them
// into the symbol list and start date consumed by the analysis service.
//
// Rules:
//   - tickers are trimmed and uppercased; blanks are dropped
//   - between 1 and MaxTickers tickers remain after cleanup, unless an
//     index alone is requested
//   - indexName, when non-empty, must be one of model.MajorIndices and is
//     appended after the tickers under its display name
//   - startDate must be in YYYY-MM-DD form
func ParseAnalysisRequest(tickers []string, indexName, startDate string) ([]model.SymbolRequest, time.Time, error) {
	symbols := make([]model.SymbolRequest, 0, len(tickers)+1)
	for _, raw := range tickers {
		ticker := strings.ToUpper(strings.TrimSpace(raw))
		if ticker == "" {
			continue
		}
		if !tickerPattern.MatchString(ticker) {
			return nil, time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTicker, raw)
		}
		symbols = append(symbols, model.SymbolRequest{FetchKey: ticker, DisplayName: ticker})
	}
	if len(symbols) > MaxTickers {
		return nil, time.Time{}, fmt.Errorf("%w: got %d, maximum is %d", apperrors.ErrTooManyTickers, len(symbols), MaxTickers)
	}

	if indexName != "" {
		index, ok := model.LookupMajorIndex(indexName)
		if !ok {
			return nil, time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownIndex, indexName)
		}
		symbols = append(symbols, model.SymbolRequest{FetchKey: index.Symbol, DisplayName: index.Name})
	}

	if len(symbols) == 0 {
		return nil, time.Time{}, apperrors.ErrNoTickers
	}

	start, err := time.ParseInLocation("2006-01-02", startDate, time.UTC)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", apperrors.ErrInvalidStartDate, startDate)
	}

	return symbols, start, nil
}
