package series

import (
	"fmt"
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/apperrors"
	"github.com/mwalraven/stock-comparison-backend/internal/model"
)

// BuildReturns derives the three value tracks for one symbol from its daily
// closing prices and the dividend series already aligned onto the same date
// domain (see AlignDividends).
//
// The tracks are:
//   - regular price: the close, unmodified
//   - dividends paid: close plus the running total of dividends to date
//   - dividends reinvested: each dividend buys additional fractional shares
//     at that day's close; the track is shares held times the close
//
// Each track is also normalized to 1.0 at the first date so symbols with
// different absolute prices can be compared.
//
// Returns ErrEmptySeries for an empty price series, ErrMisalignedSeries if
// the two inputs differ in length, and ErrInvalidPrice if a zero or
// negative close would have to serve as a divisor (reinvesting a positive
// dividend cash amount, or normalizing against the first close).
func BuildReturns(prices []model.PricePoint, alignedDividends []float64) (model.ReturnBundle, error) {
	if len(prices) == 0 {
		return model.ReturnBundle{}, apperrors.ErrEmptySeries
	}
	if len(prices) != len(alignedDividends) {
		return model.ReturnBundle{}, fmt.Errorf(
			"%w: %d prices vs %d aligned dividends",
			apperrors.ErrMisalignedSeries, len(prices), len(alignedDividends),
		)
	}

	n := len(prices)
	b := model.ReturnBundle{
		Dates:                         make([]time.Time, n),
		RegularPrice:                  make([]float64, n),
		CumulativeDividends:           make([]float64, n),
		DividendsPaid:                 make([]float64, n),
		SharesHeld:                    make([]float64, n),
		DividendsReinvested:           make([]float64, n),
		NormalizedRegularPrice:        make([]float64, n),
		NormalizedDividendsPaid:       make([]float64, n),
		NormalizedDividendsReinvested: make([]float64, n),
	}

	var cumulative float64
	for i, p := range prices {
		b.Dates[i] = p.Date
		b.RegularPrice[i] = p.Close
		cumulative += alignedDividends[i]
		b.CumulativeDividends[i] = cumulative
		b.DividendsPaid[i] = p.Close + cumulative
	}

	// Reinvestment is a strict left-to-right fold: each day's share count
	// depends on the previous day's.
	b.SharesHeld[0] = 1.0
	for i := 1; i < n; i++ {
		shares := b.SharesHeld[i-1]
		dividendCash := alignedDividends[i] * shares
		if dividendCash > 0 {
			if prices[i].Close <= 0 {
				return model.ReturnBundle{}, fmt.Errorf(
					"%w: close %.4f on %s with %.4f dividend cash to reinvest",
					apperrors.ErrInvalidPrice, prices[i].Close,
					prices[i].Date.Format("2006-01-02"), dividendCash,
				)
			}
			shares += dividendCash / prices[i].Close
		}
		b.SharesHeld[i] = shares
	}
	for i := 0; i < n; i++ {
		b.DividendsReinvested[i] = b.SharesHeld[i] * prices[i].Close
	}

	if prices[0].Close <= 0 {
		return model.ReturnBundle{}, fmt.Errorf(
			"%w: first close %.4f on %s cannot be used for normalization",
			apperrors.ErrInvalidPrice, prices[0].Close,
			prices[0].Date.Format("2006-01-02"),
		)
	}
	for i := 0; i < n; i++ {
		b.NormalizedRegularPrice[i] = b.RegularPrice[i] / b.RegularPrice[0]
		b.NormalizedDividendsPaid[i] = b.DividendsPaid[i] / b.DividendsPaid[0]
		b.NormalizedDividendsReinvested[i] = b.DividendsReinvested[i] / b.DividendsReinvested[0]
	}

	return b, nil
}
