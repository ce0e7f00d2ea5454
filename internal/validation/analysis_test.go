package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/apperrors"
)

func TestParseAnalysisRequest(t *testing.T) {
	t.Run("uppercases and trims tickers", func(t *testing.T) {
		symbols, start, err := ParseAnalysisRequest([]string{" aapl ", "msft"}, "", "2020-01-01")
		if err != nil {
			t.Fatalf("ParseAnalysisRequest() returned unexpected error: %v", err)
		}

		if len(symbols) != 2 {
			t.Fatalf("Expected 2 symbols, got %d", len(symbols))
		}
		if symbols[0].FetchKey != "AAPL" || symbols[0].DisplayName != "AAPL" {
			t.Errorf("symbols[0] = %+v, want AAPL/AAPL", symbols[0])
		}
		if !start.Equal(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("start = %v, want 2020-01-01 UTC", start)
		}
	})

	t.Run("drops blank tickers", func(t *testing.T) {
		symbols, _, err := ParseAnalysisRequest([]string{"AAPL", "", "   "}, "", "2020-01-01")
		if err != nil {
			t.Fatalf("ParseAnalysisRequest() returned unexpected error: %v", err)
		}
		if len(symbols) != 1 {
			t.Errorf("Expected 1 symbol, got %d", len(symbols))
		}
	})

	t.Run("appends the selected index under its display name", func(t *testing.T) {
		symbols, _, err := ParseAnalysisRequest([]string{"AAPL"}, "S&P 500", "2020-01-01")
		if err != nil {
			t.Fatalf("ParseAnalysisRequest() returned unexpected error: %v", err)
		}

		if len(symbols) != 2 {
			t.Fatalf("Expected 2 symbols, got %d", len(symbols))
		}
		last := symbols[len(symbols)-1]
		if last.FetchKey != "^GSPC" || last.DisplayName != "S&P 500" {
			t.Errorf("Index symbol = %+v, want ^GSPC / S&P 500", last)
		}
	})

	t.Run("index alone is a valid request", func(t *testing.T) {
		symbols, _, err := ParseAnalysisRequest(nil, "FTSE 100", "2020-01-01")
		if err != nil {
			t.Fatalf("ParseAnalysisRequest() returned unexpected error: %v", err)
		}
		if len(symbols) != 1 || symbols[0].FetchKey != "^FTSE" {
			t.Errorf("symbols = %+v, want [^FTSE]", symbols)
		}
	})

	t.Run("rejects an empty request", func(t *testing.T) {
		_, _, err := ParseAnalysisRequest(nil, "", "2020-01-01")
		if !errors.Is(err, apperrors.ErrNoTickers) {
			t.Errorf("Expected ErrNoTickers, got %v", err)
		}
	})

	t.Run("rejects more than five tickers", func(t *testing.T) {
		_, _, err := ParseAnalysisRequest(
			[]string{"A", "B", "C", "D", "E", "F"}, "", "2020-01-01",
		)
		if !errors.Is(err, apperrors.ErrTooManyTickers) {
			t.Errorf("Expected ErrTooManyTickers, got %v", err)
		}
	})

	t.Run("five tickers plus an index is allowed", func(t *testing.T) {
		symbols, _, err := ParseAnalysisRequest(
			[]string{"A", "B", "C", "D", "E"}, "Dow Jones", "2020-01-01",
		)
		if err != nil {
			t.Fatalf("ParseAnalysisRequest() returned unexpected error: %v", err)
		}
		if len(symbols) != 6 {
			t.Errorf("Expected 6 symbols, got %d", len(symbols))
		}
	})

	t.Run("rejects implausible ticker symbols", func(t *testing.T) {
		for _, ticker := range []string{"AA PL", "A;DROP", "WAYTOOLONGTICKER"} {
			_, _, err := ParseAnalysisRequest([]string{ticker}, "", "2020-01-01")
			if !errors.Is(err, apperrors.ErrInvalidTicker) {
				t.Errorf("Ticker %q: expected ErrInvalidTicker, got %v", ticker, err)
			}
		}
	})

	t.Run("rejects an unknown index", func(t *testing.T) {
		_, _, err := ParseAnalysisRequest([]string{"AAPL"}, "CAC 40", "2020-01-01")
		if !errors.Is(err, apperrors.ErrUnknownIndex) {
			t.Errorf("Expected ErrUnknownIndex, got %v", err)
		}
	})

	t.Run("rejects a malformed start date", func(t *testing.T) {
		for _, date := range []string{"", "01-01-2020", "2020/01/01", "yesterday"} {
			_, _, err := ParseAnalysisRequest([]string{"AAPL"}, "", date)
			if !errors.Is(err, apperrors.ErrInvalidStartDate) {
				t.Errorf("Date %q: expected ErrInvalidStartDate, got %v", date, err)
			}
		}
	})
}
