package yahoo

import (
	"errors"
	"testing"
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/apperrors"
)

func chartResponse(timestamps []int64, closes []*float64, events *Events) Response {
	return Response{
		Chart: Chart{
			Result: []Result{
				{
					Meta: Meta{
						Symbol:   "TEST",
						Currency: "USD",
					},
					Timestamp: timestamps,
					Events:    events,
					Indicators: IndicatorsContainer{
						Quote: []Quote{{Close: closes}},
					},
				},
			},
		},
	}
}

func f(v float64) *float64 { return &v }

func TestParseChart(t *testing.T) {
	client := NewFinanceClient()

	jan1 := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan2 := jan1.AddDate(0, 0, 1)
	jan3 := jan1.AddDate(0, 0, 2)

	t.Run("parses prices and sorted dividends", func(t *testing.T) {
		resp := chartResponse(
			[]int64{jan1.Unix(), jan2.Unix(), jan3.Unix()},
			[]*float64{f(100), f(101), f(102)},
			&Events{Dividends: map[string]DividendEvent{
				"1578009600": {Amount: 0.5, Date: jan3.Unix()},
				"1577836800": {Amount: 0.4, Date: jan1.Unix()},
			}},
		)

		chart, err := client.ParseChart(resp)
		if err != nil {
			t.Fatalf("ParseChart() returned unexpected error: %v", err)
		}

		if len(chart.Indicators) != 3 {
			t.Fatalf("Expected 3 indicators, got %d", len(chart.Indicators))
		}
		if !chart.Indicators[0].Date.Equal(jan1) || chart.Indicators[0].PriceClose != 100 {
			t.Errorf("Indicators[0] = %+v, want %v at 100", chart.Indicators[0], jan1)
		}

		if len(chart.Dividends) != 2 {
			t.Fatalf("Expected 2 dividends, got %d", len(chart.Dividends))
		}
		if !chart.Dividends[0].ExDate.Before(chart.Dividends[1].ExDate) {
			t.Error("Dividends are not sorted by ex-date")
		}
		if chart.Dividends[0].Amount != 0.4 {
			t.Errorf("Dividends[0].Amount = %v, want 0.4", chart.Dividends[0].Amount)
		}
	})

	t.Run("drops days with null closes", func(t *testing.T) {
		resp := chartResponse(
			[]int64{jan1.Unix(), jan2.Unix(), jan3.Unix()},
			[]*float64{f(100), nil, f(102)},
			nil,
		)

		chart, err := client.ParseChart(resp)
		if err != nil {
			t.Fatalf("ParseChart() returned unexpected error: %v", err)
		}

		if len(chart.Indicators) != 2 {
			t.Fatalf("Expected 2 indicators, got %d", len(chart.Indicators))
		}
		if !chart.Indicators[1].Date.Equal(jan3) {
			t.Errorf("Indicators[1].Date = %v, want %v", chart.Indicators[1].Date, jan3)
		}
	})

	t.Run("no chart results", func(t *testing.T) {
		_, err := client.ParseChart(Response{})
		if !errors.Is(err, apperrors.ErrNoData) {
			t.Errorf("Expected ErrNoData, got %v", err)
		}
	})

	t.Run("no timestamps", func(t *testing.T) {
		_, err := client.ParseChart(chartResponse(nil, []*float64{f(1)}, nil))
		if !errors.Is(err, apperrors.ErrNoData) {
			t.Errorf("Expected ErrNoData, got %v", err)
		}
	})

	t.Run("all closes null", func(t *testing.T) {
		_, err := client.ParseChart(chartResponse(
			[]int64{jan1.Unix(), jan2.Unix()},
			[]*float64{nil, nil},
			nil,
		))
		if !errors.Is(err, apperrors.ErrNoData) {
			t.Errorf("Expected ErrNoData, got %v", err)
		}
	})

	t.Run("mismatched array lengths", func(t *testing.T) {
		_, err := client.ParseChart(chartResponse(
			[]int64{jan1.Unix(), jan2.Unix()},
			[]*float64{f(100)},
			nil,
		))
		if !errors.Is(err, apperrors.ErrMalformedChart) {
			t.Errorf("Expected ErrMalformedChart, got %v", err)
		}
	})

	t.Run("duplicate trading dates", func(t *testing.T) {
		_, err := client.ParseChart(chartResponse(
			[]int64{jan1.Unix(), jan1.Unix()},
			[]*float64{f(100), f(101)},
			nil,
		))
		if !errors.Is(err, apperrors.ErrMalformedChart) {
			t.Errorf("Expected ErrMalformedChart, got %v", err)
		}
	})

	t.Run("non-monotonic trading dates", func(t *testing.T) {
		_, err := client.ParseChart(chartResponse(
			[]int64{jan2.Unix(), jan1.Unix()},
			[]*float64{f(100), f(101)},
			nil,
		))
		if !errors.Is(err, apperrors.ErrMalformedChart) {
			t.Errorf("Expected ErrMalformedChart, got %v", err)
		}
	})

	t.Run("intraday timestamps collapse onto the same trading day", func(t *testing.T) {
		// Yahoo reports market-open timestamps; two entries within one UTC
		// day must be rejected as duplicates after truncation.
		_, err := client.ParseChart(chartResponse(
			[]int64{jan1.Add(14 * time.Hour).Unix(), jan1.Add(15 * time.Hour).Unix()},
			[]*float64{f(100), f(101)},
			nil,
		))
		if !errors.Is(err, apperrors.ErrMalformedChart) {
			t.Errorf("Expected ErrMalformedChart, got %v", err)
		}
	})
}
