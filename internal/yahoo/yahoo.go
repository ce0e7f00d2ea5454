package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/apperrors"
)

// Client is the interface consumed by services that need price and
// dividend history. It exists so tests can substitute a mock client.
type Client interface {
	QueryYahooSymbolByDateRange(ctx context.Context, symbol string, startDate, endDate time.Time) (Response, error)
	ParseChart(yahooResult Response) (PriceChart, error)
}

// FinanceClient provides methods for fetching financial data from the
// Yahoo Finance chart API. It wraps an HTTP client and requests daily
// unadjusted price history with dividend events included.
type FinanceClient struct {
	httpClient *http.Client
}

// NewFinanceClient creates a new Yahoo Finance client with default HTTP
// settings. Request deadlines are controlled by the caller's context.
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{},
	}
}

// QueryYahooSymbolByDateRange fetches daily price data and dividend events
// for a symbol within a specific date range.
//
// Adjusted-close semantics are disabled (includeAdjustedClose=false): the
// caller performs its own dividend adjustment, so the raw close is
// required. Dividend events are requested with events=div.
//
// Returns an error wrapping apperrors.ErrNoData when Yahoo returns no
// results for the symbol.
func (c *FinanceClient) QueryYahooSymbolByDateRange(ctx context.Context, symbol string, startDate, endDate time.Time) (Response, error) {
	url := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d&events=div&includeAdjustedClose=false",
		symbol,
		startDate.Unix(),
		endDate.Unix(),
	)
	result, err := c.queryYahoo(ctx, url)
	if err != nil {
		return Response{}, err
	}
	if len(result.Chart.Result) == 0 {
		return Response{}, fmt.Errorf("%w: no results returned for symbol %s", apperrors.ErrNoData, symbol)
	}

	return result, nil
}

// ParseChart converts a raw Yahoo Finance API response into a structured
// price chart with one Indicators entry per trading day and the dividend
// payments sorted by ex-date.
//
// Days with a null close are dropped (Yahoo reports null for holidays and
// halts). The method validates that:
//   - timestamp and close data are present (apperrors.ErrNoData otherwise)
//   - data arrays have matching lengths (apperrors.ErrMalformedChart)
//   - dates are strictly increasing with no duplicates (apperrors.ErrMalformedChart)
func (c *FinanceClient) ParseChart(yahooResult Response) (PriceChart, error) {
	if len(yahooResult.Chart.Result) == 0 {
		return PriceChart{}, fmt.Errorf("%w: empty chart result", apperrors.ErrNoData)
	}
	result := yahooResult.Chart.Result[0]

	if len(result.Timestamp) == 0 {
		return PriceChart{}, fmt.Errorf("%w: no price data returned", apperrors.ErrNoData)
	}
	if len(result.Indicators.Quote) == 0 || len(result.Indicators.Quote[0].Close) == 0 {
		return PriceChart{}, fmt.Errorf("%w: no close prices returned", apperrors.ErrNoData)
	}

	quote := result.Indicators.Quote[0]
	if len(quote.Close) != len(result.Timestamp) {
		return PriceChart{}, fmt.Errorf("%w: mismatched data lengths", apperrors.ErrMalformedChart)
	}

	indicators := make([]Indicators, 0, len(result.Timestamp))
	var prevDate time.Time
	for i, v := range result.Timestamp {
		if quote.Close[i] == nil {
			continue
		}
		date := time.Unix(v, 0).UTC().Truncate(24 * time.Hour)
		if !prevDate.IsZero() && !date.After(prevDate) {
			return PriceChart{}, fmt.Errorf(
				"%w: timestamps not strictly increasing at %s",
				apperrors.ErrMalformedChart, date.Format("2006-01-02"),
			)
		}
		prevDate = date

		indicators = append(indicators, Indicators{
			Date:       date,
			PriceOpen:  floatAt(quote.Open, i),
			PriceClose: *quote.Close[i],
			Volume:     intAt(quote.Volume, i),
			PriceHigh:  floatAt(quote.High, i),
			PriceLow:   floatAt(quote.Low, i),
		})
	}
	if len(indicators) == 0 {
		return PriceChart{}, fmt.Errorf("%w: all close prices null", apperrors.ErrNoData)
	}

	var dividends []Dividend
	if result.Events != nil {
		dividends = make([]Dividend, 0, len(result.Events.Dividends))
		for _, ev := range result.Events.Dividends {
			dividends = append(dividends, Dividend{
				ExDate: time.Unix(ev.Date, 0).UTC().Truncate(24 * time.Hour),
				Amount: ev.Amount,
			})
		}
		sort.Slice(dividends, func(i, j int) bool {
			return dividends[i].ExDate.Before(dividends[j].ExDate)
		})
	}

	return PriceChart{
		Symbol:           result.Meta.Symbol,
		Currency:         result.Meta.Currency,
		ExchangeName:     result.Meta.ExchangeName,
		FullExchangeName: result.Meta.FullExchangeName,
		LongName:         result.Meta.LongName,
		Shortname:        result.Meta.Shortname,
		Indicators:       indicators,
		Dividends:        dividends,
	}, nil
}

// floatAt safely dereferences an optional float array entry.
func floatAt(arr []*float64, i int) float64 {
	if i >= len(arr) || arr[i] == nil {
		return 0
	}
	return *arr[i]
}

// intAt safely dereferences an optional int array entry.
func intAt(arr []*int64, i int) int64 {
	if i >= len(arr) || arr[i] == nil {
		return 0
	}
	return *arr[i]
}

// queryYahoo is an internal helper that executes HTTP requests to the
// Yahoo Finance API. It sets the headers Yahoo requires (a browser-like
// User-Agent, JSON accept) and surfaces API-level errors from the payload.
func (c *FinanceClient) queryYahoo(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return response, nil
}
