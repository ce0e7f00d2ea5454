package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/yahoo"
)

// MockYahooClient is a mock implementation of yahoo.Client for testing.
// It returns predefined test data instead of making actual API calls.
// Per-symbol responses take precedence over the default MockResponse.
type MockYahooClient struct {
	// MockResponse is the default response returned from query methods
	MockResponse yahoo.Response
	// MockResponses maps a symbol to its specific response
	MockResponses map[string]yahoo.Response
	// MockError is the error to return from query methods
	MockError error
	// QueryCount tracks how many times a query method was called
	QueryCount int
	// QueriedSymbols records the symbols queried, in call order
	QueriedSymbols []string
}

// NewMockYahooClient creates a new mock Yahoo client with default test data:
// five days of history for a symbol paying no dividends.
func NewMockYahooClient() *MockYahooClient {
	return &MockYahooClient{
		MockResponse:  CreateMockYahooResponse(5),
		MockResponses: make(map[string]yahoo.Response),
	}
}

// QueryYahooSymbolByDateRange mocks the date range query with predefined
// test data. The context is honored so timeout behavior can be exercised.
func (m *MockYahooClient) QueryYahooSymbolByDateRange(ctx context.Context, symbol string, _, _ time.Time) (yahoo.Response, error) {
	m.QueryCount++
	m.QueriedSymbols = append(m.QueriedSymbols, symbol)
	if err := ctx.Err(); err != nil {
		return yahoo.Response{}, err
	}
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	if resp, ok := m.MockResponses[symbol]; ok {
		return resp, nil
	}
	return m.MockResponse, nil
}

// ParseChart delegates to the real ParseChart method since it's pure logic
// with no side effects.
func (m *MockYahooClient) ParseChart(yahooResult yahoo.Response) (yahoo.PriceChart, error) {
	client := yahoo.NewFinanceClient()
	return client.ParseChart(yahooResult)
}

// WithError configures the mock to return the specified error.
func (m *MockYahooClient) WithError(err error) *MockYahooClient {
	m.MockError = err
	return m
}

// WithResponse configures the default response.
func (m *MockYahooClient) WithResponse(resp yahoo.Response) *MockYahooClient {
	m.MockResponse = resp
	return m
}

// WithResponseForSymbol configures the response returned for one symbol.
func (m *MockYahooClient) WithResponseForSymbol(symbol string, resp yahoo.Response) *MockYahooClient {
	m.MockResponses[symbol] = resp
	return m
}

// WithEmptyResponse configures the default response to contain no data.
func (m *MockYahooClient) WithEmptyResponse() *MockYahooClient {
	m.MockResponse = EmptyYahooResponse()
	return m
}

// EmptyYahooResponse returns a response with no chart results, which the
// client treats as "no data available" for the symbol.
func EmptyYahooResponse() yahoo.Response {
	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{},
		},
	}
}

// CreateMockYahooResponse creates a mock Yahoo Finance API response with
// `days` days of price data ending yesterday. Prices follow a gentle drift
// from a base of 100 and carry no dividend events.
func CreateMockYahooResponse(days int) yahoo.Response {
	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, time.UTC)
	start := yesterday.AddDate(0, 0, -days+1)

	closes := make([]float64, days)
	for i := 0; i < days; i++ {
		closes[i] = 100.0 + float64(i)*0.5
	}
	return CreateMockChartResponse("TEST", start, closes, nil)
}

// CreateMockChartResponse builds a chart response with one trading day per
// entry of closes, starting at start and advancing one calendar day at a
// time. dividends maps a day offset (0-based index into closes) to a
// per-share dividend amount paid that day.
func CreateMockChartResponse(symbol string, start time.Time, closes []float64, dividends map[int]float64) yahoo.Response {
	days := len(closes)
	timestamps := make([]int64, days)
	opens := make([]*float64, days)
	highs := make([]*float64, days)
	lows := make([]*float64, days)
	closePtrs := make([]*float64, days)
	volumes := make([]*int64, days)

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		timestamps[i] = date.Unix()

		c := closes[i]
		open := c - 0.25
		high := c + 1.0
		low := c - 0.5
		volume := int64(1000000 + i*10000)

		opens[i] = &open
		highs[i] = &high
		lows[i] = &low
		closePtrs[i] = &c
		volumes[i] = &volume
	}

	var events *yahoo.Events
	if len(dividends) > 0 {
		events = &yahoo.Events{Dividends: make(map[string]yahoo.DividendEvent, len(dividends))}
		for offset, amount := range dividends {
			date := start.AddDate(0, 0, offset)
			events.Dividends[fmt.Sprintf("%d", date.Unix())] = yahoo.DividendEvent{
				Amount: amount,
				Date:   date.Unix(),
			}
		}
	}

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Symbol:           symbol,
						Currency:         "USD",
						ExchangeName:     "NMS",
						FullExchangeName: "NASDAQ",
						LongName:         "Test Company Inc.",
						Shortname:        symbol,
					},
					Timestamp: timestamps,
					Events:    events,
					Indicators: yahoo.IndicatorsContainer{
						Quote: []yahoo.Quote{
							{
								Open:   opens,
								High:   highs,
								Low:    lows,
								Close:  closePtrs,
								Volume: volumes,
							},
						},
					},
				},
			},
			Error: nil,
		},
	}
}

// CreateMockYahooErrorResponse creates a mock Yahoo response with an error.
// Useful for testing error handling scenarios.
func CreateMockYahooErrorResponse(errorMsg string) yahoo.Response {
	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{},
			Error:  &errorMsg,
		},
	}
}
