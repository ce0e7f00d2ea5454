package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo
// Finance chart API. Price arrays use pointers because Yahoo reports null
// for days without a quote (holidays, halts).
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level payload: results plus an optional API error.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result holds one symbol's metadata, timestamps, corporate-action events
// and price indicators.
type Result struct {
	Meta       Meta                `json:"meta"`
	Timestamp  []int64             `json:"timestamp"`
	Events     *Events             `json:"events,omitempty"`
	Indicators IndicatorsContainer `json:"indicators"`
}

// Meta carries symbol identification as reported by Yahoo.
type Meta struct {
	Currency         string `json:"currency"`
	Symbol           string `json:"symbol"`
	ExchangeName     string `json:"exchangeName"`
	FullExchangeName string `json:"fullExchangeName"`
	LongName         string `json:"longName"`
	Shortname        string `json:"shortName"`
}

// Events holds corporate actions keyed by their Unix timestamp. Only
// dividends are requested (events=div).
type Events struct {
	Dividends map[string]DividendEvent `json:"dividends"`
}

// DividendEvent is a single dividend payment as reported by Yahoo.
type DividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

// IndicatorsContainer wraps the quote arrays.
type IndicatorsContainer struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the parallel OHLCV arrays, index-aligned with Timestamp.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// PriceChart is the parsed, application-facing representation of a chart
// response: symbol metadata, one Indicators entry per trading day in
// strictly increasing date order, and the dividend payments in the range
// sorted by ex-date.
type PriceChart struct {
	Currency         string       `json:"currency"`
	Symbol           string       `json:"symbol"`
	ExchangeName     string       `json:"exchangeName"`
	FullExchangeName string       `json:"fullExchangeName"`
	LongName         string       `json:"longName"`
	Shortname        string       `json:"shortName"`
	Indicators       []Indicators `json:"indicators"`
	Dividends        []Dividend   `json:"dividends"`
}

// Indicators represents a single trading day's OHLCV data.
// Date is truncated to midnight UTC.
type Indicators struct {
	Date       time.Time
	PriceOpen  float64
	PriceClose float64
	Volume     int64
	PriceHigh  float64
	PriceLow   float64
}

// Dividend is a parsed per-share dividend payment.
type Dividend struct {
	ExDate time.Time
	Amount float64
}
