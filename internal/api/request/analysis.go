package request

// AnalysisRequest represents the request body for running a comparison.
// Tickers holds up to five stock symbols; Index optionally names one major
// index from the supported set (by display name, e.g. "S&P 500");
// StartDate is the first day of history to analyze, in YYYY-MM-DD form.
type AnalysisRequest struct {
	Tickers   []string `json:"tickers"`
	Index     string   `json:"index,omitempty"`
	StartDate string   `json:"startDate"`
}
