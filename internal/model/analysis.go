package model

// SymbolRequest pairs the key used to fetch data from the external source
// with the name used to present the results. For plain tickers the two are
// identical; for a major index the display name is the human-readable one
// (e.g. "S&P 500" for fetch key "^GSPC").
type SymbolRequest struct {
	FetchKey    string
	DisplayName string
}

// YieldPoint is one calendar year's trailing dividend yield: total
// dividends paid that year divided by the year's average closing price,
// as a percentage.
type YieldPoint struct {
	Year     int     `json:"year"`
	YieldPct float64 `json:"yieldPct"`
}

// GrowthPoint is the year-over-year percent change of a year's total
// dividends relative to the previous dividend-paying year.
type GrowthPoint struct {
	Year      int     `json:"year"`
	GrowthPct float64 `json:"growthPct"`
}

// Warning records a symbol that was skipped during an analysis run and why.
type Warning struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`
	Message     string `json:"message"`
}

// SymbolAnalysis bundles everything computed for one display name.
type SymbolAnalysis struct {
	Symbol         string
	Returns        ReturnBundle
	AnnualYields   []YieldPoint
	DividendGrowth []GrowthPoint
}

// AnalysisResult is the outcome of one analysis run. It is rebuilt from
// scratch on every run; nothing is cached across runs.
//
// Names preserves the request order of the symbols that succeeded, which
// determines chart legend order downstream. Symbols is keyed by display
// name. A symbol either fully succeeds or is entirely absent from Symbols
// and present in Warnings instead.
type AnalysisResult struct {
	RunID    string
	Names    []string
	Symbols  map[string]SymbolAnalysis
	Warnings []Warning
}
