package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mwalraven/stock-comparison-backend/internal/api/request"
	"github.com/mwalraven/stock-comparison-backend/internal/api/response"
	"github.com/mwalraven/stock-comparison-backend/internal/model"
	"github.com/mwalraven/stock-comparison-backend/internal/service"
	"github.com/mwalraven/stock-comparison-backend/internal/validation"
)

// AnalysisHandler handles HTTP requests for the comparison analysis
// endpoints. It parses and validates requests and delegates the
// fetch-compute cycle to the analysis service.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler with the provided service dependency.
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// SeriesResponse carries the per-day value tracks for one display name.
// Dates are formatted YYYY-MM-DD; all arrays are index-aligned with Dates.
type SeriesResponse struct {
	Dates                         []string  `json:"dates"`
	RegularPrice                  []float64 `json:"regularPrice"`
	CumulativeDividends           []float64 `json:"cumulativeDividends"`
	DividendsPaid                 []float64 `json:"dividendsPaid"`
	SharesHeld                    []float64 `json:"sharesHeld"`
	DividendsReinvested           []float64 `json:"dividendsReinvested"`
	NormalizedRegularPrice        []float64 `json:"normalizedRegularPrice"`
	NormalizedDividendsPaid       []float64 `json:"normalizedDividendsPaid"`
	NormalizedDividendsReinvested []float64 `json:"normalizedDividendsReinvested"`
}

// SymbolResponse bundles everything computed for one display name.
type SymbolResponse struct {
	Series         SeriesResponse      `json:"series"`
	AnnualYields   []model.YieldPoint  `json:"annualYields"`
	DividendGrowth []model.GrowthPoint `json:"dividendGrowth"`
}

// SummaryRow is one row of the final-value table: the ending value of $1
// invested at the start date, per track, formatted to two decimals.
type SummaryRow struct {
	Name                string `json:"name"`
	RegularPrice        string `json:"regularPrice"`
	DividendsPaid       string `json:"dividendsPaid"`
	DividendsReinvested string `json:"dividendsReinvested"`
}

// AnalysisResponse is the payload for a completed analysis run. Names
// preserves request order for chart legends; Warnings lists the symbols
// that were skipped and why.
type AnalysisResponse struct {
	RunID    string                    `json:"runId"`
	Names    []string                  `json:"names"`
	Symbols  map[string]SymbolResponse `json:"symbols"`
	Summary  []SummaryRow              `json:"summary"`
	Warnings []model.Warning           `json:"warnings"`
}

// Analyze handles POST requests to run a comparison.
//
// Endpoint: POST /api/analysis
// Response: 200 OK with AnalysisResponse
// Error: 400 Bad Request on invalid body or inputs, 500 on run failure
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	symbols, startDate, err := validation.ParseAnalysisRequest(req.Tickers, req.Index, req.StartDate)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid analysis request", err.Error())
		return
	}

	result, err := h.analysisService.Analyze(r.Context(), symbols, startDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "analysis failed", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, buildAnalysisResponse(result))
}

// Indices handles GET requests for the supported major-index selector.
//
// Endpoint: GET /api/analysis/indices
// Response: 200 OK with the fixed, ordered index list
func (h *AnalysisHandler) Indices(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, model.MajorIndices)
}

// buildAnalysisResponse converts an AnalysisResult into its response shape,
// formatting dates and the summary table.
func buildAnalysisResponse(result model.AnalysisResult) AnalysisResponse {
	resp := AnalysisResponse{
		RunID:    result.RunID,
		Names:    result.Names,
		Symbols:  make(map[string]SymbolResponse, len(result.Symbols)),
		Summary:  make([]SummaryRow, 0, len(result.Names)),
		Warnings: result.Warnings,
	}
	if resp.Warnings == nil {
		resp.Warnings = []model.Warning{}
	}

	for _, name := range result.Names {
		analysis := result.Symbols[name]
		bundle := analysis.Returns

		dates := make([]string, bundle.Len())
		for i, d := range bundle.Dates {
			dates[i] = d.Format("2006-01-02")
		}

		resp.Symbols[name] = SymbolResponse{
			Series: SeriesResponse{
				Dates:                         dates,
				RegularPrice:                  bundle.RegularPrice,
				CumulativeDividends:           bundle.CumulativeDividends,
				DividendsPaid:                 bundle.DividendsPaid,
				SharesHeld:                    bundle.SharesHeld,
				DividendsReinvested:           bundle.DividendsReinvested,
				NormalizedRegularPrice:        bundle.NormalizedRegularPrice,
				NormalizedDividendsPaid:       bundle.NormalizedDividendsPaid,
				NormalizedDividendsReinvested: bundle.NormalizedDividendsReinvested,
			},
			AnnualYields:   analysis.AnnualYields,
			DividendGrowth: analysis.DividendGrowth,
		}

		last := bundle.Len() - 1
		resp.Summary = append(resp.Summary, SummaryRow{
			Name:                name,
			RegularPrice:        formatFinal(bundle.NormalizedRegularPrice[last]),
			DividendsPaid:       formatFinal(bundle.NormalizedDividendsPaid[last]),
			DividendsReinvested: formatFinal(bundle.NormalizedDividendsReinvested[last]),
		})
	}

	return resp
}

// formatFinal rounds a final track value to two decimals for the summary table.
func formatFinal(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
