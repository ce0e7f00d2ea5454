package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mwalraven/stock-comparison-backend/internal/apperrors"
	"github.com/mwalraven/stock-comparison-backend/internal/model"
	"github.com/mwalraven/stock-comparison-backend/internal/series"
	"github.com/mwalraven/stock-comparison-backend/internal/yahoo"
)

// AnalysisService orchestrates one analysis run: it fetches price and
// dividend history for each requested symbol, derives the return tracks and
// annual yield series, and assembles the per-display-name result.
//
// Symbols are processed independently. A symbol whose fetch or computation
// fails is skipped with a recorded warning and never aborts the batch.
type AnalysisService struct {
	yahooClient  yahoo.Client
	fetchTimeout time.Duration
	concurrency  int
}

// NewAnalysisService creates a new AnalysisService.
//
// fetchTimeout bounds each per-symbol fetch. concurrency is the number of
// symbols fetched in parallel; 1 reproduces strictly sequential processing.
func NewAnalysisService(yahooClient yahoo.Client, fetchTimeout time.Duration, concurrency int) *AnalysisService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AnalysisService{
		yahooClient:  yahooClient,
		fetchTimeout: fetchTimeout,
		concurrency:  concurrency,
	}
}

// symbolOutcome is the per-symbol slot written by the fetch workers.
// Exactly one of analysis or warning is set.
type symbolOutcome struct {
	analysis *model.SymbolAnalysis
	warning  *model.Warning
}

// Analyze runs the full fetch-compute cycle for the given symbols starting
// at startDate. The result is rebuilt from scratch on every call.
//
// Results land in per-symbol slots so the order of Names always follows the
// request order regardless of fetch completion order. Analyze returns an
// error only when ctx is cancelled; per-symbol failures are reported via
// the Warnings field.
func (s *AnalysisService) Analyze(ctx context.Context, symbols []model.SymbolRequest, startDate time.Time) (model.AnalysisResult, error) {
	runID := uuid.New().String()
	outcomes := make([]symbolOutcome, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, sym := range symbols {
		i, sym := i, sym
		g.Go(func() error {
			outcomes[i] = s.analyzeSymbol(gctx, sym, startDate)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return model.AnalysisResult{}, err
	}

	result := model.AnalysisResult{
		RunID:   runID,
		Names:   make([]string, 0, len(symbols)),
		Symbols: make(map[string]model.SymbolAnalysis, len(symbols)),
	}
	for _, outcome := range outcomes {
		if outcome.warning != nil {
			log.Printf("analysis %s: skipping %s: %s", runID, outcome.warning.Symbol, outcome.warning.Message)
			result.Warnings = append(result.Warnings, *outcome.warning)
			continue
		}
		result.Names = append(result.Names, outcome.analysis.Symbol)
		result.Symbols[outcome.analysis.Symbol] = *outcome.analysis
	}

	return result, nil
}

// analyzeSymbol fetches and computes everything for a single symbol.
// All failures are converted into a warning so the batch continues.
func (s *AnalysisService) analyzeSymbol(ctx context.Context, sym model.SymbolRequest, startDate time.Time) symbolOutcome {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	resp, err := s.yahooClient.QueryYahooSymbolByDateRange(fetchCtx, sym.FetchKey, startDate, time.Now().UTC())
	if err != nil {
		return skipped(sym, err)
	}
	chart, err := s.yahooClient.ParseChart(resp)
	if err != nil {
		return skipped(sym, err)
	}

	prices := make([]model.PricePoint, len(chart.Indicators))
	dates := make([]time.Time, len(chart.Indicators))
	for i, ind := range chart.Indicators {
		prices[i] = model.PricePoint{Date: ind.Date, Close: ind.PriceClose}
		dates[i] = ind.Date
	}

	// The chart request is already bounded by startDate, but dividend events
	// occasionally arrive just outside the window; drop those.
	dividends := make([]model.DividendPayment, 0, len(chart.Dividends))
	for _, d := range chart.Dividends {
		if d.ExDate.Before(startDate) {
			continue
		}
		dividends = append(dividends, model.DividendPayment{ExDate: d.ExDate, Amount: d.Amount})
	}

	aligned := series.AlignDividends(dividends, dates)
	bundle, err := series.BuildReturns(prices, aligned)
	if err != nil {
		return skipped(sym, err)
	}

	yields := yieldPoints(series.AnnualYield(prices, dividends))
	growth := growthPoints(series.AnnualDividendGrowth(dividends))

	return symbolOutcome{analysis: &model.SymbolAnalysis{
		Symbol:         sym.DisplayName,
		Returns:        bundle,
		AnnualYields:   yields,
		DividendGrowth: growth,
	}}
}

// skipped builds the warning outcome for a failed symbol.
func skipped(sym model.SymbolRequest, err error) symbolOutcome {
	message := err.Error()
	if errors.Is(err, apperrors.ErrNoData) {
		message = "no data available, skipping"
	}
	return symbolOutcome{warning: &model.Warning{
		Symbol:      sym.FetchKey,
		DisplayName: sym.DisplayName,
		Message:     message,
	}}
}

// yieldPoints converts the per-year yield map into points sorted by year.
func yieldPoints(yields map[int]float64) []model.YieldPoint {
	years := sortedYears(yields)
	points := make([]model.YieldPoint, len(years))
	for i, year := range years {
		points[i] = model.YieldPoint{Year: year, YieldPct: yields[year]}
	}
	return points
}

// growthPoints converts the per-year growth map into points sorted by year.
func growthPoints(growth map[int]float64) []model.GrowthPoint {
	years := sortedYears(growth)
	points := make([]model.GrowthPoint, len(years))
	for i, year := range years {
		points[i] = model.GrowthPoint{Year: year, GrowthPct: growth[year]}
	}
	return points
}

func sortedYears(byYear map[int]float64) []int {
	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
