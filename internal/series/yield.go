package series

import (
	"sort"

	"github.com/mwalraven/stock-comparison-backend/internal/model"
)

// AnnualYield computes the trailing dividend yield per calendar year:
// (total dividends paid that year / mean closing price that year) * 100.
//
// A year with price data but no payments yields exactly 0. A year with no
// price observations is absent from the result, as is a year whose average
// close is not positive (nothing meaningful to divide by). No annualization
// is applied: a year with a single trading day uses that day's close as
// its average.
func AnnualYield(prices []model.PricePoint, dividends []model.DividendPayment) map[int]float64 {
	divTotals := make(map[int]float64, len(dividends))
	for _, d := range dividends {
		divTotals[d.ExDate.UTC().Year()] += d.Amount
	}

	priceSums := make(map[int]float64)
	priceCounts := make(map[int]int)
	for _, p := range prices {
		year := p.Date.UTC().Year()
		priceSums[year] += p.Close
		priceCounts[year]++
	}

	yields := make(map[int]float64, len(priceCounts))
	for year, count := range priceCounts {
		avg := priceSums[year] / float64(count)
		if avg <= 0 {
			continue
		}
		yields[year] = divTotals[year] / avg * 100
	}
	return yields
}

// AnnualDividendGrowth computes the year-over-year percent change of total
// dividends paid, comparing each dividend-paying year against the previous
// one present in the series. The earliest year has no prior and is omitted,
// as is any year whose prior total is zero.
func AnnualDividendGrowth(dividends []model.DividendPayment) map[int]float64 {
	totals := make(map[int]float64, len(dividends))
	for _, d := range dividends {
		totals[d.ExDate.UTC().Year()] += d.Amount
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	growth := make(map[int]float64, len(years))
	for i := 1; i < len(years); i++ {
		prev := totals[years[i-1]]
		if prev == 0 {
			continue
		}
		cur := totals[years[i]]
		growth[years[i]] = (cur - prev) / prev * 100
	}
	return growth
}
