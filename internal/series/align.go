// Package series implements the dividend-adjustment arithmetic: aligning
// sparse dividend payments onto a daily price calendar, deriving the
// price-only / dividends-paid / dividends-reinvested value tracks, and
// aggregating annual dividend yield and growth.
package series

import (
	"time"

	"github.com/mwalraven/stock-comparison-backend/internal/model"
)

// dayKey truncates a timestamp to its UTC calendar day.
func dayKey(t time.Time) string {
	return t.UTC().Truncate(24 * time.Hour).Format("2006-01-02")
}

// AlignDividends reindexes a sparse dividend series onto the given trading
// date domain. The result has exactly one entry per domain date: the
// per-share amount paid that day, or 0 if no payment occurred. Payments on
// dates outside the domain are dropped silently. Payments sharing a
// calendar day are summed. Inputs are not mutated.
func AlignDividends(dividends []model.DividendPayment, domain []time.Time) []float64 {
	byDay := make(map[string]float64, len(dividends))
	for _, d := range dividends {
		byDay[dayKey(d.ExDate)] += d.Amount
	}

	aligned := make([]float64, len(domain))
	for i, date := range domain {
		aligned[i] = byDay[dayKey(date)]
	}
	return aligned
}
