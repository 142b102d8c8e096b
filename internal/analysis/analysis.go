// Package analysis holds the pure spending computations behind the category
// and prediction endpoints: per-category statistics, budget alerts, trends,
// monthly summaries and prediction accuracy.
package analysis

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Record is the slice of an expense the computations need.
type Record struct {
	Category string
	Amount   float64
	Date     time.Time
}

// Trend is the direction of a category's spending month over month.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// CategoryStats summarizes one category.
type CategoryStats struct {
	Category       string             `json:"category"`
	TotalAmount    float64            `json:"totalAmount"`
	Count          int                `json:"count"`
	AverageAmount  float64            `json:"averageAmount"`
	MinAmount      float64            `json:"minAmount"`
	MaxAmount      float64            `json:"maxAmount"`
	Percentage     float64            `json:"percentage"`
	Trend          Trend              `json:"trend,omitempty"`
	MonthlyAverage float64            `json:"monthlyAverage"`
	MonthsWithData int                `json:"monthsWithData"`
	MonthlyData    map[string]float64 `json:"monthlyData"`
}

// Report is the result of analyzing a set of records.
type Report struct {
	Categories    []CategoryStats `json:"categories"`
	GrandTotal    float64         `json:"grandTotal"`
	TotalExpenses int             `json:"totalExpenses"`
}

// Lookup returns the stats of category, if present.
func (r Report) Lookup(category string) (CategoryStats, bool) {
	for _, c := range r.Categories {
		if c.Category == category {
			return c, true
		}
	}
	return CategoryStats{}, false
}

// Totals maps each category to its total.
func (r Report) Totals() map[string]float64 {
	out := make(map[string]float64, len(r.Categories))
	for _, c := range r.Categories {
		out[c.Category] = c.TotalAmount
	}
	return out
}

type group struct {
	total    decimal.Decimal
	count    int
	min, max float64
	monthly  map[string]decimal.Decimal
	current  decimal.Decimal
	previous decimal.Decimal
}

// Analyze partitions records by category and computes totals, averages,
// extremes, share of the grand total and the month-over-month trend
// relative to now. Categories are ordered by total descending.
func Analyze(records []Record, now time.Time) Report {
	groups := make(map[string]*group)
	grand := decimal.Zero

	curStart := monthStart(now)
	prevStart := curStart.AddDate(0, -1, 0)
	nextStart := curStart.AddDate(0, 1, 0)

	for _, r := range records {
		g, ok := groups[r.Category]
		if !ok {
			g = &group{min: r.Amount, max: r.Amount, monthly: make(map[string]decimal.Decimal)}
			groups[r.Category] = g
		}

		amt := decimal.NewFromFloat(r.Amount)
		g.total = g.total.Add(amt)
		g.count++
		if r.Amount < g.min {
			g.min = r.Amount
		}
		if r.Amount > g.max {
			g.max = r.Amount
		}

		key := MonthKey(r.Date)
		g.monthly[key] = g.monthly[key].Add(amt)

		d := r.Date.UTC()
		switch {
		case !d.Before(curStart) && d.Before(nextStart):
			g.current = g.current.Add(amt)
		case !d.Before(prevStart) && d.Before(curStart):
			g.previous = g.previous.Add(amt)
		}

		grand = grand.Add(amt)
	}

	report := Report{
		Categories:    make([]CategoryStats, 0, len(groups)),
		GrandTotal:    round(grand, 2),
		TotalExpenses: len(records),
	}

	for name, g := range groups {
		monthly := make(map[string]float64, len(g.monthly))
		for k, v := range g.monthly {
			monthly[k] = round(v, 2)
		}

		stats := CategoryStats{
			Category:       name,
			TotalAmount:    round(g.total, 2),
			Count:          g.count,
			AverageAmount:  round(g.total.Div(decimal.NewFromInt(int64(g.count))), 2),
			MinAmount:      Round2(g.min),
			MaxAmount:      Round2(g.max),
			Percentage:     share(g.total, grand),
			Trend:          ClassifyTrend(g.current.InexactFloat64(), g.previous.InexactFloat64()),
			MonthsWithData: len(g.monthly),
			MonthlyData:    monthly,
		}
		if stats.MonthsWithData > 0 {
			stats.MonthlyAverage = round(g.total.Div(decimal.NewFromInt(int64(stats.MonthsWithData))), 2)
		}
		report.Categories = append(report.Categories, stats)
	}

	sort.Slice(report.Categories, func(i, j int) bool {
		a, b := report.Categories[i], report.Categories[j]
		if a.TotalAmount != b.TotalAmount {
			return a.TotalAmount > b.TotalAmount
		}
		return a.Category < b.Category
	})

	return report
}

// ClassifyTrend compares the current period total against the prior one.
func ClassifyTrend(current, previous float64) Trend {
	switch {
	case current > previous:
		return TrendIncreasing
	case current < previous:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// share is part/total as a percentage with one decimal; 0 when total is 0.
func share(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return round(part.Div(total).Mul(decimal.NewFromInt(100)), 1)
}

// MonthKey formats t as YYYY-MM in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the first instant of t's calendar month and of the
// following month, in UTC.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := monthStart(t)
	return start, start.AddDate(0, 1, 0)
}

// Round2 rounds v half away from zero to two decimals.
func Round2(v float64) float64 {
	return round(decimal.NewFromFloat(v), 2)
}

// Round1 rounds v half away from zero to one decimal.
func Round1(v float64) float64 {
	return round(decimal.NewFromFloat(v), 1)
}

func round(d decimal.Decimal, places int32) float64 {
	return d.Round(places).InexactFloat64()
}
