package analysis

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthSummary aggregates one calendar month.
type MonthSummary struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	TotalAmount   float64 `json:"totalAmount"`
	Count         int     `json:"count"`
	AverageAmount float64 `json:"averageAmount"`
}

// MonthlySummary returns twelve entries for year, zero-filled for months
// without records. Records outside year are ignored.
func MonthlySummary(records []Record, year int) []MonthSummary {
	var (
		totals [12]decimal.Decimal
		counts [12]int
	)
	for _, r := range records {
		d := r.Date.UTC()
		if d.Year() != year {
			continue
		}
		i := int(d.Month()) - 1
		totals[i] = totals[i].Add(decimal.NewFromFloat(r.Amount))
		counts[i]++
	}

	out := make([]MonthSummary, 12)
	for i := range out {
		out[i] = MonthSummary{Month: i + 1, Year: year, Count: counts[i]}
		if counts[i] > 0 {
			out[i].TotalAmount = round(totals[i], 2)
			out[i].AverageAmount = round(totals[i].Div(decimal.NewFromInt(int64(counts[i]))), 2)
		}
	}
	return out
}

// DaysRemaining is the number of days left in now's month after today.
func DaysRemaining(now time.Time) int {
	_, next := MonthBounds(now)
	last := next.AddDate(0, 0, -1)
	return last.Day() - now.UTC().Day()
}

// ProjectMonthEnd extrapolates current month spending to month end using
// the category's monthly average spread over a 30 day month.
func ProjectMonthEnd(current, monthlyAverage float64, now time.Time) float64 {
	daily := decimal.NewFromFloat(monthlyAverage).Div(decimal.NewFromInt(30))
	projected := decimal.NewFromFloat(current).Add(daily.Mul(decimal.NewFromInt(int64(DaysRemaining(now)))))
	return round(projected, 2)
}
