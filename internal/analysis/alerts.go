package analysis

import (
	"fmt"
	"sort"
)

// Severity ranks how far spending has progressed against a budget limit.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Thresholds are percentages of the monthly limit.
type Thresholds struct {
	Caution  float64 `json:"caution"`
	Warning  float64 `json:"warning"`
	Critical float64 `json:"critical"`
}

// Limit is an active monthly budget for one category.
type Limit struct {
	Category     string     `json:"category"`
	MonthlyLimit float64    `json:"monthlyLimit"`
	Thresholds   Thresholds `json:"alertThresholds"`
}

// Alert is the single highest threshold crossed by a category.
type Alert struct {
	Category       string   `json:"category"`
	Severity       Severity `json:"severity"`
	PercentageUsed float64  `json:"percentageUsed"`
	Spent          float64  `json:"currentSpending"`
	MonthlyLimit   float64  `json:"monthlyLimit"`
	Threshold      float64  `json:"threshold"`
	Remaining      float64  `json:"remaining"`
	Message        string   `json:"message"`
}

// Classify returns the severity for percentageUsed, checking thresholds from
// critical down. ok is false when no threshold is reached.
func Classify(percentageUsed float64, t Thresholds) (Severity, float64, bool) {
	switch {
	case percentageUsed >= t.Critical:
		return SeverityHigh, t.Critical, true
	case percentageUsed >= t.Warning:
		return SeverityMedium, t.Warning, true
	case percentageUsed >= t.Caution:
		return SeverityLow, t.Caution, true
	}
	return "", 0, false
}

// EvaluateAlerts produces at most one alert per limit, comparing the
// category's spending in spent against its monthly limit. Limits of zero or
// less never alert, nor do categories with no spending. Alerts are ordered by
// severity, then usage, then name.
func EvaluateAlerts(spent map[string]float64, limits []Limit) []Alert {
	alerts := make([]Alert, 0)
	for _, l := range limits {
		if l.MonthlyLimit <= 0 {
			continue
		}
		total := spent[l.Category]
		if total <= 0 {
			continue
		}
		used := total / l.MonthlyLimit * 100

		sev, threshold, ok := Classify(used, l.Thresholds)
		if !ok {
			continue
		}
		alerts = append(alerts, Alert{
			Category:       l.Category,
			Severity:       sev,
			PercentageUsed: Round1(used),
			Spent:          Round2(total),
			MonthlyLimit:   Round2(l.MonthlyLimit),
			Threshold:      threshold,
			Remaining:      Round2(l.MonthlyLimit - total),
			Message:        alertMessage(l.Category, sev, used),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Severity.rank() != b.Severity.rank() {
			return a.Severity.rank() > b.Severity.rank()
		}
		if a.PercentageUsed != b.PercentageUsed {
			return a.PercentageUsed > b.PercentageUsed
		}
		return a.Category < b.Category
	})
	return alerts
}

func alertMessage(category string, sev Severity, used float64) string {
	switch sev {
	case SeverityHigh:
		return fmt.Sprintf("%s spending has reached %.1f%% of the monthly limit", category, used)
	case SeverityMedium:
		return fmt.Sprintf("%s spending is at %.1f%% of the monthly limit", category, used)
	default:
		return fmt.Sprintf("%s spending has passed %.1f%% of the monthly limit", category, used)
	}
}
