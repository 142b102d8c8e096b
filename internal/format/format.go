// Package format renders amounts and dates the way the dashboard displays them.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout      = "02/01/2006"
	monthYearLayout = "Jan 2006"
)

// INR renders amount as rupees with Indian digit grouping and at most three
// fraction digits, e.g. ₹1,23,456.5.
func INR(amount float64) string {
	s := decimal.NewFromFloat(amount).Round(3).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	out := "₹" + sign + groupIndian(whole)
	if frac != "" {
		out += "." + frac
	}
	return out
}

// groupIndian inserts separators after the last three digits and then
// after every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// Date renders t as dd/mm/yyyy in UTC.
func Date(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// MonthYear renders t as "Jan 2025" in UTC.
func MonthYear(t time.Time) string {
	return t.UTC().Format(monthYearLayout)
}

// ISODate renders t as YYYY-MM-DD in UTC.
func ISODate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
