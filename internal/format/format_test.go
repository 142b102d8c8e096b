package format

import (
	"testing"
	"time"
)

func TestINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{250, "₹250"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{123456.5, "₹1,23,456.5"},
		{12345678, "₹1,23,45,678"},
		{1234.5678, "₹1,234.568"},
		{99.999, "₹99.999"},
		{-1500, "₹-1,500"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := INR(tt.amount); got != tt.want {
				t.Errorf("INR(%v) = %s, want %s", tt.amount, got, tt.want)
			}
		})
	}
}

func TestDates(t *testing.T) {
	d := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	if got := Date(d); got != "15/01/2025" {
		t.Errorf("Date = %s", got)
	}
	if got := MonthYear(d); got != "Jan 2025" {
		t.Errorf("MonthYear = %s", got)
	}
	if got := ISODate(d); got != "2025-01-15" {
		t.Errorf("ISODate = %s", got)
	}

	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2025, time.February, 1, 2, 0, 0, 0, ist)
	if got := Date(late); got != "31/01/2025" {
		t.Errorf("expected dates to render in UTC, got %s", got)
	}
}
