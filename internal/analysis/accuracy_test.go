package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestAccuracy(t *testing.T) {
	t.Run("close prediction", func(t *testing.T) {
		acc, err := Accuracy(100, 120)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(acc-0.8333) > 0.0001 {
			t.Errorf("expected ~0.8333, got %v", acc)
		}
		if AccuracyLevel(acc) != AccuracyHigh {
			t.Errorf("expected high, got %s", AccuracyLevel(acc))
		}
		if AccuracyPercent(acc) != 83 {
			t.Errorf("expected 83%%, got %d", AccuracyPercent(acc))
		}
	})

	t.Run("floors at zero", func(t *testing.T) {
		acc, err := Accuracy(100, 1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acc < 0 {
			t.Errorf("expected non-negative accuracy, got %v", acc)
		}
		if AccuracyLevel(acc) != AccuracyLow {
			t.Errorf("expected low, got %s", AccuracyLevel(acc))
		}

		acc, err = Accuracy(5000, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acc != 0 {
			t.Errorf("expected 0, got %v", acc)
		}
	})

	t.Run("exact", func(t *testing.T) {
		acc, err := Accuracy(250, 250)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acc != 1 {
			t.Errorf("expected 1, got %v", acc)
		}
	})

	t.Run("rejects non-positive actual", func(t *testing.T) {
		for _, actual := range []float64{0, -5} {
			if _, err := Accuracy(100, actual); !errors.Is(err, ErrNonPositiveActual) {
				t.Errorf("Accuracy(100, %v): expected ErrNonPositiveActual, got %v", actual, err)
			}
		}
	})
}

func TestAccuracyLevelBoundaries(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     string
	}{
		{0.8, AccuracyMedium},
		{0.8000001, AccuracyHigh},
		{0.6, AccuracyLow},
		{0.61, AccuracyMedium},
		{0, AccuracyLow},
	}
	for _, tt := range tests {
		if got := AccuracyLevel(tt.accuracy); got != tt.want {
			t.Errorf("AccuracyLevel(%v) = %s, want %s", tt.accuracy, got, tt.want)
		}
	}
}
