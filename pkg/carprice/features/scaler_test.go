package features

import (
	"errors"
	"math"
	"testing"
)

func TestStandardScaler(t *testing.T) {
	mean := make(map[string]float64)
	std := make(map[string]float64)
	for _, col := range NumericalColumns {
		mean[col] = 10
		std[col] = 2
	}
	std["peakrpm"] = 0

	v := engineer(t, scenarioRecord())
	squaredBefore, _ := v.Get("horsepower_squared")
	if err := (StandardScaler{Mean: mean, Std: std}).Scale(v); err != nil {
		t.Fatalf("Scale: %v", err)
	}

	hp, _ := v.Get("horsepower")
	if math.Abs(hp-45) > tolerance {
		t.Errorf("horsepower = %v, want 45", hp)
	}
	rpm, _ := v.Get("peakrpm")
	if rpm != 4990 {
		t.Errorf("peakrpm = %v, want 4990 for zero std", rpm)
	}
	squaredAfter, _ := v.Get("horsepower_squared")
	if squaredAfter != squaredBefore {
		t.Errorf("derived column rescaled: %v -> %v", squaredBefore, squaredAfter)
	}

	delete(mean, "citympg")
	if err := (StandardScaler{Mean: mean, Std: std}).Scale(v); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("expected ErrSchemaMismatch, got %v", err)
	}
}

// Fitting on a single row zeroes every scaled column whatever the input.
func TestRefitScalerIsDegenerate(t *testing.T) {
	a := scenarioRecord()
	b := scenarioRecord()
	b.HorsePower = 262
	b.CurbWeight = 3900
	b.WheelBase = 113

	va, vb := engineer(t, a), engineer(t, b)
	for _, v := range []*Vector{va, vb} {
		if err := (RefitScaler{}).Scale(v); err != nil {
			t.Fatalf("Scale: %v", err)
		}
		for _, col := range NumericalColumns {
			if got, _ := v.Get(col); got != 0 {
				t.Errorf("%s = %v, want 0", col, got)
			}
		}
	}
}
