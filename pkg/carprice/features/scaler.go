package features

import (
	"fmt"
	"math"
)

// Scaler rescales the measured columns of a vector in place.
type Scaler interface {
	Scale(v *Vector) error
}

// StandardScaler applies (x - mean) / std with statistics fitted on the
// training data. A zero or missing std is treated as 1.
type StandardScaler struct {
	Mean map[string]float64
	Std  map[string]float64
}

// Scale implements Scaler.
func (s StandardScaler) Scale(v *Vector) error {
	for _, col := range NumericalColumns {
		x, ok := v.Get(col)
		if !ok {
			return fmt.Errorf("%w: cannot scale missing column %q", ErrSchemaMismatch, col)
		}
		mean, ok := s.Mean[col]
		if !ok {
			return fmt.Errorf("%w: scaler has no mean for %q", ErrSchemaMismatch, col)
		}
		scale := s.Std[col]
		if scale == 0 {
			scale = 1
		}
		v.Set(col, (x-mean)/scale)
	}
	return nil
}

// RefitScaler fits a standard scaler on the submitted row itself. With one
// observation the mean is the value and the variance is zero, so every
// scaled column becomes 0.
type RefitScaler struct{}

// Scale implements Scaler.
func (RefitScaler) Scale(v *Vector) error {
	fitted := StandardScaler{
		Mean: make(map[string]float64, len(NumericalColumns)),
		Std:  make(map[string]float64, len(NumericalColumns)),
	}
	for _, col := range NumericalColumns {
		x, ok := v.Get(col)
		if !ok {
			return fmt.Errorf("%w: cannot scale missing column %q", ErrSchemaMismatch, col)
		}
		mean, std := meanStd([]float64{x})
		fitted.Mean[col] = mean
		fitted.Std[col] = std
	}
	return fitted.Scale(v)
}

// meanStd returns the mean and population standard deviation of xs.
func meanStd(xs []float64) (float64, float64) {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(ss / float64(len(xs)))
}
