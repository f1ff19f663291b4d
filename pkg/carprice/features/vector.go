package features

import (
	"errors"
	"fmt"
)

// ErrSchemaMismatch is returned when a vector does not have the columns, or
// the width, the model was fit on.
var ErrSchemaMismatch = errors.New("feature schema mismatch")

// Vector is an ordered set of named numeric columns.
type Vector struct {
	names  []string
	values map[string]float64
}

// NewVector returns an empty vector.
func NewVector() *Vector {
	return &Vector{values: make(map[string]float64)}
}

// Set appends name, or overwrites it in place if already present.
func (v *Vector) Set(name string, value float64) {
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = value
}

// Get returns the value of name.
func (v *Vector) Get(name string) (float64, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Columns returns the column names in insertion order.
func (v *Vector) Columns() []string {
	return append([]string(nil), v.names...)
}

// Values returns the values in insertion order.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.names))
	for i, name := range v.names {
		out[i] = v.values[name]
	}
	return out
}

// Project returns the values of columns in the given order.
func (v *Vector) Project(columns []string) ([]float64, error) {
	out := make([]float64, len(columns))
	for i, name := range columns {
		value, ok := v.values[name]
		if !ok {
			return nil, fmt.Errorf("%w: column %q not produced", ErrSchemaMismatch, name)
		}
		out[i] = value
	}
	return out, nil
}
