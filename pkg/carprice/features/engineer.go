package features

import (
	"errors"
	"fmt"
	"math"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/dal"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/encoding"
)

var (
	// ErrDivision is returned for a zero curb weight.
	ErrDivision = errors.New("division by zero")
	// ErrDomain is returned when a logarithm argument is not positive.
	ErrDomain = errors.New("math domain error")
)

// NumericalColumns are the measured columns that get squared and scaled.
var NumericalColumns = []string{
	"wheelbase", "carlength", "carwidth", "carheight", "curbweight",
	"enginesize", "boreratio", "stroke", "compressionratio", "horsepower",
	"peakrpm", "citympg", "highwaympg",
}

// inputColumns is the order the form submits a record in.
var inputColumns = []string{
	"car_ID", "symboling", "brand", "model", "fueltype", "aspiration",
	"doornumber", "carbody", "drivewheel", "enginelocation", "wheelbase",
	"carlength", "carwidth", "carheight", "curbweight", "enginetype",
	"cylindernumber", "enginesize", "fuelsystem", "boreratio", "stroke",
	"compressionratio", "horsepower", "peakrpm", "citympg", "highwaympg",
}

// DefaultColumns is the column order produced by Engineer. It is used when
// the model artifact does not declare its own.
var DefaultColumns = func() []string {
	cols := append([]string(nil), inputColumns...)
	cols = append(cols, "power_to_weight_ratio")
	for _, c := range NumericalColumns {
		cols = append(cols, c+"_squared")
	}
	return append(cols, "log_enginesize")
}()

// Engineer replaces the categorical columns of r with their codes and
// appends the derived columns.
func Engineer(r dal.Record, enc encoding.Encoding) (*Vector, error) {
	v := NewVector()
	for _, col := range inputColumns {
		if code, ok := enc.Codes[col]; ok {
			v.Set(col, float64(code))
			continue
		}
		if value, ok := r.Numeric(col); ok {
			v.Set(col, value)
			continue
		}
		return nil, fmt.Errorf("%w: no value for column %q", ErrSchemaMismatch, col)
	}

	ratio, err := PowerToWeight(r.HorsePower, r.CurbWeight)
	if err != nil {
		return nil, err
	}
	v.Set("power_to_weight_ratio", ratio)

	for _, col := range NumericalColumns {
		x, _ := v.Get(col)
		v.Set(col+"_squared", x*x)
	}

	logSize, err := LogEngineSize(r.EngineSize)
	if err != nil {
		return nil, err
	}
	v.Set("log_enginesize", logSize)
	return v, nil
}

// PowerToWeight returns horsepower / curbweight.
func PowerToWeight(horsepower, curbweight float64) (float64, error) {
	if curbweight == 0 {
		return 0, fmt.Errorf("%w: power_to_weight_ratio with curbweight 0", ErrDivision)
	}
	return horsepower / curbweight, nil
}

// LogEngineSize returns ln(enginesize + 1).
func LogEngineSize(enginesize float64) (float64, error) {
	if enginesize <= -1 {
		return 0, fmt.Errorf("%w: log_enginesize of %v", ErrDomain, enginesize)
	}
	return math.Log(enginesize + 1), nil
}
