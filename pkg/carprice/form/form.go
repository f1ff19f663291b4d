package form

import (
	"errors"
	"fmt"
	"html"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/dal"
)

// Field kinds.
const (
	KindText   = "text"
	KindSelect = "select"
	KindNumber = "number"
)

// ErrInvalidField is wrapped by every Parse validation error.
var ErrInvalidField = errors.New("invalid field")

// Field describes one form widget.
type Field struct {
	Name    string
	Label   string
	Kind    string
	Options []string
}

// Fields lists the widgets in the order they are rendered. Select options
// keep the order the form offers them in; the first one is the default.
var Fields = []Field{
	{Name: "brand", Label: "Brand", Kind: KindText},
	{Name: "model", Label: "Model", Kind: KindText},
	{Name: "fueltype", Label: "Fuel type", Kind: KindSelect, Options: []string{"gas", "diesel"}},
	{Name: "aspiration", Label: "Aspiration", Kind: KindSelect, Options: []string{"std", "turbo"}},
	{Name: "doornumber", Label: "Doors", Kind: KindSelect, Options: []string{"two", "four"}},
	{Name: "carbody", Label: "Body style", Kind: KindSelect, Options: []string{"sedan", "hatchback", "wagon", "hardtop", "convertible"}},
	{Name: "drivewheel", Label: "Drive wheel", Kind: KindSelect, Options: []string{"fwd", "rwd", "4wd"}},
	{Name: "enginelocation", Label: "Engine location", Kind: KindSelect, Options: []string{"front", "rear"}},
	{Name: "wheelbase", Label: "Wheelbase", Kind: KindNumber},
	{Name: "carlength", Label: "Car length", Kind: KindNumber},
	{Name: "carwidth", Label: "Car width", Kind: KindNumber},
	{Name: "carheight", Label: "Car height", Kind: KindNumber},
	{Name: "curbweight", Label: "Curb weight", Kind: KindNumber},
	{Name: "enginetype", Label: "Engine type", Kind: KindSelect, Options: []string{"dohc", "ohcv", "ohc", "l", "rotor"}},
	{Name: "cylindernumber", Label: "Cylinders", Kind: KindSelect, Options: []string{"four", "six", "five", "eight", "two", "three", "twelve"}},
	{Name: "enginesize", Label: "Engine size", Kind: KindNumber},
	{Name: "fuelsystem", Label: "Fuel system", Kind: KindSelect, Options: []string{"mpfi", "2bbl", "idi", "1bbl", "spdi", "4bbl", "spfi"}},
	{Name: "boreratio", Label: "Bore ratio", Kind: KindNumber},
	{Name: "stroke", Label: "Stroke", Kind: KindNumber},
	{Name: "compressionratio", Label: "Compression ratio", Kind: KindNumber},
	{Name: "horsepower", Label: "Horsepower", Kind: KindNumber},
	{Name: "peakrpm", Label: "Peak RPM", Kind: KindNumber},
	{Name: "citympg", Label: "City MPG", Kind: KindNumber},
	{Name: "highwaympg", Label: "Highway MPG", Kind: KindNumber},
}

var textPolicy = bluemonday.StrictPolicy()

// Parse builds a record from submitted form values. Missing fields keep
// their defaults. Select values are passed through unchecked; values the
// vocabulary does not know are encoded as 0 later on.
func Parse(vars url.Values) (dal.Record, error) {
	rec := dal.DefaultRecord()
	for _, f := range Fields {
		if _, ok := vars[f.Name]; !ok {
			continue
		}
		switch f.Kind {
		case KindText:
			value, err := validateText(f, vars.Get(f.Name))
			if err != nil {
				return rec, err
			}
			rec.SetCategorical(f.Name, value)
		case KindSelect:
			rec.SetCategorical(f.Name, strings.TrimSpace(vars.Get(f.Name)))
		case KindNumber:
			value, err := validateNumber(f, vars.Get(f.Name))
			if err != nil {
				return rec, err
			}
			rec.SetNumeric(f.Name, value)
		}
	}
	return rec, nil
}

// validateText rejects markup and otherwise returns raw exactly as typed;
// vocabulary entries such as "D-Max " depend on it.
func validateText(f Field, raw string) (string, error) {
	if html.UnescapeString(textPolicy.Sanitize(raw)) != raw {
		return "", fmt.Errorf("%w: %s must not contain markup", ErrInvalidField, f.Label)
	}
	return raw, nil
}

func validateNumber(f Field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidField, f.Label)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %q", ErrInvalidField, f.Label, raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s must be finite: %q", ErrInvalidField, f.Label, raw)
	}
	return value, nil
}

// Value returns the current value of field f in r, formatted for an input
// element.
func Value(r dal.Record, f Field) string {
	if f.Kind == KindNumber {
		v, _ := r.Numeric(f.Name)
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	v, _ := r.Categorical(f.Name)
	return v
}
