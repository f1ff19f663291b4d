package form

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/dal"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/encoding"
)

func TestParseDefaults(t *testing.T) {
	rec, err := Parse(url.Values{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(dal.DefaultRecord(), rec); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	vars := url.Values{
		"brand":      {"toyota"},
		"model":      {"corolla"},
		"doornumber": {"four"},
		"enginetype": {"ohc"},
		"horsepower": {"116"},
		"curbweight": {"2414.5"},
		"unrelated":  {"ignored"},
	}
	rec, err := Parse(vars)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := dal.DefaultRecord()
	want.Brand = "toyota"
	want.Model = "corolla"
	want.DoorNumber = "four"
	want.EngineType = "ohc"
	want.HorsePower = 116
	want.CurbWeight = 2414.5
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseInvalidNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "Empty", value: ""},
		{name: "Text", value: "fast"},
		{name: "NaN", value: "NaN"},
		{name: "Inf", value: "+Inf"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(url.Values{"horsepower": {tc.value}})
			if !errors.Is(err, ErrInvalidField) {
				t.Errorf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}

// Every option the form offers must be known to the vocabulary, otherwise
// it would silently encode as 0.
func TestOptionsInVocabulary(t *testing.T) {
	for _, f := range Fields {
		for _, opt := range f.Options {
			if _, ok := encoding.Codes.Lookup(f.Name, opt); !ok {
				t.Errorf("%s option %q missing from vocabulary", f.Name, opt)
			}
		}
	}
}

func TestFieldsCoverRecord(t *testing.T) {
	rec := dal.DefaultRecord()
	for _, f := range Fields {
		switch f.Kind {
		case KindNumber:
			if _, ok := rec.Numeric(f.Name); !ok {
				t.Errorf("%s is not a numeric column", f.Name)
			}
		default:
			if _, ok := rec.Categorical(f.Name); !ok {
				t.Errorf("%s is not a categorical column", f.Name)
			}
		}
		if f.Kind == KindSelect && Value(rec, f) != f.Options[0] {
			t.Errorf("%s default = %q, want first option %q", f.Name, Value(rec, f), f.Options[0])
		}
	}
	if len(Fields) != 24 {
		t.Errorf("len(Fields) = %d, want 24", len(Fields))
	}
}

func TestValue(t *testing.T) {
	rec := dal.DefaultRecord()
	if got := Value(rec, Field{Name: "boreratio", Kind: KindNumber}); got != "3.5" {
		t.Errorf("Value(boreratio) = %q", got)
	}
	if got := Value(rec, Field{Name: "fuelsystem", Kind: KindSelect}); got != "mpfi" {
		t.Errorf("Value(fuelsystem) = %q", got)
	}
}

func TestParseKeepsTextAsTyped(t *testing.T) {
	tests := []struct {
		model string
		code  int
	}{
		{model: "D-Max ", code: 26},
		{model: "D-Max", code: 0},
		{model: "corolla", code: 52},
	}
	enc := encoding.NewTableEncoder(encoding.Codes)
	for _, tc := range tests {
		t.Run(tc.model, func(t *testing.T) {
			rec, err := Parse(url.Values{"model": {tc.model}})
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if rec.Model != tc.model {
				t.Errorf("Model = %q, want %q", rec.Model, tc.model)
			}
			if got := enc.Encode(rec).Codes["model"]; got != tc.code {
				t.Errorf("Expected: %d, Got: %d", tc.code, got)
			}
		})
	}

	rec, err := Parse(url.Values{"brand": {"a&b 'x'"}})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Brand != "a&b 'x'" {
		t.Errorf("Brand = %q", rec.Brand)
	}
}

func TestParseRejectsMarkup(t *testing.T) {
	for _, raw := range []string{"<b>corolla</b>", "toyota<script>alert(1)</script>"} {
		if _, err := Parse(url.Values{"brand": {raw}}); !errors.Is(err, ErrInvalidField) {
			t.Errorf("Parse(%q): expected ErrInvalidField, got %v", raw, err)
		}
	}
}
