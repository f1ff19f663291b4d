package encoding

import (
	"errors"
	"fmt"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/dal"
)

// Encoder variant names accepted by NewEncoder.
const (
	VariantTable = "table"
	VariantRefit = "refit"
)

// ErrUnknownVariant is returned by NewEncoder for an unsupported name.
var ErrUnknownVariant = errors.New("unknown encoding variant")

// Encoding holds the integer code of every categorical column.
type Encoding struct {
	Codes map[string]int
	// Fallbacks lists the columns whose value was not in the vocabulary and
	// were given code 0.
	Fallbacks []string
}

// Encoder maps the categorical columns of a record to integer codes.
type Encoder interface {
	Encode(r dal.Record) Encoding
	Variant() string
}

// NewEncoder returns the encoder registered under variant.
func NewEncoder(variant string) (Encoder, error) {
	switch variant {
	case "", VariantTable:
		return NewTableEncoder(Codes), nil
	case VariantRefit:
		return RefitEncoder{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
}

// TableEncoder looks every value up in a fixed vocabulary.
type TableEncoder struct {
	vocab *Vocabulary
}

// NewTableEncoder returns an encoder backed by vocab.
func NewTableEncoder(vocab *Vocabulary) *TableEncoder {
	return &TableEncoder{vocab: vocab}
}

// Encode implements Encoder.
func (e *TableEncoder) Encode(r dal.Record) Encoding {
	enc := Encoding{Codes: make(map[string]int, len(CategoricalColumns))}
	for _, col := range CategoricalColumns {
		value, _ := r.Categorical(col)
		code, ok := e.vocab.Lookup(col, value)
		if !ok {
			enc.Fallbacks = append(enc.Fallbacks, col)
		}
		enc.Codes[col] = code
	}
	return enc
}

// Variant implements Encoder.
func (e *TableEncoder) Variant() string { return VariantTable }

// RefitEncoder fits a fresh label encoder on the single submitted row for
// every column. A one-row column has one class, so every code is 0 and the
// codes carry no information about the category. Use TableEncoder unless
// the refit behaviour has to be reproduced.
type RefitEncoder struct{}

// Encode implements Encoder.
func (RefitEncoder) Encode(r dal.Record) Encoding {
	enc := Encoding{Codes: make(map[string]int, len(CategoricalColumns))}
	for _, col := range CategoricalColumns {
		value, _ := r.Categorical(col)
		enc.Codes[col] = fitTransform([]string{value})[0]
	}
	return enc
}

// Variant implements Encoder.
func (RefitEncoder) Variant() string { return VariantRefit }

// fitTransform assigns each distinct value its rank among the sorted
// distinct values.
func fitTransform(values []string) []int {
	classes := make(map[string]struct{}, len(values))
	for _, v := range values {
		classes[v] = struct{}{}
	}
	out := make([]int, len(values))
	for i, v := range values {
		rank := 0
		for c := range classes {
			if c < v {
				rank++
			}
		}
		out[i] = rank
	}
	return out
}
