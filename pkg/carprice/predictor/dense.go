package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/features"
)

var activations = map[string]func(float64) float64{
	"":       func(x float64) float64 { return x },
	"linear": func(x float64) float64 { return x },
	"relu":   func(x float64) float64 { return math.Max(0, x) },
	"sigmoid": func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	},
	"tanh": math.Tanh,
}

// Dense evaluates a stack of fully connected layers in process.
type Dense struct {
	name   string
	width  int
	layers []Layer
}

// NewDense returns a predictor over the layers of a.
func NewDense(a *Artifact) (*Dense, error) {
	if len(a.Layers) == 0 {
		return nil, errors.New("model artifact has no layers")
	}
	return &Dense{name: a.Name, width: len(a.Layers[0].Weights), layers: a.Layers}, nil
}

// Predict implements Predictor.
func (d *Dense) Predict(ctx context.Context, row []float64) (float64, error) {
	if len(row) != d.width {
		return 0, fmt.Errorf("%w: model %q expects %d columns, got %d", features.ErrSchemaMismatch, d.name, d.width, len(row))
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	x := row
	for _, l := range d.layers {
		act := activations[l.Activation]
		out := make([]float64, len(l.Bias))
		copy(out, l.Bias)
		for i, xi := range x {
			for j, w := range l.Weights[i] {
				out[j] += xi * w
			}
		}
		for j := range out {
			out[j] = act(out[j])
		}
		x = out
	}
	return x[0], nil
}

// Width implements Predictor.
func (d *Dense) Width() int { return d.width }

// Name implements Predictor.
func (d *Dense) Name() string { return d.name }
