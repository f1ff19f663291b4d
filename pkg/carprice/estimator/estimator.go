package estimator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/dal"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/encoding"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/features"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/predictor"
)

// Estimator turns a raw record into a price: encode, engineer, scale,
// project onto the model columns, predict. It holds no mutable state and is
// safe for concurrent use.
type Estimator struct {
	Encoder   encoding.Encoder
	Scaler    features.Scaler
	Columns   []string
	Predictor predictor.Predictor
	Metrics   *Metrics
}

// Estimate is the outcome of one prediction.
type Estimate struct {
	Price    float64
	Encoding encoding.Encoding
	Vector   []float64
}

// New wires an estimator for the given encoding variant around a loaded
// artifact. The refit variant also refits the scaler on the submitted row.
func New(variant string, a *predictor.Artifact, p predictor.Predictor, m *Metrics) (*Estimator, error) {
	enc, err := encoding.NewEncoder(variant)
	if err != nil {
		return nil, err
	}
	if p.Width() > 0 && p.Width() != len(a.Columns) {
		return nil, fmt.Errorf("%w: model takes %d columns, artifact lists %d", features.ErrSchemaMismatch, p.Width(), len(a.Columns))
	}
	scaler := a.FeatureScaler()
	if enc.Variant() == encoding.VariantRefit {
		scaler = features.RefitScaler{}
	}
	if m == nil {
		m = NewMetrics(nil)
	}
	return &Estimator{
		Encoder:   enc,
		Scaler:    scaler,
		Columns:   a.Columns,
		Predictor: p,
		Metrics:   m,
	}, nil
}

// Estimate runs the pipeline for r. Any failing step aborts the estimate.
func (e *Estimator) Estimate(ctx context.Context, r dal.Record) (Estimate, error) {
	start := time.Now()
	est, err := e.estimate(ctx, r)
	if e.Metrics != nil {
		e.Metrics.Duration.Observe(time.Since(start).Seconds())
		e.Metrics.Predictions.WithLabelValues(Outcome(err)).Inc()
		for _, field := range est.Encoding.Fallbacks {
			e.Metrics.Fallbacks.WithLabelValues(field).Inc()
		}
	}
	return est, err
}

func (e *Estimator) estimate(ctx context.Context, r dal.Record) (Estimate, error) {
	est := Estimate{Encoding: e.Encoder.Encode(r)}

	v, err := features.Engineer(r, est.Encoding)
	if err != nil {
		return est, err
	}
	if e.Scaler != nil {
		if err := e.Scaler.Scale(v); err != nil {
			return est, err
		}
	}
	est.Vector, err = v.Project(e.Columns)
	if err != nil {
		return est, err
	}
	est.Price, err = e.Predictor.Predict(ctx, est.Vector)
	if err != nil {
		return est, fmt.Errorf("predict with %s: %w", e.Predictor.Name(), err)
	}
	return est, nil
}

// Variant returns the name of the encoding variant in use.
func (e *Estimator) Variant() string {
	return e.Encoder.Variant()
}

// Outcome names the error kind of err for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, features.ErrDivision):
		return "division_error"
	case errors.Is(err, features.ErrDomain):
		return "domain_error"
	case errors.Is(err, features.ErrSchemaMismatch):
		return "schema_mismatch"
	case errors.Is(err, predictor.ErrUpstream):
		return "upstream_error"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}
