package predictor

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Predictor kinds accepted by New.
const (
	KindDense  = "dense"
	KindRemote = "remote"
)

var (
	// ErrUpstream is returned when a remote model server fails.
	ErrUpstream = errors.New("model server error")
	// ErrUnknownKind is returned by New for an unsupported predictor kind.
	ErrUnknownKind = errors.New("unknown predictor kind")
)

// Predictor runs a trained regression model on one feature row.
type Predictor interface {
	// Predict returns the first output of the model for row.
	Predict(ctx context.Context, row []float64) (float64, error)

	// Width is the number of input columns the model expects.
	Width() int

	// Name returns the name of the model.
	Name() string
}

// Options selects and configures a predictor.
type Options struct {
	Kind          string
	RemoteURL     string
	RemoteModel   string
	RemoteTimeout time.Duration
}

// New builds the predictor described by opts for artifact a.
func New(opts Options, a *Artifact) (Predictor, error) {
	switch opts.Kind {
	case "", KindDense:
		return NewDense(a)
	case KindRemote:
		name := opts.RemoteModel
		if name == "" {
			name = a.Name
		}
		return NewRemote(opts.RemoteURL, name, len(a.Columns), opts.RemoteTimeout, nil)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, opts.Kind)
}
