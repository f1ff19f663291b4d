package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/features"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func row(hp, weight float64) []float64 {
	r := make([]float64, len(features.DefaultColumns))
	for i, c := range features.DefaultColumns {
		switch c {
		case "horsepower":
			r[i] = hp
		case "curbweight":
			r[i] = weight
		}
	}
	return r
}

func TestLoadArtifact(t *testing.T) {
	a, err := LoadArtifact("testdata/model.yaml")
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if a.Name != "car-price" {
		t.Errorf("Name = %q", a.Name)
	}
	if diff := cmp.Diff(features.DefaultColumns, a.Columns); diff != "" {
		t.Errorf("columns (-want +got):\n%s", diff)
	}
	if a.FeatureScaler() != nil {
		t.Error("expected no scaler")
	}
}

func TestParseArtifactErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "WidthMismatch",
			doc: `
columns: [a, b]
layers:
  - weights: [[1]]
    bias: [0]`,
		},
		{
			name: "RaggedWeights",
			doc: `
columns: [a, b]
layers:
  - weights: [[1, 2], [1]]
    bias: [0, 0]`,
		},
		{
			name: "BiasMismatch",
			doc: `
columns: [a]
layers:
  - weights: [[1, 2]]
    bias: [0]`,
		},
		{
			name: "UnknownActivation",
			doc: `
columns: [a]
layers:
  - weights: [[1]]
    bias: [0]
    activation: softplus`,
		},
		{
			name: "DuplicateColumn",
			doc:  `columns: [a, a]`,
		},
		{
			name: "NotYAML",
			doc:  `layers: {{`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseArtifact([]byte(tc.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestArtifactScaler(t *testing.T) {
	a, err := ParseArtifact([]byte(`
name: scaled
columns: [horsepower]
scaler:
  mean: {horsepower: 100}
  std: {horsepower: 40}
layers:
  - weights: [[2]]
    bias: [1]
`))
	if err != nil {
		t.Fatalf("ParseArtifact: %v", err)
	}
	s, ok := a.FeatureScaler().(features.StandardScaler)
	if !ok {
		t.Fatalf("FeatureScaler() = %T", a.FeatureScaler())
	}
	if s.Mean["horsepower"] != 100 || s.Std["horsepower"] != 40 {
		t.Errorf("scaler = %+v", s)
	}
}

func TestDensePredict(t *testing.T) {
	a, err := LoadArtifact("testdata/model.yaml")
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	d, err := NewDense(a)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if d.Width() != 41 {
		t.Errorf("Width() = %d", d.Width())
	}

	got, err := d.Predict(context.Background(), row(100, 2000))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got != 14500 {
		t.Errorf("Expected: 14500, Got: %v", got)
	}

	// relu clamps the negative hidden unit
	got, err = d.Predict(context.Background(), row(-10, 0))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got != 500 {
		t.Errorf("Expected: 500, Got: %v", got)
	}

	if _, err := d.Predict(context.Background(), []float64{1, 2, 3}); !errors.Is(err, features.ErrSchemaMismatch) {
		t.Errorf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestNewDenseWithoutLayers(t *testing.T) {
	a, err := ParseArtifact([]byte(`name: columns-only`))
	if err != nil {
		t.Fatalf("ParseArtifact: %v", err)
	}
	if _, err := NewDense(a); err == nil {
		t.Error("expected error for artifact without layers")
	}
}

func TestRemotePredict(t *testing.T) {
	var calls int
	client := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			calls++
			if req.Method != http.MethodPost {
				t.Fatalf("method = %s", req.Method)
			}
			if req.URL.Path != "/v1/models/car-price:predict" {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			var in predictRequest
			if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
				t.Fatalf("decode req: %v", err)
			}
			if len(in.Instances) != 1 || len(in.Instances[0]) != 3 {
				t.Fatalf("instances = %v", in.Instances)
			}
			b, _ := json.Marshal(predictResponse{Predictions: [][]float64{{in.Instances[0][0] * 1000}}})
			return &http.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(bytes.NewReader(b)),
			}, nil
		}),
	}

	r, err := NewRemote("http://serving/", "car-price", 3, time.Second, client)
	if err != nil {
		t.Fatalf("NewRemote: %v", err)
	}
	got, err := r.Predict(context.Background(), []float64{12.5, 0, 1})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got != 12500 {
		t.Errorf("Expected: 12500, Got: %v", got)
	}

	if _, err := r.Predict(context.Background(), []float64{1}); !errors.Is(err, features.ErrSchemaMismatch) {
		t.Errorf("expected ErrSchemaMismatch, got %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRemoteErrors(t *testing.T) {
	tests := []struct {
		name   string
		resp   *http.Response
		err    error
		expect error
	}{
		{
			name:   "BadRequest",
			resp:   jsonResponse(http.StatusBadRequest, `{"error": "input size mismatch"}`),
			expect: features.ErrSchemaMismatch,
		},
		{
			name:   "ServerError",
			resp:   jsonResponse(http.StatusInternalServerError, `boom`),
			expect: ErrUpstream,
		},
		{
			name:   "EmptyPredictions",
			resp:   jsonResponse(http.StatusOK, `{"predictions": []}`),
			expect: ErrUpstream,
		},
		{
			name:   "MalformedBody",
			resp:   jsonResponse(http.StatusOK, `not json`),
			expect: ErrUpstream,
		},
		{
			name:   "WrongShape",
			resp:   jsonResponse(http.StatusOK, `{"predictions": "high"}`),
			expect: ErrUpstream,
		},
		{
			name:   "Transport",
			err:    errors.New("connection refused"),
			expect: ErrUpstream,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &http.Client{
				Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
					return tc.resp, tc.err
				}),
			}
			r, err := NewRemote("http://serving", "m", 0, 0, client)
			if err != nil {
				t.Fatalf("NewRemote: %v", err)
			}
			if _, err := r.Predict(context.Background(), []float64{1}); !errors.Is(err, tc.expect) {
				t.Errorf("expected %v, got %v", tc.expect, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	a, err := LoadArtifact("testdata/model.yaml")
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}

	p, err := New(Options{}, a)
	if err != nil {
		t.Fatalf("New dense: %v", err)
	}
	if _, ok := p.(*Dense); !ok {
		t.Errorf("New(default) = %T", p)
	}

	p, err = New(Options{Kind: KindRemote, RemoteURL: "http://serving:8501"}, a)
	if err != nil {
		t.Fatalf("New remote: %v", err)
	}
	if p.Name() != "car-price" || p.Width() != 41 {
		t.Errorf("remote = %s/%d", p.Name(), p.Width())
	}

	if _, err := New(Options{Kind: KindRemote}, a); err == nil {
		t.Error("expected error for remote without url")
	}
	if _, err := New(Options{Kind: "onnx"}, a); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}
