package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/features"
)

const defaultRemoteTimeout = 5 * time.Second

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
	Error       string      `json:"error,omitempty"`
}

// Remote calls a TensorFlow Serving REST endpoint.
type Remote struct {
	endpoint string
	name     string
	width    int
	timeout  time.Duration
	client   *http.Client
}

// NewRemote returns a predictor posting to {baseURL}/v1/models/{name}:predict.
// A nil client uses http.DefaultClient.
func NewRemote(baseURL, name string, width int, timeout time.Duration, client *http.Client) (*Remote, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("remote predictor: base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("remote predictor: %w", err)
	}
	if name == "" {
		return nil, errors.New("remote predictor: model name is required")
	}
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{
		endpoint: baseURL + "/v1/models/" + url.PathEscape(name) + ":predict",
		name:     name,
		width:    width,
		timeout:  timeout,
		client:   client,
	}, nil
}

// Predict implements Predictor.
func (r *Remote) Predict(ctx context.Context, row []float64) (float64, error) {
	if r.width > 0 && len(row) != r.width {
		return 0, fmt.Errorf("%w: model %q expects %d columns, got %d", features.ErrSchemaMismatch, r.name, r.width, len(row))
	}

	body, err := json.Marshal(predictRequest{Instances: [][]float64{row}})
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}

	var out predictResponse
	decodeErr := json.Unmarshal(raw, &out)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return 0, fmt.Errorf("%w: %s", features.ErrSchemaMismatch, upstreamMessage(out, raw))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return 0, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, upstreamMessage(out, raw))
	case decodeErr != nil:
		return 0, fmt.Errorf("%w: decode response: %v", ErrUpstream, decodeErr)
	}

	if len(out.Predictions) == 0 || len(out.Predictions[0]) == 0 {
		return 0, fmt.Errorf("%w: empty predictions", ErrUpstream)
	}
	return out.Predictions[0][0], nil
}

// Width implements Predictor.
func (r *Remote) Width() int { return r.width }

// Name implements Predictor.
func (r *Remote) Name() string { return r.name }

func upstreamMessage(out predictResponse, raw []byte) string {
	if out.Error != "" {
		return out.Error
	}
	return strings.TrimSpace(string(raw))
}
