package estimator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus collectors updated by Estimate.
type Metrics struct {
	Predictions *prometheus.CounterVec
	Duration    prometheus.Histogram
	Fallbacks   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carprice_predictions_total",
				Help: "Price estimates by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "carprice_prediction_duration_seconds",
				Help:    "Time spent encoding, engineering and predicting one record",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		Fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carprice_category_fallbacks_total",
				Help: "Categorical values missing from the vocabulary, encoded as 0",
			},
			[]string{"field"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Predictions, m.Duration, m.Fallbacks)
	}
	return m
}
