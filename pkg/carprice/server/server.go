package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/estimator"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/logger"
)

const maxBodyBytes = 1 << 20

// NewHTTPServer returns a new HTTP server
func NewHTTPServer(addr string, est *estimator.Estimator, log *logger.Logger, gatherer prometheus.Gatherer) *http.Server {
	server := newHTTPServer(est, log)
	return &http.Server{
		Addr:              addr,
		Handler:           server.router(gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type httpServer struct {
	log       *logger.Logger
	estimator *estimator.Estimator
}

func newHTTPServer(est *estimator.Estimator, log *logger.Logger) *httpServer {
	if log == nil {
		log = logger.Nop()
	}
	return &httpServer{
		log:       log,
		estimator: est,
	}
}

func (h *httpServer) router(gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.GetForm).Methods(http.MethodGet)
	r.HandleFunc("/", h.PostForm).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/predictions", h.CreatePrediction).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/vocabulary", h.GetVocabulary).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	return r
}
