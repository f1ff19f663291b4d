package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/dal"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/encoding"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/estimator"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/features"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/form"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/predictor"
)

// GetForm renders the empty form with default values
func (h *httpServer) GetForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, newPageData(dal.DefaultRecord()))
}

// PostForm estimates the price of the submitted form and renders it below
// the form
func (h *httpServer) PostForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.log.Warn("form parse failed", "error", err)
		data := newPageData(dal.DefaultRecord())
		data.Error = err.Error()
		h.render(w, http.StatusBadRequest, data)
		return
	}

	rec, err := form.Parse(r.PostForm)
	data := newPageData(rec)
	if err != nil {
		h.log.Warn("form validation failed", "error", err)
		data.Error = err.Error()
		h.render(w, http.StatusBadRequest, data)
		return
	}

	requestID := uuid.NewString()
	est, err := h.estimator.Estimate(r.Context(), rec)
	if err != nil {
		h.log.Error("prediction failed", "request_id", requestID, "outcome", estimator.Outcome(err), "error", err)
		data.Error = fmt.Sprintf("Could not estimate a price: %v", err)
		h.render(w, statusFor(err), data)
		return
	}

	h.log.Info("prediction", "request_id", requestID, "price", est.Price, "fallbacks", est.Encoding.Fallbacks)
	data.HasPrice = true
	data.Price = est.Price
	h.render(w, http.StatusOK, data)
}

// CreatePrediction defines a POST handler taking a JSON record. Fields left
// out of the body keep the form defaults
func (h *httpServer) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	requestID := uuid.NewString()

	rec, err := validateRecord(r.Body)
	if err != nil {
		h.log.Warn("record validation failed", "request_id", requestID, "error", err)
		writeJSON(w, http.StatusBadRequest, dal.ErrorResponse{RequestID: requestID, Error: err.Error()})
		return
	}

	est, err := h.estimator.Estimate(r.Context(), rec)
	if err != nil {
		h.log.Error("prediction failed", "request_id", requestID, "outcome", estimator.Outcome(err), "error", err)
		writeJSON(w, statusFor(err), dal.ErrorResponse{RequestID: requestID, Error: err.Error()})
		return
	}

	h.log.Info("prediction", "request_id", requestID, "price", est.Price, "fallbacks", est.Encoding.Fallbacks)
	writeJSON(w, http.StatusOK, dal.PredictionResponse{
		RequestID: requestID,
		Price:     est.Price,
		Variant:   h.estimator.Variant(),
		Codes:     est.Encoding.Codes,
		Fallbacks: est.Encoding.Fallbacks,
	})
}

// GetVocabulary returns the category code table
func (h *httpServer) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, encoding.Codes.Fields())
}

// Health reports the loaded model
func (h *httpServer) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"model":   h.estimator.Predictor.Name(),
		"columns": len(h.estimator.Columns),
		"variant": h.estimator.Variant(),
	})
}

func validateRecord(body io.Reader) (dal.Record, error) {
	rec := dal.DefaultRecord()
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return rec, errors.New("request body must be a JSON record")
		}
		return rec, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return rec, errors.New("request body has trailing data after the JSON record")
	}
	return rec, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, features.ErrDivision), errors.Is(err, features.ErrDomain):
		return http.StatusUnprocessableEntity
	case errors.Is(err, predictor.ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		w.Write([]byte(err.Error()))
	}
}

func (h *httpServer) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Execute(w, data); err != nil {
		h.log.Error("render failed", "error", err)
	}
}
