package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; base64 images make them large.
const maxBodyBytes = 10 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// MessageResponse is the body of deletes and health checks
type MessageResponse struct {
	Message string `json:"message"`
}

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPHandler struct {
	db     Pinger
	logger *zap.Logger
}

func NewHTTPHandler(db Pinger, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{db: db, logger: logger}
}

// Hello answers GET / with a fixed greeting.
func (h *HTTPHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"hello": "world"})
}

// Healthz checks the database connection
func (h *HTTPHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Message: "database unavailable", Error: err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps service and validation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case domain.IsClientError(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with {message, error}; action reads like "create product".
func writeError(w http.ResponseWriter, logger *zap.Logger, r *http.Request, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("action", action),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, ErrorResponse{
		Message: "Failed to " + action,
		Error:   err.Error(),
	})
}

// decodeBody reads the JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBody, err)
	}
	return nil
}
