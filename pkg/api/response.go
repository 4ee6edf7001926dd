package api

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/valuecheck/pkg/logger"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, s.log, http.StatusOK, dataEnvelope{Data: data})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	writeJSON(w, r, s.log, status, errorEnvelope{Error: errorBody{Code: code, Message: message, Details: details}})
}
