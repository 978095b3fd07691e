// Package errors centralizes error responses for API handlers: server
// errors are logged with request context and every error path returns
// the same JSON error shape.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorResponse is the JSON body for every error status.
type errorResponse struct {
	Error string `json:"error"`
}

// ErrorLogger logs server-side failures and writes the client-facing
// error body. Handlers get one injected so logging stays uniform.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the underlying error with request context and
// responds 500 with userMsg. The real error never reaches the client.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	Write(w, http.StatusInternalServerError, userMsg)
}

// Write responds with the given status and the standard error body.
func Write(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// WriteBadRequest responds 400 with the given message.
func WriteBadRequest(w http.ResponseWriter, msg string) {
	Write(w, http.StatusBadRequest, msg)
}

// WriteNotFound responds 404.
func WriteNotFound(w http.ResponseWriter) {
	Write(w, http.StatusNotFound, "not found")
}
