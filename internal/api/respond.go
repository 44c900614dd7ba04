package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"talentdesk/internal/errors"

	"go.uber.org/zap"
)

// envelope is the wire shape of every API response.
type envelope struct {
	Data  any `json:"data"`
	Error any `json:"error"`
}

func (s *Server) respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Data: data}); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// respondError maps a domain error onto the envelope. Validation errors expose
// their field map, NotFound its message; everything else is logged server-side
// and surfaced only as the generic fallback message.
func (s *Server) respondError(w http.ResponseWriter, err error, fallback string) {
	var status int
	var body any

	var de *errors.DomainError
	if !stderrors.As(err, &de) {
		de = errors.Internal(fallback, err)
	}

	switch de.Type {
	case errors.ErrTypeInvalidInput:
		status = http.StatusBadRequest
		if de.Fields != nil {
			body = de.Fields
		} else {
			body = de.Message
		}
	case errors.ErrTypeNotFound:
		status = http.StatusNotFound
		body = de.Message
	case errors.ErrTypeUnavailable:
		status = http.StatusServiceUnavailable
		body = fallback
		s.logger.Error("request failed", zap.Error(de))
	default:
		status = http.StatusInternalServerError
		body = fallback
		s.logger.Error("request failed",
			zap.Error(de),
			zap.ByteString("stack", de.StackTrace()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(envelope{Error: body}); encErr != nil {
		s.logger.Error("failed to encode error response", zap.Error(encErr))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}
