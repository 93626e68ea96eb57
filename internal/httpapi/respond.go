package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/keikurono7/major-project/internal/confidence"
	"github.com/keikurono7/major-project/internal/content"
	"github.com/keikurono7/major-project/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err.Error())
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, confidence.ErrNotFound),
		errors.Is(err, content.ErrNotFound),
		errors.Is(err, confidence.ErrNoTopics):
		return http.StatusNotFound
	case errors.Is(err, session.ErrSessionActive),
		errors.Is(err, session.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, session.ErrAnswerCount),
		errors.Is(err, confidence.ErrInvalidOutcome):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID{name: name, raw: raw}
	}
	return id, nil
}

type errBadID struct {
	name string
	raw  string
}

func (e errBadID) Error() string {
	return "invalid " + e.name + ": " + strconv.Quote(e.raw)
}

func (s *Server) writeBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
