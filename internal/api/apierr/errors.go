// Package apierr maps domain errors onto the HTTP failure envelope.
//
// Every failure is surfaced as {"success": false, "message": ...} with a
// status from the fixed set: 400 invalid input or state, 401 missing
// identity, 403 not host, 404 unknown lobby, 500 anything unexpected.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/partygamehq/partygame-go/internal/model"
)

// Failure is the body of every error response
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// httpError combines an HTTP status code with a response message
type httpError struct {
	status  int
	message string
}

// Error implements the error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(Failure{Success: false, Message: he.message})
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrLobbyNotFound):
		return &httpError{http.StatusNotFound, "Lobby not found."}
	case errors.Is(err, model.ErrNoIdentity):
		return &httpError{http.StatusUnauthorized, "You must set a username first."}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, "Only the host can perform this action."}
	case errors.Is(err, model.ErrPhaseLocked):
		return &httpError{http.StatusBadRequest, "Cannot join a game that has already started."}
	case errors.Is(err, model.ErrUnknownGame):
		return &httpError{http.StatusBadRequest, "A known game type must be specified."}
	case errors.Is(err, model.ErrInvalidSettings):
		return &httpError{http.StatusBadRequest, "Settings are invalid for the current player count."}
	case errors.Is(err, model.ErrInvalidState):
		return &httpError{http.StatusBadRequest, "Conditions not met for this action."}
	default:
		return &httpError{http.StatusInternalServerError, "Internal server error."}
	}
}

// NewInvalidRequestError creates a 400 error with a specific message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}
