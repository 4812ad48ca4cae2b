package handler

import (
	"net/http"

	"github.com/partygamehq/partygame-go/internal/api/apierr"
)

// WriteError writes an error response using the API error mapping
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates a 400 error with a specific message
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
