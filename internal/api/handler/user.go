package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/partygamehq/partygame-go/internal/api/request"
	"github.com/partygamehq/partygame-go/internal/api/response"
	"github.com/partygamehq/partygame-go/internal/services/identity"
)

// UserHandler handles display-name endpoints
type UserHandler struct {
	identity *identity.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(identity *identity.Service) *UserHandler {
	return &UserHandler{identity: identity}
}

// Set handles POST /api/v1/user
func (h *UserHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req request.SetUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	name, err := h.identity.Normalize(req.Username)
	if err != nil {
		WriteError(w, NewInvalidRequestError(
			fmt.Sprintf("Username must be at least %d characters long.", identity.MinNameLength)))
		return
	}

	http.SetCookie(w, h.identity.Cookie(name))
	response.JSON(w, http.StatusOK, response.Ack{Success: true, Message: "Username set successfully."})
}
