package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/partygamehq/partygame-go/internal/api/middleware"
	"github.com/partygamehq/partygame-go/internal/api/response"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/bottle"
)

// BottleHandler handles spin-the-bottle endpoints
type BottleHandler struct {
	engine *bottle.Engine
}

// NewBottleHandler creates a new bottle handler
func NewBottleHandler(engine *bottle.Engine) *BottleHandler {
	return &BottleHandler{engine: engine}
}

// Spin handles POST /api/v1/lobbies/{code}/spin
func (h *BottleHandler) Spin(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])
	requester := middleware.MustUserName(r.Context())

	result, err := h.engine.Spin(r.Context(), code, requester)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Spin{Success: true, Result: result})
}
