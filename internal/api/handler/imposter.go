package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/partygamehq/partygame-go/internal/api/middleware"
	"github.com/partygamehq/partygame-go/internal/api/request"
	"github.com/partygamehq/partygame-go/internal/api/response"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/imposter"
)

// ImposterHandler handles imposter game endpoints
type ImposterHandler struct {
	engine *imposter.Engine
}

// NewImposterHandler creates a new imposter handler
func NewImposterHandler(engine *imposter.Engine) *ImposterHandler {
	return &ImposterHandler{engine: engine}
}

// Settings handles POST /api/v1/lobbies/{code}/imposter/settings
func (h *ImposterHandler) Settings(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])
	requester := middleware.MustUserName(r.Context())

	var req request.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.engine.ApplySettings(r.Context(), code, requester, req.Settings); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ack{Success: true})
}

// Start handles POST /api/v1/lobbies/{code}/imposter/start
func (h *ImposterHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])
	requester := middleware.MustUserName(r.Context())

	var req request.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.engine.StartRound(r.Context(), code, requester, req.Settings); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ack{Success: true})
}

// Vote handles POST /api/v1/lobbies/{code}/imposter/vote.
// Out-of-phase, over-cap and duplicate votes succeed without effect.
func (h *ImposterHandler) Vote(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])
	voter := middleware.MustUserName(r.Context())

	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.engine.CastVote(r.Context(), code, voter, req.Target); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ack{Success: true})
}
