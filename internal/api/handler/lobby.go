package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/partygamehq/partygame-go/internal/api/middleware"
	"github.com/partygamehq/partygame-go/internal/api/request"
	"github.com/partygamehq/partygame-go/internal/api/response"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/lobby"
)

// LobbyHandler handles lobby lifecycle endpoints
type LobbyHandler struct {
	lobbies   *lobby.Service
	publicURL string
}

// NewLobbyHandler creates a new lobby handler.
// publicURL is the externally reachable base URL, used for join links.
func NewLobbyHandler(lobbies *lobby.Service, publicURL string) *LobbyHandler {
	return &LobbyHandler{
		lobbies:   lobbies,
		publicURL: publicURL,
	}
}

// Create handles POST /api/v1/lobbies
func (h *LobbyHandler) Create(w http.ResponseWriter, r *http.Request) {
	host := middleware.MustUserName(r.Context())

	var req request.CreateLobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Game == "" {
		WriteError(w, NewInvalidRequestError("A game type must be specified."))
		return
	}

	created, err := h.lobbies.Create(r.Context(), model.GameKind(req.Game), host)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CreateLobby{
		Success: true,
		LobbyID: string(created.Code),
	})
}

// Get handles GET /api/v1/lobbies/{code}
func (h *LobbyHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])
	requester := middleware.UserName(r.Context())

	v, err := h.lobbies.View(r.Context(), code, requester)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LobbyView{
		Success: true,
		Lobby:   *v,
		IsHost:  v.IsHost,
	})
}

// Join handles POST /api/v1/lobbies/{code}/join
func (h *LobbyHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])
	name := middleware.MustUserName(r.Context())

	joined, err := h.lobbies.Join(r.Context(), code, name)
	if err != nil {
		WriteError(w, err)
		return
	}

	players := make([]string, len(joined.Players))
	for i, p := range joined.Players {
		players[i] = p.Name
	}

	response.JSON(w, http.StatusOK, response.JoinLobby{
		Success: true,
		LobbyID: string(code),
		Players: players,
	})
}

// Leave handles POST /api/v1/lobbies/{code}/leave.
// Leaving is best-effort: the response is success even if the lobby or
// member is already gone.
func (h *LobbyHandler) Leave(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])
	name := middleware.UserName(r.Context())

	if err := h.lobbies.Leave(r.Context(), code, name); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ack{Success: true, Message: "You have left the lobby."})
}

// QR handles GET /api/v1/lobbies/{code}/qr, serving a QR code PNG of the
// join link so a phone can scan straight into the lobby
func (h *LobbyHandler) QR(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])

	exists, err := h.lobbies.Exists(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !exists {
		WriteError(w, model.ErrLobbyNotFound)
		return
	}

	size := 256
	if s := r.URL.Query().Get("size"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			size = min(max(parsed, 64), 1024)
		}
	}

	link := fmt.Sprintf("%s/join/%s", h.publicURL, code)
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
