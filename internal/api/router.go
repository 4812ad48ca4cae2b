package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/partygamehq/partygame-go/internal/api/handler"
	apimiddleware "github.com/partygamehq/partygame-go/internal/api/middleware"
	"github.com/partygamehq/partygame-go/internal/middleware"
	"github.com/partygamehq/partygame-go/internal/services/bottle"
	"github.com/partygamehq/partygame-go/internal/services/identity"
	"github.com/partygamehq/partygame-go/internal/services/imposter"
	"github.com/partygamehq/partygame-go/internal/services/lobby"
	"github.com/partygamehq/partygame-go/internal/services/wordbank"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Identity       *identity.Service
	LobbyService   *lobby.Service
	ImposterEngine *imposter.Engine
	BottleEngine   *bottle.Engine
	WordBank       *wordbank.Service
	// PublicURL is the externally reachable base URL, used for QR join links
	PublicURL string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.Identity)
	lobbyHandler := handler.NewLobbyHandler(cfg.LobbyService, cfg.PublicURL)
	imposterHandler := handler.NewImposterHandler(cfg.ImposterEngine)
	bottleHandler := handler.NewBottleHandler(cfg.BottleEngine)
	wordBankHandler := handler.NewWordBankHandler(cfg.WordBank)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.RequestID())
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(apimiddleware.Identity(cfg.Identity))

	// Identity and reference data (no name required)
	api.HandleFunc("/user", userHandler.Set).Methods(http.MethodPost)
	api.HandleFunc("/categories", wordBankHandler.Categories).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Reads: anyone may poll a lobby; the projector decides what they see
	api.HandleFunc("/lobbies/{code}", lobbyHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/lobbies/{code}/qr", lobbyHandler.QR).Methods(http.MethodGet)

	// Leaving is best-effort even without a name
	api.HandleFunc("/lobbies/{code}/leave", lobbyHandler.Leave).Methods(http.MethodPost)

	// Mutations require a display name
	named := api.NewRoute().Subrouter()
	named.Use(apimiddleware.RequireName())
	named.HandleFunc("/lobbies", lobbyHandler.Create).Methods(http.MethodPost)
	named.HandleFunc("/lobbies/{code}/join", lobbyHandler.Join).Methods(http.MethodPost)
	named.HandleFunc("/lobbies/{code}/imposter/settings", imposterHandler.Settings).Methods(http.MethodPost)
	named.HandleFunc("/lobbies/{code}/imposter/start", imposterHandler.Start).Methods(http.MethodPost)
	named.HandleFunc("/lobbies/{code}/imposter/vote", imposterHandler.Vote).Methods(http.MethodPost)
	named.HandleFunc("/lobbies/{code}/spin", bottleHandler.Spin).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
