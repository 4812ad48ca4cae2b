// Package response defines the JSON response bodies of the API.
// Every body carries a success flag per the client contract.
package response

import (
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/view"
)

// Ack is a bare success acknowledgement
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreateLobby is the response to lobby creation
type CreateLobby struct {
	Success bool   `json:"success"`
	LobbyID string `json:"lobbyId"`
}

// JoinLobby is the response to joining, echoing the member list
type JoinLobby struct {
	Success bool     `json:"success"`
	LobbyID string   `json:"lobbyId"`
	Players []string `json:"players"`
}

// LobbyView wraps a per-requester lobby projection
type LobbyView struct {
	Success bool       `json:"success"`
	Lobby   view.Lobby `json:"lobby"`
	IsHost  bool       `json:"isHost"`
}

// Spin is the response to a bottle spin
type Spin struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
}

// Categories lists the word bank categories
type Categories struct {
	Success    bool                 `json:"success"`
	Categories []model.WordCategory `json:"categories"`
}
