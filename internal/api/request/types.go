// Package request defines the JSON request bodies of the API
package request

import "github.com/partygamehq/partygame-go/internal/model"

// SetUserRequest sets the caller's display name
type SetUserRequest struct {
	Username string `json:"username"`
}

// CreateLobbyRequest creates a new lobby
type CreateLobbyRequest struct {
	Game string `json:"game"`
}

// SettingsRequest replaces an imposter lobby's settings
type SettingsRequest struct {
	Settings model.ImposterSettings `json:"settings"`
}

// StartRequest starts an imposter round with the given settings
type StartRequest struct {
	Settings model.ImposterSettings `json:"settings"`
}

// VoteRequest casts a vote against one target
type VoteRequest struct {
	Target string `json:"target"`
}
