package model

import "errors"

// Common errors used across the application
var (
	// Lobby errors
	ErrLobbyNotFound = errors.New("lobby not found")
	ErrUnknownGame   = errors.New("unknown game kind")
	ErrPhaseLocked   = errors.New("action not allowed in the current phase")
	ErrNotInLobby    = errors.New("player is not in lobby")

	// Identity errors
	ErrNoIdentity = errors.New("no display name set")

	// Host authority errors
	ErrNotHost = errors.New("player is not the host")

	// Round errors
	ErrInvalidSettings = errors.New("invalid round settings")
	ErrInvalidState    = errors.New("invalid game state")

	// Word bank errors
	ErrWordBankNotLoaded = errors.New("word bank not loaded")
)
