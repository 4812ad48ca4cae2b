package redis

import "time"

// Config holds Redis connection and TTL settings
type Config struct {
	// URL is the Redis connection URL (redis://...)
	URL string
	// KeyPrefix namespaces all keys written by this instance
	KeyPrefix string
	// LobbyTTL is how long an untouched lobby survives.
	// Every save refreshes it; abandoned lobbies expire on their own.
	LobbyTTL time.Duration

	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis storage
func DefaultConfig() Config {
	return Config{
		KeyPrefix:    "partygame",
		LobbyTTL:     24 * time.Hour,
		PoolSize:     10,
		MinIdleConns: 2,
	}
}
