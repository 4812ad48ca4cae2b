package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Username  string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("PARTYGAME_SERVER", "http://localhost:8080"),
		Username:  os.Getenv("PARTYGAME_USERNAME"),
		Output:    "text",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
