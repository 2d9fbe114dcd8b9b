package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is used when no endpoint is configured. It points at the
// hosted Wish Store for the annual campaign.
const DefaultEndpoint = "https://functions.poehali.dev/8990a62f-83d1-4f33-88e1-fa8fcffaea2a"

// Config holds all runtime configuration for the client.
type Config struct {
	// Endpoint is the Wish Store URL.
	Endpoint string
	// AdminPassword, when set, pre-fills the admin credential so it does
	// not have to be typed into every privileged dialog. It is still sent
	// to the server on every privileged call; the server is the gate.
	AdminPassword string
	// Debug enables file logging from the TUI.
	Debug bool
}

// Load reads configuration from a .env file (if present) and the
// environment. Flags override the result at the CLI layer.
func Load() (*Config, error) {
	// A missing .env is fine; only a malformed one is an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Endpoint:      getEnvOrDefault("WISHTREE_ENDPOINT", DefaultEndpoint),
		AdminPassword: os.Getenv("WISHTREE_ADMIN_PASSWORD"),
		Debug:         os.Getenv("WISHTREE_DEBUG") != "",
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
