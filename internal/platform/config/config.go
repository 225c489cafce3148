// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration for the server.
type Config struct {
	Env  string
	Port int

	// JWTKey signs access tokens, JWTRefreshKey signs refresh tokens.
	// They are independent so a key compromise is containable per kind.
	JWTKey        string
	JWTRefreshKey string

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Load reads the configuration from environment variables.
// The signing keys are required: a missing key is a startup error, never a
// silent fallback to a default secret.
func Load() (Config, error) {
	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		return Config{}, fmt.Errorf("JWT_KEY is required")
	}
	jwtRefreshKey := os.Getenv("JWT_REFRESH_KEY")
	if jwtRefreshKey == "" {
		return Config{}, fmt.Errorf("JWT_REFRESH_KEY is required")
	}

	accessTTL, err := getEnvDuration("JWTKEY_EXPIRY", time.Hour)
	if err != nil {
		return Config{}, err
	}
	refreshTTL, err := getEnvDuration("JWT_REFRESH_KEY_EXPIRY", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnvInt("PORT", 8092),
		JWTKey:        jwtKey,
		JWTRefreshKey: jwtRefreshKey,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if num, err := strconv.Atoi(v); err == nil {
			return num
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
