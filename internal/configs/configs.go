/*
Package configs loads and parses the application's configuration settings.

All values come from environment variables: the running environment, listen
port, CORS allowed origins, the data directory holding the persisted user and
ban documents, and the per-IP connection rate limit.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig contains all configuration parameters required to run the relay.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string

	// Persistence Settings
	DataDir string

	// Per-IP WebSocket connection rate limit (events per second, burst size).
	ConnectRate  float64
	ConnectBurst int
}

// LoadConfig reads the application configuration from environment variables,
// applying defaults and validating values where needed.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "3000"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	// --- Persistence Settings ---
	cfg.DataDir = os.Getenv("DATA_DIR")
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	// --- Connection Rate Limit Settings ---
	rateStr := os.Getenv("CONNECT_RATE")
	if rateStr == "" {
		rateStr = "1"
	}
	connectRate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CONNECT_RATE environment variable: %w", err)
	}
	cfg.ConnectRate = connectRate

	burstStr := os.Getenv("CONNECT_BURST")
	if burstStr == "" {
		burstStr = "5"
	}
	connectBurst, err := strconv.Atoi(burstStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CONNECT_BURST environment variable: %w", err)
	}
	cfg.ConnectBurst = connectBurst

	return cfg, nil
}
