package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	LogLevel    string `json:"log_level"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Optional auth for the HTTP surface (distinct from the Exa credential)
	APIKeyHeader string   `json:"api_key_header"`
	APIKeys      []string `json:"api_keys"`
	EnableAuth   bool     `json:"enable_auth"`

	// Rate Limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// Exa upstream
	ExaAPIKey  string `json:"exa_api_key"`
	ExaBaseURL string `json:"exa_base_url"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:               DefaultHost,
		Port:               DefaultPort,
		Environment:        DefaultEnvironment,
		LogLevel:           DefaultLogLevel,
		CORSOrigins:        DefaultCORSOrigins,
		APIKeyHeader:       "X-API-Key",
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		ExaBaseURL:         DefaultExaBaseURL,
	}

	// Load from JSON config file if specified
	if path := getEnv("EXA_MCP_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("EXA_MCP_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("EXA_MCP_SERVER_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("EXA_MCP_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("EXA_MCP_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("EXA_MCP_API_KEYS", ""); v != "" {
		cfg.APIKeys = strings.Split(v, ",")
		cfg.EnableAuth = true
	}
	if v := getEnv("ENABLE_AUTH", ""); v != "" {
		cfg.EnableAuth = v == "true" || v == "1"
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
	if v := getEnv("EXA_API_KEY", ""); v != "" {
		cfg.ExaAPIKey = v
	}
	if v := getEnv("EXA_BASE_URL", ""); v != "" {
		cfg.ExaBaseURL = v
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
