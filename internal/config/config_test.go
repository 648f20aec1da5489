package config_test

import (
	"testing"

	"github.com/exatools/exa-mcp-server/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != config.DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, config.DefaultPort)
	}
	if cfg.ExaBaseURL != config.DefaultExaBaseURL {
		t.Errorf("ExaBaseURL = %q", cfg.ExaBaseURL)
	}
	if cfg.RateLimitPerMinute != config.DefaultRateLimitPerMinute {
		t.Errorf("RateLimitPerMinute = %d", cfg.RateLimitPerMinute)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EXA_API_KEY", "secret-key")
	t.Setenv("EXA_MCP_SERVER_PORT", "9100")
	t.Setenv("EXA_BASE_URL", "http://localhost:8111")
	t.Setenv("EXA_MCP_LOG_LEVEL", "debug")
	t.Setenv("EXA_MCP_API_KEYS", "k1,k2")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ExaAPIKey != "secret-key" {
		t.Errorf("ExaAPIKey = %q", cfg.ExaAPIKey)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want 9100", cfg.Port)
	}
	if cfg.ExaBaseURL != "http://localhost:8111" {
		t.Errorf("ExaBaseURL = %q", cfg.ExaBaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !cfg.EnableAuth || len(cfg.APIKeys) != 2 {
		t.Errorf("auth config not applied: enabled=%v keys=%v", cfg.EnableAuth, cfg.APIKeys)
	}
}

func TestInvalidPortIgnored(t *testing.T) {
	t.Setenv("EXA_MCP_SERVER_PORT", "not-a-port")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != config.DefaultPort {
		t.Errorf("Port = %d, want default %d", cfg.Port, config.DefaultPort)
	}
}
