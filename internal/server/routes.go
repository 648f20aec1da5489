package server

import (
	"net/http"

	"github.com/exatools/exa-mcp-server/internal/exa"
	"github.com/exatools/exa-mcp-server/internal/handler"
	"github.com/exatools/exa-mcp-server/internal/middleware"
	"github.com/exatools/exa-mcp-server/internal/tools"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) setupRoutes() (http.Handler, error) {
	cfg := s.cfg

	if cfg.ExaAPIKey == "" {
		log.Warn().Msg("EXA_API_KEY not set - every tool call will return a credential error")
	}

	client := exa.NewClient(cfg.ExaAPIKey, cfg.ExaBaseURL)
	registry := tools.NewRegistry(client)

	log.Info().
		Int("tools", len(registry.List())).
		Bool("auth_enabled", cfg.EnableAuth && len(cfg.APIKeys) > 0).
		Bool("exa_api_key_set", cfg.ExaAPIKey != "").
		Msg("service configuration")

	healthH := handler.NewHealthHandler(cfg.ExaAPIKey != "")
	mcpH := handler.NewMCPHandler(registry)

	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	// Auth + rate limiting for the tool-invocation endpoint
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
		if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
			r.Use(middleware.Auth(cfg.APIKeys, cfg.APIKeyHeader))
		}
		r.Post("/mcp", mcpH.Serve)
	})

	return r, nil
}
