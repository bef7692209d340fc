package environment

import (
	"context"
	"log/slog"
	"net/http"

	"detransport-ads-bot/internal/config"
	"detransport-ads-bot/internal/telegram"
)

type Servers struct {
	HTTP struct {
		Observability *http.Server
		API           *http.Server
	}
}

func newServers(ctx context.Context, cfg config.Config, logger *slog.Logger, clients *Clients, services *Services) *Servers {
	var servers Servers

	// Публичный read API
	mux := http.NewServeMux()
	mux.Handle("/api/ads", telegram.AdsAPIHandler(services.SubmissionService, logger.WithGroup("api")))

	servers.HTTP.API = &http.Server{
		Addr:              cfg.API.ADDR(),
		Handler:           telegram.WithCORS(mux, cfg.API.AllowedOrigins),
		ReadTimeout:       cfg.API.ReadTimeout,
		WriteTimeout:      cfg.API.WriteTimeout,
		IdleTimeout:       cfg.API.IdleTimeout,
		ReadHeaderTimeout: cfg.API.ReadTimeout,
	}

	servers.HTTP.Observability = initObservability(ctx, logger.WithGroup("http"), clients, cfg)

	return &servers
}
