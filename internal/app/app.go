// Package app assembles the HTTP handler from configuration: the database
// pool, stores, media uploader, token revocation list and router.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"academy-api/internal/auth"
	"academy-api/internal/auth/redisrevoke"
	"academy-api/internal/clock"
	"academy-api/internal/config"
	"academy-api/internal/httpapi"
	"academy-api/internal/media"
	"academy-api/internal/metrics"
	"academy-api/internal/store"
)

type App struct {
	Handler http.Handler

	pool    *pgxpool.Pool
	revoked *redisrevoke.List
	logger  *slog.Logger
}

// New connects to Postgres (and Redis when configured) and builds the router.
// Callers must Close the result.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	pool, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.MaxConns, logger)
	if err != nil {
		return nil, err
	}
	a := &App{pool: pool, logger: logger}

	var revoker auth.Revoker = auth.NopRevoker{}
	if cfg.Redis.URL != "" {
		a.revoked, err = redisrevoke.Open(ctx, cfg.Redis.URL)
		if err != nil {
			a.Close()
			return nil, err
		}
		revoker = a.revoked
	} else {
		logger.Warn("REDIS_URL not set, logout will not revoke tokens")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	uploader, err := newUploader(cfg.Cloudinary, m, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	clk := clock.New()
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clk)

	a.Handler, err = httpapi.NewRouter(httpapi.Deps{
		Logger:         logger,
		Clock:          clk,
		Auth:           auth.NewService(store.NewCredentials(pool), tokens, revoker, clk),
		Players:        store.NewPlayers(pool),
		Coaches:        store.NewCoaches(pool),
		Schedules:      store.NewSchedules(pool),
		Uploader:       uploader,
		DB:             pool,
		Metrics:        m,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func newUploader(cfg config.Cloudinary, m *metrics.Metrics, logger *slog.Logger) (media.Uploader, error) {
	var up media.Uploader = media.Disabled{}
	if cfg.Enabled() {
		cld, err := media.NewCloudinary(media.CloudinaryConfig{
			CloudName:      cfg.CloudName,
			APIKey:         cfg.APIKey,
			APISecret:      cfg.APISecret,
			Folder:         cfg.Folder,
			Transformation: cfg.Transformation,
		})
		if err != nil {
			return nil, err
		}
		up = cld
	} else {
		logger.Warn("cloudinary not configured, photo uploads are disabled")
	}

	if m != nil {
		up = m.Uploader(up)
	}
	return up, nil
}

// Close releases the pool and the Redis client.
func (a *App) Close() {
	if a.revoked != nil {
		if err := a.revoked.Close(); err != nil {
			a.logger.Warn("closing redis client", "error", err)
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
