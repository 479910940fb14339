// Package handler is the serverless entry point. The platform calls Handler
// for every request; the app is built on first use and reused afterwards.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"academy-api/internal/app"
	"academy-api/internal/config"
	"academy-api/internal/logging"
)

var (
	mu      sync.Mutex
	current http.Handler
)

func Handler(w http.ResponseWriter, r *http.Request) {
	h, err := handler(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"service unavailable","code":"UNAVAILABLE"}`))
		return
	}
	h.ServeHTTP(w, r)
}

// handler builds the app once. A failed build is retried on the next request.
func handler(ctx context.Context) (http.Handler, error) {
	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		return current, nil
	}

	cfg, err := config.LoadEnv()
	if err != nil {
		logging.LogError(ctx, logging.Setup("academy-api", "serverless", "json", nil), "invalid configuration", err)
		return nil, err
	}
	gin.SetMode(gin.ReleaseMode)
	logger := logging.Setup("academy-api", "serverless", cfg.LogFormat, nil)

	a, err := app.New(context.WithoutCancel(ctx), cfg, logger)
	if err != nil {
		logging.LogError(ctx, logger, "startup failed", err)
		return nil, err
	}
	current = a.Handler
	return current, nil
}
