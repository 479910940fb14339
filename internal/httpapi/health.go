package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"academy-api/internal/apperr"
	"academy-api/internal/logging"
)

const livenessText = "Server PFA berjalan"

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, livenessText)
	}
}

// Health reports 503 when the database does not answer a ping.
func Health(db Pinger, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logging.LogError(ctx, logger, "health check failed", apperr.Upstream("postgres", err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
