package httpapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"academy-api/internal/apperr"
	"academy-api/internal/logging"
)

// Errors renders the last error attached with c.Error as
// {message, code, request_id}, unless the handler already wrote a body.
func Errors(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		renderError(c, logger, c.Errors.Last().Err)
	}
}

func renderError(c *gin.Context, logger *slog.Logger, err error) {
	ctx := c.Request.Context()
	status := apperr.Status(err)
	code := apperr.Code(err)

	if status >= 500 {
		logging.LogError(ctx, logger, "request failed", err)
	} else {
		logger.InfoContext(ctx, "request rejected", "code", code, "error", err.Error())
	}

	c.AbortWithStatusJSON(status, gin.H{
		"message":    apperr.PublicMessage(err),
		"code":       code,
		"request_id": logging.RequestID(ctx),
	})
}

// fail attaches err for Errors to render and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
