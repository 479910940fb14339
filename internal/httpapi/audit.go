package httpapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// audit records a mutation and who made it.
func audit(c *gin.Context, logger *slog.Logger, action, table string, id int64, attrs ...any) {
	who := identity(c)
	args := append([]any{
		"actor_id", who.UserID,
		"actor_email", who.Email,
		"action", action,
		"target", table,
		"target_id", id,
	}, attrs...)
	logger.InfoContext(c.Request.Context(), "audit", args...)
}
