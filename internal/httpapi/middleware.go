package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/oops"

	"academy-api/internal/apperr"
	"academy-api/internal/auth"
	"academy-api/internal/logging"
	"academy-api/internal/models"
)

const (
	RequestIDHeader = "X-Request-ID"
	identityKey     = "identity"
)

type identityCtxKey struct{}

// IdentityFrom returns the caller attached by Guard, if any.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(models.Identity)
	return id, ok
}

func identity(c *gin.Context) models.Identity {
	v, _ := c.Get(identityKey)
	id, _ := v.(models.Identity)
	return id
}

// Guard requires a valid bearer token. A missing or malformed header is
// 401; a token that fails verification or was revoked is 403.
func Guard(authn Authenticator) gin.HandlerFunc {
	return guard(authn, false)
}

// SessionGuard is Guard for session inspection: every unusable token,
// including an expired or revoked one, is 401.
func SessionGuard(authn Authenticator) gin.HandlerFunc {
	return guard(authn, true)
}

func guard(authn Authenticator, session bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			fail(c, err)
			return
		}

		id, err := authn.Authenticate(c.Request.Context(), raw)
		if err != nil {
			if session {
				err = unauthorized(err)
			}
			fail(c, err)
			return
		}

		c.Set(identityKey, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), identityCtxKey{}, id))
		c.Next()
	}
}

// unauthorized recodes a rejected token as 401. The sentinel is rewrapped
// because oops reports the innermost code.
func unauthorized(err error) error {
	if apperr.Code(err) != apperr.CodeForbidden {
		return err
	}
	for _, sentinel := range []error{auth.ErrTokenExpired, auth.ErrTokenRevoked, auth.ErrInvalidToken} {
		if errors.Is(err, sentinel) {
			return apperr.Unauthorized(sentinel)
		}
	}
	return apperr.Unauthorized(auth.ErrInvalidToken)
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", apperr.Unauthorized(auth.ErrMissingToken)
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", apperr.Unauthorized(auth.ErrMalformedHeader)
	}
	return token, nil
}

// RequestID propagates or assigns X-Request-ID and stores it in the
// request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}

		logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Int("size", c.Writer.Size()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

// Recovery turns a panic into a 500 response in the usual error shape.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				renderError(c, logger, oops.Code(apperr.CodeInternal).Errorf("panic: %v", rec))
			}
		}()
		c.Next()
	}
}
