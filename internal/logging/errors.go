package logging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/oops"
)

// LogError logs err at error level. Coded errors also contribute their
// code and the key/values attached with oops.With.
func LogError(ctx context.Context, logger *slog.Logger, msg string, err error) {
	attrs := []slog.Attr{slog.String("error", err.Error())}

	if oe, ok := oops.AsOops(err); ok {
		if code := oe.Code(); code != nil {
			attrs = append(attrs, slog.String("code", fmt.Sprint(code)))
		}
		if fields := oe.Context(); len(fields) > 0 {
			attrs = append(attrs, slog.Any("context", fields))
		}
	}

	logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
