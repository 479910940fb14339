package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

const (
	connectBudget  = 30 * time.Second
	connectBackoff = 1 * time.Second
	attemptTimeout = 2 * time.Second
)

// Connect opens a pool and waits until the database answers a ping,
// retrying for up to 30 seconds.
func Connect(ctx context.Context, url string, maxConns int32, logger *slog.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, oops.Code("DB_CONFIG_INVALID").Wrap(err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	var pool *pgxpool.Pool
	backoff := retry.WithMaxDuration(connectBudget, retry.NewConstant(connectBackoff))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		defer cancel()

		p, err := pgxpool.NewWithConfig(attemptCtx, cfg)
		if err != nil {
			return retry.RetryableError(err)
		}
		if err := p.Ping(attemptCtx); err != nil {
			p.Close()
			logger.Warn("database not ready, retrying", "error", err)
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").
			With("budget", connectBudget.String()).
			Wrap(err)
	}

	return pool, nil
}
