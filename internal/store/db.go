// Package store is the Postgres record store: one repository per table,
// statements composed with squirrel and executed through pgx.
package store

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by the repositories.
// pgxmock.PgxPoolIface satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

/* ===================== SQUIRREL HELPERS ===================== */

func qExec(ctx context.Context, db DB, q sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return db.Exec(ctx, sql, args...)
}

func qQuery(ctx context.Context, db DB, q sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return db.Query(ctx, sql, args...)
}

func qCount(ctx context.Context, db DB, q sq.Sqlizer) (int, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// collect runs q and scans every row into T by column name.
func collect[T any](ctx context.Context, db DB, q sq.Sqlizer) ([]T, error) {
	rows, err := qQuery(ctx, db, q)
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// collectOne runs q and scans exactly one row into T.
func collectOne[T any](ctx context.Context, db DB, q sq.Sqlizer) (T, error) {
	rows, err := qQuery(ctx, db, q)
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
}

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}
