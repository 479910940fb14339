package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"academy-api/internal/apperr"
	"academy-api/internal/query"
)

// listPage counts the rows matching l and fetches page p of them.
// A page past the end skips the second statement.
func listPage[T any](ctx context.Context, db DB, l query.List, p query.Page) (query.Envelope[T], error) {
	total, err := qCount(ctx, db, l.Count())
	if err != nil {
		return query.Envelope[T]{}, classify(l.Table, "count", err)
	}
	if p.PastEnd(total) {
		return query.NewEnvelope[T](nil, total, p), nil
	}

	rows, err := collect[T](ctx, db, l.Page(p))
	if err != nil {
		return query.Envelope[T]{}, classify(l.Table, "select", err)
	}
	return query.NewEnvelope(rows, total, p), nil
}

func insert[T any](ctx context.Context, db DB, table string, cols []string, values map[string]any) (T, error) {
	q := query.Builder.Insert(table).SetMap(values).Suffix(returning(cols))
	row, err := collectOne[T](ctx, db, q)
	return row, classify(table, "insert", err)
}

// update applies set to the row with the given id. Zero matched rows is
// not an error; the result is simply empty.
func update[T any](ctx context.Context, db DB, table string, cols []string, id int64, set map[string]any) ([]T, error) {
	if len(set) == 0 {
		return nil, apperr.BadRequest("nothing to update")
	}
	q := query.Builder.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning(cols))
	rows, err := collect[T](ctx, db, q)
	if err != nil {
		return nil, classify(table, "update", err)
	}
	return rows, nil
}

// remove deletes by id and reports how many rows went away.
func remove(ctx context.Context, db DB, table string, id int64) (int64, error) {
	tag, err := qExec(ctx, db, query.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return 0, classify(table, "delete", err)
	}
	return tag.RowsAffected(), nil
}

// setNullable sets an optional text column; an empty value clears it.
func setNullable(set map[string]any, column string, v *string) {
	switch {
	case v == nil:
	case *v == "":
		set[column] = nil
	default:
		set[column] = *v
	}
}

func setIf[V any](set map[string]any, column string, v *V) {
	if v != nil {
		set[column] = *v
	}
}
