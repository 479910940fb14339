package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"academy-api/internal/apperr"
)

// classify turns a pgx error into a coded error. Constraint and input-syntax
// failures are the caller's fault; everything else is an upstream failure.
func classify(table, operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := clientFault(pgErr); ok {
			return oops.Code(apperr.CodeBadRequest).
				With("table", table).
				With("operation", operation).
				With("pg_code", pgErr.Code).
				Errorf("%s", msg)
		}
	}

	return oops.Code(apperr.CodeUpstream).
		With("service", "postgres").
		With("table", table).
		With("operation", operation).
		Wrap(err)
}

func clientFault(pgErr *pgconn.PgError) (string, bool) {
	switch pgErr.Code {
	case pgerrcode.NotNullViolation:
		if pgErr.ColumnName != "" {
			return pgErr.ColumnName + " is required", true
		}
		return "missing required field", true
	case pgerrcode.CheckViolation:
		return "value rejected by constraint " + pgErr.ConstraintName, true
	case pgerrcode.UniqueViolation:
		return "record already exists", true
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow,
		pgerrcode.NumericValueOutOfRange:
		return "invalid input value", true
	case pgerrcode.StringDataRightTruncationDataException:
		return "value too long", true
	}
	return "", false
}
