package query

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder for Postgres placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains is a case-insensitive substring predicate. It returns nil for an
// empty value so that unset filters drop out.
func Contains(column, value string) sq.Sqlizer {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return sq.ILike{column: "%" + likeEscaper.Replace(value) + "%"}
}

// Equals is an exact-match predicate, nil for an empty value.
func Equals(column, value string) sq.Sqlizer {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return sq.Eq{column: value}
}

// List describes a select against one table. Where predicates are ANDed;
// nil entries are ignored.
type List struct {
	Table   string
	Columns []string
	Where   []sq.Sqlizer
	OrderBy []string
}

func (l List) filtered(b sq.SelectBuilder) sq.SelectBuilder {
	for _, pred := range l.Where {
		if pred != nil {
			b = b.Where(pred)
		}
	}
	return b
}

// Count counts every row matching the filters, ignoring pagination.
func (l List) Count() sq.SelectBuilder {
	return l.filtered(Builder.Select("COUNT(*)").From(l.Table))
}

// Select returns every matching row in order, unpaginated.
func (l List) Select() sq.SelectBuilder {
	return l.filtered(Builder.Select(l.Columns...).From(l.Table)).OrderBy(l.OrderBy...)
}

// Page returns the rows of page p.
func (l List) Page(p Page) sq.SelectBuilder {
	return l.Select().
		Limit(uint64(p.Size)).
		Offset(uint64(p.Offset()))
}
