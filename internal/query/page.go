// Package query composes filtered, ordered and paginated selects and shapes
// their results into the page envelope returned by every list endpoint.
package query

import (
	"strconv"
	"strings"

	"academy-api/internal/apperr"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based page number and a page size.
type Page struct {
	Number int
	Size   int
}

// ParsePage reads raw page/pageSize query values. Empty values take the
// defaults; anything non-numeric or non-positive is a bad request.
func ParsePage(page, pageSize string) (Page, error) {
	p := Page{Number: DefaultPage, Size: DefaultPageSize}

	if s := strings.TrimSpace(page); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Page{}, apperr.BadRequest("page must be an integer")
		}
		if n < 1 {
			return Page{}, apperr.BadRequest("page must be >= 1")
		}
		p.Number = n
	}

	if s := strings.TrimSpace(pageSize); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Page{}, apperr.BadRequest("pageSize must be an integer")
		}
		if n <= 0 {
			return Page{}, apperr.BadRequest("pageSize must be >= 1")
		}
		p.Size = min(n, MaxPageSize)
	}

	return p, nil
}

// PastEnd reports whether the page starts after the last of total rows.
// It compares page numbers, so an arbitrarily large page cannot overflow.
func (p Page) PastEnd(total int) bool {
	return p.Number-1 >= p.TotalPages(total)
}

// Offset is the zero-based index of the first row on the page. Only
// meaningful when the page is not PastEnd.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Range returns the zero-based inclusive row range covered by the page.
func (p Page) Range() (from, to int) {
	from = p.Offset()
	return from, from + p.Size - 1
}

// TotalPages is ceil(total / size).
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}
