package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"academy-api/internal/models"
	"academy-api/internal/query"
)

const tableCoaches = "pelatih"

var coachColumns = []string{"id", "nama", "lisensi", "foto_url", "created_at"}

// Coaches is the pelatih table.
type Coaches struct {
	db DB
}

func NewCoaches(db DB) *Coaches {
	return &Coaches{db: db}
}

func (s *Coaches) Create(ctx context.Context, in models.CoachInput) (models.Coach, error) {
	return insert[models.Coach](ctx, s.db, tableCoaches, coachColumns, map[string]any{
		"nama":     in.Nama,
		"lisensi":  in.Lisensi,
		"foto_url": in.FotoURL,
	})
}

func (s *Coaches) List(ctx context.Context, f models.CoachFilter, p query.Page) (query.Envelope[models.Coach], error) {
	l := query.List{
		Table:   tableCoaches,
		Columns: coachColumns,
		Where: []sq.Sqlizer{
			query.Contains("nama", f.Nama),
			query.Equals("lisensi", f.Lisensi),
		},
		OrderBy: []string{"pelatih.created_at DESC", "pelatih.id DESC"},
	}
	return listPage[models.Coach](ctx, s.db, l, p)
}

func (s *Coaches) Update(ctx context.Context, id int64, patch models.CoachPatch) ([]models.Coach, error) {
	set := map[string]any{}
	setIf(set, "nama", patch.Nama)
	setNullable(set, "lisensi", patch.Lisensi)
	setIf(set, "foto_url", patch.FotoURL)
	return update[models.Coach](ctx, s.db, tableCoaches, coachColumns, id, set)
}

func (s *Coaches) Delete(ctx context.Context, id int64) (int64, error) {
	return remove(ctx, s.db, tableCoaches, id)
}
