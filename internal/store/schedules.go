package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"academy-api/internal/models"
	"academy-api/internal/query"
)

const tableSchedules = "jadwal"

var scheduleColumns = []string{
	"id",
	"lawan",
	"to_char(tanggal, 'YYYY-MM-DD') AS tanggal",
	"to_char(jam, 'HH24:MI') AS jam",
	"lokasi",
	"tipe_pertandingan",
	"foto_url",
	"created_at",
}

// Schedules is the jadwal table. Listing is unpaginated and ordered by
// match date, earliest first.
type Schedules struct {
	db DB
}

func NewSchedules(db DB) *Schedules {
	return &Schedules{db: db}
}

func (s *Schedules) Create(ctx context.Context, in models.ScheduleInput) (models.Schedule, error) {
	return insert[models.Schedule](ctx, s.db, tableSchedules, scheduleColumns, map[string]any{
		"lawan":             in.Lawan,
		"tanggal":           in.Tanggal,
		"jam":               in.Jam,
		"lokasi":            in.Lokasi,
		"tipe_pertandingan": in.TipePertandingan,
		"foto_url":          in.FotoURL,
	})
}

func (s *Schedules) List(ctx context.Context, f models.ScheduleFilter) ([]models.Schedule, error) {
	l := query.List{
		Table:   tableSchedules,
		Columns: scheduleColumns,
		Where: []sq.Sqlizer{
			query.Contains("lawan", f.Lawan),
			query.Equals("tanggal", f.Tanggal),
		},
		OrderBy: []string{"jadwal.tanggal ASC", "jadwal.jam ASC NULLS LAST", "jadwal.id ASC"},
	}
	rows, err := collect[models.Schedule](ctx, s.db, l.Select())
	if err != nil {
		return nil, classify(tableSchedules, "select", err)
	}
	return rows, nil
}

func (s *Schedules) Update(ctx context.Context, id int64, patch models.SchedulePatch) ([]models.Schedule, error) {
	set := map[string]any{}
	setIf(set, "lawan", patch.Lawan)
	setIf(set, "tanggal", patch.Tanggal)
	setNullable(set, "jam", patch.Jam)
	setIf(set, "lokasi", patch.Lokasi)
	setNullable(set, "tipe_pertandingan", patch.TipePertandingan)
	setIf(set, "foto_url", patch.FotoURL)
	return update[models.Schedule](ctx, s.db, tableSchedules, scheduleColumns, id, set)
}

func (s *Schedules) Delete(ctx context.Context, id int64) (int64, error) {
	return remove(ctx, s.db, tableSchedules, id)
}
