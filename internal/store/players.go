package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"academy-api/internal/models"
	"academy-api/internal/query"
)

const tablePlayers = "pemain"

var playerColumns = []string{
	"id",
	"nama",
	"posisi",
	"to_char(tanggal_lahir, 'YYYY-MM-DD') AS tanggal_lahir",
	"foto_url",
	"minutes_play",
	"created_at",
}

// Players is the pemain table.
type Players struct {
	db DB
}

func NewPlayers(db DB) *Players {
	return &Players{db: db}
}

func (s *Players) Create(ctx context.Context, in models.PlayerInput) (models.Player, error) {
	return insert[models.Player](ctx, s.db, tablePlayers, playerColumns, map[string]any{
		"nama":          in.Nama,
		"posisi":        in.Posisi,
		"tanggal_lahir": in.TanggalLahir,
		"foto_url":      in.FotoURL,
		"minutes_play":  in.MinutesPlay,
	})
}

// List returns one page of players, newest first.
func (s *Players) List(ctx context.Context, f models.PlayerFilter, p query.Page) (query.Envelope[models.Player], error) {
	l := query.List{
		Table:   tablePlayers,
		Columns: playerColumns,
		Where: []sq.Sqlizer{
			query.Contains("nama", f.Nama),
			query.Equals("tanggal_lahir", f.Tanggal),
		},
		OrderBy: []string{"pemain.created_at DESC", "pemain.id DESC"},
	}
	return listPage[models.Player](ctx, s.db, l, p)
}

func (s *Players) Update(ctx context.Context, id int64, patch models.PlayerPatch) ([]models.Player, error) {
	set := map[string]any{}
	setIf(set, "nama", patch.Nama)
	setNullable(set, "posisi", patch.Posisi)
	setNullable(set, "tanggal_lahir", patch.TanggalLahir)
	setIf(set, "foto_url", patch.FotoURL)
	setIf(set, "minutes_play", patch.MinutesPlay)
	return update[models.Player](ctx, s.db, tablePlayers, playerColumns, id, set)
}

func (s *Players) Delete(ctx context.Context, id int64) (int64, error) {
	return remove(ctx, s.db, tablePlayers, id)
}
