package store

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return mock
}

func countRows(n int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"count"}).AddRow(n)
}

func playerRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "nama", "posisi", "tanggal_lahir", "foto_url", "minutes_play", "created_at"})
}

func coachRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "nama", "lisensi", "foto_url", "created_at"})
}

func scheduleRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "lawan", "tanggal", "jam", "lokasi", "tipe_pertandingan", "foto_url", "created_at"})
}
