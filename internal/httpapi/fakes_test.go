package httpapi

import (
	"context"
	"strings"
	"sync"
	"time"

	"academy-api/internal/apperr"
	"academy-api/internal/auth"
	"academy-api/internal/models"
	"academy-api/internal/query"
)

var created = time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type fakeCreds map[string]models.Credential

func (f fakeCreds) FindByEmail(_ context.Context, email string) (models.Credential, error) {
	c, ok := f[strings.ToLower(email)]
	if !ok {
		return models.Credential{}, auth.ErrNotFound
	}
	return c, nil
}

type memRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func (m *memRevoker) Revoke(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[id] = ttl
	return nil
}

func (m *memRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[id]
	return ok, nil
}

// fakePlayers keeps players in memory and mimics the store's semantics.
type fakePlayers struct {
	mu        sync.Mutex
	rows      []models.Player
	nextID    int64
	calls     int
	err       error
	panics    bool
	lastInput models.PlayerInput
	lastPatch models.PlayerPatch
	lastPage  query.Page
}

func (f *fakePlayers) Create(_ context.Context, in models.PlayerInput) (models.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastInput = in
	if f.err != nil {
		return models.Player{}, f.err
	}
	f.nextID++
	p := models.Player{
		ID:           f.nextID,
		Nama:         in.Nama,
		Posisi:       in.Posisi,
		TanggalLahir: in.TanggalLahir,
		FotoURL:      in.FotoURL,
		MinutesPlay:  in.MinutesPlay,
		CreatedAt:    created,
	}
	f.rows = append(f.rows, p)
	return p, nil
}

func (f *fakePlayers) List(_ context.Context, filter models.PlayerFilter, p query.Page) (query.Envelope[models.Player], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastPage = p
	if f.panics {
		panic("boom")
	}
	if f.err != nil {
		return query.Envelope[models.Player]{}, f.err
	}

	var matched []models.Player
	for i := len(f.rows) - 1; i >= 0; i-- {
		r := f.rows[i]
		if filter.Nama != "" && !strings.Contains(strings.ToLower(r.Nama), strings.ToLower(filter.Nama)) {
			continue
		}
		if filter.Tanggal != "" && (r.TanggalLahir == nil || *r.TanggalLahir != filter.Tanggal) {
			continue
		}
		matched = append(matched, r)
	}

	var page []models.Player
	if !p.PastEnd(len(matched)) {
		from, to := p.Range()
		for i := from; i <= to && i < len(matched); i++ {
			page = append(page, matched[i])
		}
	}
	return query.NewEnvelope(page, len(matched), p), nil
}

func (f *fakePlayers) Update(_ context.Context, id int64, patch models.PlayerPatch) ([]models.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	if patch == (models.PlayerPatch{}) {
		return nil, apperr.BadRequest("nothing to update")
	}

	for i := range f.rows {
		r := &f.rows[i]
		if r.ID != id {
			continue
		}
		if patch.Nama != nil {
			r.Nama = *patch.Nama
		}
		if patch.Posisi != nil {
			r.Posisi = patch.Posisi
		}
		if patch.TanggalLahir != nil {
			r.TanggalLahir = patch.TanggalLahir
		}
		if patch.FotoURL != nil {
			r.FotoURL = patch.FotoURL
		}
		if patch.MinutesPlay != nil {
			r.MinutesPlay = *patch.MinutesPlay
		}
		return []models.Player{*r}, nil
	}
	return []models.Player{}, nil
}

func (f *fakePlayers) Delete(_ context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakePlayers) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeCoaches records what it was asked and answers with canned values.
type fakeCoaches struct {
	calls      int
	err        error
	lastInput  models.CoachInput
	lastFilter models.CoachFilter
	lastPatch  models.CoachPatch
	page       query.Envelope[models.Coach]
}

func (f *fakeCoaches) Create(_ context.Context, in models.CoachInput) (models.Coach, error) {
	f.calls++
	f.lastInput = in
	if f.err != nil {
		return models.Coach{}, f.err
	}
	return models.Coach{ID: 1, Nama: in.Nama, Lisensi: in.Lisensi, FotoURL: in.FotoURL, CreatedAt: created}, nil
}

func (f *fakeCoaches) List(_ context.Context, filter models.CoachFilter, p query.Page) (query.Envelope[models.Coach], error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return query.Envelope[models.Coach]{}, f.err
	}
	if f.page.Data == nil {
		return query.NewEnvelope[models.Coach](nil, 0, p), nil
	}
	return f.page, nil
}

func (f *fakeCoaches) Update(_ context.Context, id int64, patch models.CoachPatch) ([]models.Coach, error) {
	f.calls++
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	if patch == (models.CoachPatch{}) {
		return nil, apperr.BadRequest("nothing to update")
	}
	return []models.Coach{{ID: id, Nama: "Coach", Lisensi: patch.Lisensi, FotoURL: patch.FotoURL, CreatedAt: created}}, nil
}

func (f *fakeCoaches) Delete(context.Context, int64) (int64, error) {
	f.calls++
	return 0, f.err
}

type fakeSchedules struct {
	calls      int
	err        error
	rows       []models.Schedule
	lastInput  models.ScheduleInput
	lastFilter models.ScheduleFilter
	lastPatch  models.SchedulePatch
}

func (f *fakeSchedules) Create(_ context.Context, in models.ScheduleInput) (models.Schedule, error) {
	f.calls++
	f.lastInput = in
	if f.err != nil {
		return models.Schedule{}, f.err
	}
	return models.Schedule{
		ID: 1, Lawan: in.Lawan, Tanggal: in.Tanggal, Jam: in.Jam, Lokasi: in.Lokasi,
		TipePertandingan: in.TipePertandingan, FotoURL: in.FotoURL, CreatedAt: created,
	}, nil
}

func (f *fakeSchedules) List(_ context.Context, filter models.ScheduleFilter) ([]models.Schedule, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if f.rows == nil {
		return []models.Schedule{}, nil
	}
	return f.rows, nil
}

func (f *fakeSchedules) Update(_ context.Context, _ int64, patch models.SchedulePatch) ([]models.Schedule, error) {
	f.calls++
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return []models.Schedule{}, nil
}

func (f *fakeSchedules) Delete(context.Context, int64) (int64, error) {
	f.calls++
	return 1, f.err
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }
