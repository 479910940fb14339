package models

// Inputs are what handlers hand to the store after binding and coercion.
// Patch fields left nil are not touched. An empty optional text field
// clears the column to NULL.

type PlayerInput struct {
	Nama         string
	Posisi       *string
	TanggalLahir *string
	FotoURL      *string
	MinutesPlay  int
}

type PlayerPatch struct {
	Nama         *string
	Posisi       *string
	TanggalLahir *string
	FotoURL      *string
	MinutesPlay  *int
}

type PlayerFilter struct {
	Nama    string // substring, case-insensitive
	Tanggal string // exact tanggal_lahir
}

type CoachInput struct {
	Nama    string
	Lisensi *string
	FotoURL *string
}

type CoachPatch struct {
	Nama    *string
	Lisensi *string
	FotoURL *string
}

type CoachFilter struct {
	Nama    string
	Lisensi string
}

type ScheduleInput struct {
	Lawan            string
	Tanggal          string
	Jam              *string
	Lokasi           string
	TipePertandingan *string
	FotoURL          *string
}

type SchedulePatch struct {
	Lawan            *string
	Tanggal          *string
	Jam              *string
	Lokasi           *string
	TipePertandingan *string
	FotoURL          *string
}

type ScheduleFilter struct {
	Lawan   string
	Tanggal string
}
