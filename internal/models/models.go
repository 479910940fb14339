package models

import "time"

type Player struct {
	ID           int64     `json:"id" db:"id"`
	Nama         string    `json:"nama" db:"nama"`
	Posisi       *string   `json:"posisi" db:"posisi"`
	TanggalLahir *string   `json:"tanggal_lahir" db:"tanggal_lahir"` // YYYY-MM-DD
	FotoURL      *string   `json:"foto_url" db:"foto_url"`
	MinutesPlay  int       `json:"minutes_play" db:"minutes_play"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Coach struct {
	ID        int64     `json:"id" db:"id"`
	Nama      string    `json:"nama" db:"nama"`
	Lisensi   *string   `json:"lisensi" db:"lisensi"`
	FotoURL   *string   `json:"foto_url" db:"foto_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Schedule struct {
	ID               int64     `json:"id" db:"id"`
	Lawan            string    `json:"lawan" db:"lawan"`
	Tanggal          string    `json:"tanggal" db:"tanggal"` // YYYY-MM-DD
	Jam              *string   `json:"jam" db:"jam"`         // HH:MM
	Lokasi           string    `json:"lokasi" db:"lokasi"`
	TipePertandingan *string   `json:"tipe_pertandingan" db:"tipe_pertandingan"`
	FotoURL          *string   `json:"foto_url" db:"foto_url"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Credential is an admin login. PasswordHash never leaves the server.
type Credential struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Identity is the authenticated caller attached to a request by the guard.
type Identity struct {
	UserID    int64     `json:"id"`
	Email     string    `json:"email"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
