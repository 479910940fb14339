package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"academy-api/internal/auth"
	"academy-api/internal/models"
	"academy-api/internal/query"
)

const tableAdmins = "admins"

var credentialColumns = []string{"id", "email", "password_hash", "created_at"}

// Credentials is the admins table. Emails compare case-insensitively.
type Credentials struct {
	db DB
}

func NewCredentials(db DB) *Credentials {
	return &Credentials{db: db}
}

func (s *Credentials) FindByEmail(ctx context.Context, email string) (models.Credential, error) {
	q := query.Builder.Select(credentialColumns...).
		From(tableAdmins).
		Where("LOWER(email) = LOWER(?)", email)

	cred, err := collectOne[models.Credential](ctx, s.db, q)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Credential{}, oops.With("email", email).Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return models.Credential{}, classify(tableAdmins, "select", err)
	}
	return cred, nil
}

// Create stores a new admin with an already hashed password.
func (s *Credentials) Create(ctx context.Context, email, passwordHash string) (models.Credential, error) {
	return insert[models.Credential](ctx, s.db, tableAdmins, credentialColumns, map[string]any{
		"email":         strings.TrimSpace(email),
		"password_hash": passwordHash,
	})
}
