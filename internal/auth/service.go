package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/crypto/bcrypt"

	"academy-api/internal/apperr"
	"academy-api/internal/clock"
	"academy-api/internal/models"
)

// BcryptCost matches the cost used when credentials are provisioned.
const BcryptCost = 10

// CredentialStore looks up admin credentials.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (models.Credential, error)
}

// Session is the result of a successful login.
type Session struct {
	Token Token
	User  models.Credential
}

type Service struct {
	creds   CredentialStore
	tokens  *Tokens
	revoker Revoker
	clock   clock.Clock
}

func NewService(creds CredentialStore, tokens *Tokens, revoker Revoker, clk clock.Clock) *Service {
	if revoker == nil {
		revoker = NopRevoker{}
	}
	return &Service{creds: creds, tokens: tokens, revoker: revoker, clock: clk}
}

// dummyHash keeps unknown-email logins as slow as wrong-password ones.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("academy-api-timing"), BcryptCost)

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, apperr.BadRequest("email and password are required")
	}

	cred, err := s.creds.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return Session{}, apperr.Unauthorized(ErrInvalidCredentials)
	}
	if err != nil {
		return Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return Session{}, apperr.Unauthorized(ErrInvalidCredentials)
	}

	tok, err := s.tokens.Issue(cred)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: tok, User: cred}, nil
}

// Authenticate verifies a raw bearer token and checks it was not revoked.
func (s *Service) Authenticate(ctx context.Context, raw string) (models.Identity, error) {
	id, err := s.tokens.Parse(raw)
	if err != nil {
		return models.Identity{}, err
	}

	revoked, err := s.revoker.IsRevoked(ctx, id.TokenID)
	if err != nil {
		return models.Identity{}, err
	}
	if revoked {
		return models.Identity{}, apperr.Forbidden(ErrTokenRevoked)
	}
	return id, nil
}

// Logout revokes the caller's token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, id models.Identity) error {
	ttl := id.ExpiresAt.Sub(s.clock.Now())
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, id.TokenID, ttl)
}

// HashPassword produces the bcrypt hash stored for a credential.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", apperr.BadRequest("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", oops.Code("PASSWORD_HASH_FAILED").Wrap(err)
	}
	return string(hash), nil
}
