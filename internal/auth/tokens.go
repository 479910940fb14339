// Package auth issues and verifies access tokens and checks admin credentials.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/samber/oops"

	"academy-api/internal/apperr"
	"academy-api/internal/clock"
	"academy-api/internal/models"
)

const (
	Issuer          = "academy-api"
	DefaultTokenTTL = 24 * time.Hour
)

type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a freshly signed access token.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Tokens signs and verifies HS256 access tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewTokens(secret string, ttl time.Duration, clk clock.Clock) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, clock: clk}
}

func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

func (t *Tokens) Issue(cred models.Credential) (Token, error) {
	now := t.clock.Now()
	id := uuid.NewString()
	exp := now.Add(t.ttl)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: cred.ID,
		Email:  cred.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   strconv.FormatInt(cred.ID, 10),
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	s, err := tok.SignedString(t.secret)
	if err != nil {
		return Token{}, oops.Code("TOKEN_SIGN_FAILED").Wrap(err)
	}
	return Token{Value: s, ID: id, ExpiresAt: exp}, nil
}

// Parse verifies signature, algorithm, issuer and expiry.
// Every failure is Forbidden.
func (t *Tokens) Parse(raw string) (models.Identity, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Identity{}, apperr.Forbidden(ErrTokenExpired)
		}
		return models.Identity{}, apperr.Forbidden(oops.With("reason", err.Error()).Wrap(ErrInvalidToken))
	}

	cl, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || cl.ID == "" {
		return models.Identity{}, apperr.Forbidden(ErrInvalidToken)
	}

	return models.Identity{
		UserID:    cl.UserID,
		Email:     cl.Email,
		TokenID:   cl.ID,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}
