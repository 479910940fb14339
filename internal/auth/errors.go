package auth

import "errors"

var (
	// ErrNotFound is returned by a CredentialStore for an unknown email.
	ErrNotFound = errors.New("not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrMalformedHeader    = errors.New("authorization header must be 'Bearer <token>'")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)
