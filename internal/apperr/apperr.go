// Package apperr defines the error taxonomy shared by every layer and its
// mapping onto HTTP status codes.
package apperr

import (
	"fmt"
	"net/http"

	"github.com/samber/oops"
)

// Error codes carried on oops errors.
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeUpstream     = "UPSTREAM_FAILURE"
	CodeInternal     = "INTERNAL_ERROR"
)

// Message shown to clients instead of upstream error text.
const upstreamMessage = "upstream service failure"

// BadRequest creates a client error.
func BadRequest(format string, args ...any) error {
	return oops.Code(CodeBadRequest).Errorf(format, args...)
}

// Unauthorized wraps err as missing/unusable credentials.
func Unauthorized(err error) error {
	return oops.Code(CodeUnauthorized).Wrap(err)
}

// Forbidden wraps err as rejected credentials.
func Forbidden(err error) error {
	return oops.Code(CodeForbidden).Wrap(err)
}

// Upstream wraps a failure of an external collaborator (database, CDN, redis).
func Upstream(service string, err error) error {
	return oops.Code(CodeUpstream).With("service", service).Wrap(err)
}

// Code returns the oops code of err, or CodeInternal when it has none.
func Code(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return CodeInternal
	}
	code := oopsErr.Code()
	if code == nil {
		return CodeInternal
	}
	return fmt.Sprint(code)
}

// Status maps err onto an HTTP status code.
func Status(err error) int {
	switch Code(err) {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text safe to return to a client.
// Server-side failures never leak their underlying message.
func PublicMessage(err error) string {
	switch Code(err) {
	case CodeBadRequest, CodeUnauthorized, CodeForbidden:
		return err.Error()
	case CodeUpstream:
		return upstreamMessage
	default:
		return "internal server error"
	}
}
