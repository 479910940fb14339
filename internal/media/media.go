// Package media hosts uploaded photos on an image CDN.
package media

import (
	"context"
	"io"

	"academy-api/internal/apperr"
)

// Asset is a hosted image.
type Asset struct {
	URL      string
	PublicID string
}

// Uploader stores images and removes them again when the record that
// referenced them could not be written.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename string) (Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

// Disabled is used when no CDN credentials are configured. Requests that
// carry a file are rejected; requests without one never reach it.
type Disabled struct{}

func (Disabled) Upload(context.Context, io.Reader, string) (Asset, error) {
	return Asset{}, apperr.BadRequest("photo uploads are not configured")
}

func (Disabled) Destroy(context.Context, string) error {
	return nil
}
