// Package mediatest provides a testify mock of media.Uploader.
package mediatest

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"academy-api/internal/media"
)

type Uploader struct {
	mock.Mock
}

// NewUploader returns a mock whose expectations are asserted on cleanup.
func NewUploader(t interface {
	mock.TestingT
	Cleanup(func())
}) *Uploader {
	m := &Uploader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Uploader) Upload(ctx context.Context, r io.Reader, filename string) (media.Asset, error) {
	args := m.Called(ctx, r, filename)
	return args.Get(0).(media.Asset), args.Error(1)
}

func (m *Uploader) Destroy(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}
