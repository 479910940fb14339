package media

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/samber/oops"

	"academy-api/internal/apperr"
)

const service = "cloudinary"

// uploadAPI is the part of the Cloudinary upload API used here.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

type CloudinaryConfig struct {
	CloudName      string
	APIKey         string
	APISecret      string
	Folder         string
	Transformation string
}

// Cloudinary uploads into one folder, applying an incoming transformation.
type Cloudinary struct {
	api            uploadAPI
	folder         string
	transformation string
}

func NewCloudinary(cfg CloudinaryConfig) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, oops.Code("CLOUDINARY_CONFIG_INVALID").With("cloud_name", cfg.CloudName).Wrap(err)
	}
	return newCloudinary(&cld.Upload, cfg.Folder, cfg.Transformation), nil
}

func newCloudinary(api uploadAPI, folder, transformation string) *Cloudinary {
	return &Cloudinary{api: api, folder: folder, transformation: transformation}
}

func (c *Cloudinary) Upload(ctx context.Context, r io.Reader, filename string) (Asset, error) {
	res, err := c.api.Upload(ctx, r, uploader.UploadParams{
		Folder:         c.folder,
		Transformation: c.transformation,
	})
	if err != nil {
		return Asset{}, apperr.Upstream(service, err)
	}
	if res == nil {
		return Asset{}, apperr.Upstream(service, errors.New("empty upload response"))
	}
	if res.Error.Message != "" {
		return Asset{}, apperr.Upstream(service, oops.With("filename", filename).Errorf("%s", res.Error.Message))
	}
	return Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	res, err := c.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return apperr.Upstream(service, err)
	}
	if res != nil && res.Error.Message != "" {
		return apperr.Upstream(service, oops.With("public_id", publicID).Errorf("%s", res.Error.Message))
	}
	return nil
}
