package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-api/internal/apperr"
	"academy-api/internal/logging"
	"academy-api/internal/media"
)

// photoField is the multipart field carrying the image.
const photoField = "foto_url"

// uploadPhoto hosts the submitted photo, if any. A nil asset means the
// request carried no file.
func uploadPhoto(c *gin.Context, up media.Uploader) (*media.Asset, error) {
	fh, err := c.FormFile(photoField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.BadRequest("invalid %s upload", photoField)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperr.BadRequest("invalid %s upload", photoField)
	}
	defer f.Close()

	asset, err := up.Upload(c.Request.Context(), f, fh.Filename)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// discardPhoto removes an asset whose record was never written.
func discardPhoto(c *gin.Context, up media.Uploader, logger *slog.Logger, asset *media.Asset) {
	if asset == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	if err := up.Destroy(ctx, asset.PublicID); err != nil {
		logging.LogError(ctx, logger, "discard uploaded photo", err)
		return
	}
	logger.InfoContext(ctx, "discarded uploaded photo", "public_id", asset.PublicID)
}

func photoURL(asset *media.Asset) *string {
	if asset == nil {
		return nil
	}
	return &asset.URL
}
