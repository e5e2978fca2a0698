package v1

import (
	"fmt"
	"io"
	"net/http"

	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

// photoMaxDimension keeps uploaded photos at a sane display size before
// they hit storage.
const (
	photoMaxDimension = 1200
	photoQuality      = 80
)

// readUpload reads and validates the multipart "file" field. Images are
// downscaled and re-encoded to JPEG; documents pass through untouched.
func readUpload(c *gin.Context, kind storage.Kind, store storage.Store, keyPrefix string) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", apperror.BadRequest("No file uploaded")
	}

	if file.Size > storage.MaxSize(kind) {
		return "", apperror.BadRequest(fmt.Sprintf("File exceeds the %d MB limit", storage.MaxSize(kind)>>20))
	}

	src, err := file.Open()
	if err != nil {
		return "", apperror.Internal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", apperror.Internal(err)
	}

	contentType := http.DetectContentType(data)
	result := storage.ValidateFile(kind, file.Filename, data, contentType)
	if !result.Valid {
		return "", apperror.BadRequest(result.Error)
	}

	filename := file.Filename
	if kind == storage.KindImage {
		downscaled, err := storage.DownscaleImage(data, photoMaxDimension, photoQuality)
		if err != nil {
			// Keep the original when re-encoding fails; it already validated
			logger.Log.Warn("image downscale failed, storing original", "error", err)
		} else {
			data = downscaled
			contentType = "image/jpeg"
			filename = filename + ".jpg"
		}
	}

	url, err := store.Put(c.Request.Context(), storage.ObjectKey(keyPrefix, filename), data, contentType)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}
