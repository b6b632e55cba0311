package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"skillax-backend/internal/shared/errs"
)

// MaxUploadSize caps admin image uploads at 5 MiB.
const MaxUploadSize = 5 << 20

// Uploader abstracts the object store behind the media service.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type Service interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

type mediaService struct {
	uploader Uploader
}

func NewService(uploader Uploader) Service {
	return &mediaService{uploader: uploader}
}

// UploadImage validates and stores an image, returning its public URL.
// Keys are uuid-based so uploads never collide or overwrite.
func (s *mediaService) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if s.uploader == nil {
		return "", fmt.Errorf("%w: object storage is not configured", errs.ErrUpstreamUnavailable)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: file is empty", errs.ErrValidationFailed)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("%w: file exceeds 5MB limit", errs.ErrValidationFailed)
	}

	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("%w: unsupported file type %q", errs.ErrValidationFailed, contentType)
	}
	if fromName := strings.ToLower(path.Ext(filename)); fromName != "" {
		for _, allowed := range allowedImageTypes {
			if fromName == allowed || (fromName == ".jpeg" && allowed == ".jpg") {
				ext = allowed
				break
			}
		}
	}

	key := "uploads/" + uuid.NewString() + ext
	url, err := s.uploader.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUpstreamUnavailable, err)
	}
	return url, nil
}
