package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnsupportedImageType is returned for uploads that are not a recognized
// image format.
var ErrUnsupportedImageType = errors.New("unsupported image type")

// imageExtensions maps the accepted content types to stored file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectUploader stores a blob under a key and returns its public URL.
// config.S3Config satisfies this; tests substitute an in-memory fake.
type ObjectUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageService stores recipe images in object storage.
type ImageService struct {
	storage ObjectUploader
}

// NewImageService creates a new ImageService instance
func NewImageService(storage ObjectUploader) *ImageService {
	return &ImageService{storage: storage}
}

// UploadRecipeImage validates and stores the image bytes for a recipe and
// returns the public URL. Each upload gets a fresh key so stale CDN caches
// never serve a replaced image.
func (s *ImageService) UploadRecipeImage(ctx context.Context, recipeID uuid.UUID, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image payload")
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	key := fmt.Sprintf("recipe-images/%s-%s%s", recipeID, uuid.New(), ext)
	return s.storage.Upload(ctx, key, data, contentType)
}
