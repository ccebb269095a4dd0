package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// MaxImageSize is the largest recipe image accepted for upload.
const MaxImageSize = 5 << 20

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image too large")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectStore is the part of the S3 client the image service needs.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ImageService handles recipe image storage
type ImageService struct {
	store ObjectStore
}

// NewImageService creates a new ImageService instance
func NewImageService(store ObjectStore) *ImageService {
	return &ImageService{store: store}
}

// UploadRecipeImage sniffs the content type, stores the image under a
// fresh key and returns its public URL.
func (s *ImageService) UploadRecipeImage(ctx context.Context, body io.Reader) (string, error) {
	// S3 needs a known content length, so the image is buffered.
	data, err := io.ReadAll(io.LimitReader(body, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	key := "recipes/" + uuid.NewString() + ext
	url, err := s.store.PutObject(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "stored recipe image", "key", key, "content_type", contentType, "bytes", len(data))
	return url, nil
}
