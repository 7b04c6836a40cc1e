package service

import (
	"context"
	"io"
)

// StoredImage is what the image host reports after an upload.
type StoredImage struct {
	PublicID string
	URL      string
}

// ImageStorage hosts profile images.
type ImageStorage interface {
	// Upload stores data under key and returns its public reference.
	Upload(ctx context.Context, key string, data []byte, contentType string) (*StoredImage, error)

	// Delete removes the image. Deleting a missing key is not an error.
	Delete(ctx context.Context, publicID string) error

	// Open streams a stored image back, used when the service serves its own bucket.
	Open(ctx context.Context, publicID string) (io.ReadCloser, string, error)
}

// ImageProcessor turns an uploaded file into the stored avatar format.
type ImageProcessor interface {
	// IsImage sniffs the content. The declared upload type is ignored.
	IsImage(data []byte) bool

	// Avatar decodes data, crops it to fill a square and re-encodes it.
	Avatar(data []byte) ([]byte, string, error)
}
