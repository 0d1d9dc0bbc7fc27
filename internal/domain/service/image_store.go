package service

import (
	"context"
	"io"

	"haven/internal/domain/entity"
	"haven/internal/errors"
)

// ErrImageNotFound is returned by Open for unknown filenames.
var ErrImageNotFound = errors.New("image not found")

// ImageUpload is a listing picture received from a form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ImageStore keeps uploaded listing pictures.
type ImageStore interface {
	// Save stores the upload and returns its public descriptor.
	Save(ctx context.Context, upload *ImageUpload) (entity.Image, error)

	// Open returns a reader for a stored image along with its content type.
	Open(ctx context.Context, filename string) (io.ReadCloser, string, error)

	// Delete removes a stored image. Missing images are not an error.
	Delete(ctx context.Context, filename string) error
}
