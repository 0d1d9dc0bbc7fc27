// Package storage keeps uploaded listing images in a gocloud bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"haven/config"
	"haven/internal/domain/entity"
	"haven/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	keyPrefix          = "listings/"
	defaultBucketURL   = "mem://"
	defaultPublicPath  = "/uploads"
	defaultContentType = "application/octet-stream"
)

type blobImageStore struct {
	bucket     *blob.Bucket
	publicPath string
	logger     *slog.Logger
}

// Params holds dependencies for the image store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket and closes it on shutdown.
func NewImageStore(params Params) (service.ImageStore, error) {
	bucketURL, publicPath := defaultBucketURL, defaultPublicPath
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		if cfg.PublicPath != "" {
			publicPath = cfg.PublicPath
		}
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobImageStore(bucket, publicPath, params.Logger), nil
}

// NewBlobImageStore serves images stored in bucket under publicPath.
func NewBlobImageStore(bucket *blob.Bucket, publicPath string, logger *slog.Logger) service.ImageStore {
	return &blobImageStore{
		bucket:     bucket,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		logger:     logger,
	}
}

// Save writes the upload under a fresh key, keeping the original extension.
func (s *blobImageStore) Save(ctx context.Context, upload *service.ImageUpload) (entity.Image, error) {
	ext := strings.ToLower(path.Ext(upload.Filename))
	key := keyPrefix + uuid.NewString() + ext

	contentType := upload.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return entity.Image{}, errors.Wrap(err, "failed to open image writer")
	}

	if _, err := io.Copy(writer, upload.Body); err != nil {
		_ = writer.Close()

		return entity.Image{}, errors.Wrap(err, "failed to write image")
	}
	if err := writer.Close(); err != nil {
		return entity.Image{}, errors.Wrap(err, "failed to commit image")
	}

	return entity.Image{
		URL:      s.publicPath + "/" + key,
		Filename: key,
	}, nil
}

func (s *blobImageStore) Open(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(filename, keyPrefix) {
		return nil, "", service.ErrImageNotFound
	}

	reader, err := s.bucket.NewReader(ctx, filename, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrImageNotFound
		}

		return nil, "", errors.Wrap(err, "failed to open image")
	}

	return reader, reader.ContentType(), nil
}

func (s *blobImageStore) Delete(ctx context.Context, filename string) error {
	if !strings.HasPrefix(filename, keyPrefix) {
		return nil
	}

	if err := s.bucket.Delete(ctx, filename); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
