// Package storage hosts profile images in a gocloud blob bucket. The bucket URL
// scheme selects the backend: file:// and mem:// for development, s3:// and gs:// in production.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"ondeta/config"
	"ondeta/internal/domain/service"
	"ondeta/internal/errors"

	"github.com/avast/retry-go/v4"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	uploadAttempts = 3
	uploadDelay    = 200 * time.Millisecond
	cacheControl   = "public, max-age=31536000, immutable"
)

// ErrImageNotFound is returned by Open for a key the bucket does not hold.
var ErrImageNotFound = errors.New("image not found")

// Params holds dependencies for the image storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type bucketImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(cfg.BucketURL))
	}
	params.Logger.Info("Image bucket opened",
		slog.String("bucket", redactBucketURL(cfg.BucketURL)),
		slog.String("publicBaseURL", cfg.PublicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketImageStorage(bucket, cfg.PublicBaseURL, params.Logger), nil
}

// NewBucketImageStorage wraps an already opened bucket.
func NewBucketImageStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ImageStorage {
	return &bucketImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the image and returns the key as its public id.
func (s *bucketImageStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (*service.StoredImage, error) {
	opts := &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	}

	err := retry.Do(
		func() error {
			return s.bucket.WriteAll(ctx, key, data, opts)
		},
		retry.Context(ctx),
		retry.Attempts(uploadAttempts),
		retry.Delay(uploadDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upload %s", key)
	}

	return &service.StoredImage{
		PublicID: key,
		URL:      s.publicBaseURL + "/" + key,
	}, nil
}

// Delete removes the object. A key that is already gone counts as deleted.
func (s *bucketImageStorage) Delete(ctx context.Context, publicID string) error {
	err := s.bucket.Delete(ctx, publicID)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", publicID)
	}

	return nil
}

// Open streams an object back together with its stored content type.
func (s *bucketImageStorage) Open(ctx context.Context, publicID string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, publicID, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", publicID)
	}

	return r, r.ContentType(), nil
}

func isTransient(err error) bool {
	switch gcerrors.Code(err) {
	case gcerrors.Unknown, gcerrors.Internal, gcerrors.ResourceExhausted, gcerrors.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}

	return u
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStorage),
)
