package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *bucketImageStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketImageStorage(bucket, "http://localhost:5000/media/", slog.New(slog.DiscardHandler)).(*bucketImageStorage)
}

func TestBucketImageStorage_UploadOpenDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	stored, err := s.Upload(ctx, "profile_images/abc.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "profile_images/abc.jpg", stored.PublicID)
	assert.Equal(t, "http://localhost:5000/media/profile_images/abc.jpg", stored.URL)

	r, contentType, err := s.Open(ctx, stored.PublicID)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, "image/jpeg", contentType)

	require.NoError(t, s.Delete(ctx, stored.PublicID))

	_, _, err = s.Open(ctx, stored.PublicID)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestBucketImageStorage_DeleteMissingIsNoop(t *testing.T) {
	s := newTestStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "profile_images/missing.jpg"))
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://bucket", redactBucketURL("s3://bucket?region=us-east-1&awssdk=v2"))
	assert.Equal(t, "file:///tmp/media", redactBucketURL("file:///tmp/media"))
}
