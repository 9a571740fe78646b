// Package storage provides blob-backed implementations of storage services.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"verdant/config"
	"verdant/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Blob drivers: local filesystem for development, GCS for production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobImageStore stores product images in a gocloud.dev bucket.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobImageStore opens the configured bucket and returns the image store.
// The returned closer must be invoked on shutdown.
func NewBlobImageStore(ctx context.Context, cfg *config.Config) (service.ImageStore, func() error, error) {
	if cfg == nil || cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, nil, errors.New("storage bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Storage.BucketURL)
	}

	store := &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}

	return store, bucket.Close, nil
}

// Save writes the image under the given key and returns its public URL.
func (s *blobImageStore) Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize blob %s", key)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

// Delete removes the image stored under the given key.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}
