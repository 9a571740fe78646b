package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing product images in blob storage.
type ImageStore interface {
	// Save writes the image under the given key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Delete removes the image stored under the given key.
	Delete(ctx context.Context, key string) error
}
