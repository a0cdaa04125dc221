// Package blobstore defines the boundary between the application core
// and the external blob storage provider, plus the key and URL helpers
// the cover-image replacement protocol relies on.
package blobstore

import (
	"context"
	"io"
)

// UploadInfo is the provider's acknowledgment of a completed upload.
type UploadInfo struct {
	// Key is the object key the blob was stored under.
	Key string

	// Size is the number of bytes stored.
	Size int64

	// ETag is the provider's content identifier, when available.
	ETag string
}

// Client is the minimal blob storage surface the services consume.
// Uploads under an existing key overwrite the previous object, which is
// what makes cover-image replacement safe to retry.
type Client interface {
	// Upload stores size bytes from r under the given key.
	Upload(ctx context.Context, key, contentType string, r io.Reader, size int64) (UploadInfo, error)

	// Delete removes the object stored under key. Callers performing
	// cleanup treat failures here as non-fatal; a stale blob is an
	// acceptable residual cost, a blocked replacement is not.
	Delete(ctx context.Context, key string) error
}
