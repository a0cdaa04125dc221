package mocks

import (
	"context"
	"io"

	"github.com/imovia/imovia-api/internal/blobstore"
)

// BlobStore implements blobstore.Client for testing. It records upload
// and delete calls so tests can assert on the replacement protocol.
type BlobStore struct {
	UploadFn func(ctx context.Context, key, contentType string, r io.Reader, size int64) (blobstore.UploadInfo, error)
	DeleteFn func(ctx context.Context, key string) error

	// Uploads and Deletes record the keys of every call, in order.
	Uploads []UploadCall
	Deletes []string
}

// UploadCall captures the arguments of one Upload invocation.
type UploadCall struct {
	Key         string
	ContentType string
	Size        int64
}

// NewBlobStore creates a mock blob client with recording enabled.
func NewBlobStore() *BlobStore {
	return &BlobStore{}
}

// Ensure BlobStore implements blobstore.Client
var _ blobstore.Client = (*BlobStore)(nil)

// Upload implements the Client interface.
func (m *BlobStore) Upload(ctx context.Context, key, contentType string, r io.Reader, size int64) (blobstore.UploadInfo, error) {
	m.Uploads = append(m.Uploads, UploadCall{Key: key, ContentType: contentType, Size: size})
	if m.UploadFn != nil {
		return m.UploadFn(ctx, key, contentType, r, size)
	}
	return blobstore.UploadInfo{Key: key, Size: size}, nil
}

// Delete implements the Client interface.
func (m *BlobStore) Delete(ctx context.Context, key string) error {
	m.Deletes = append(m.Deletes, key)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}
