// Package minio implements the blobstore.Client interface on any
// S3-compatible object store via the MinIO SDK.
package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/imovia/imovia-api/internal/blobstore"
	"github.com/imovia/imovia-api/internal/config"
	"github.com/imovia/imovia-api/internal/platform/logger"
)

// Client wraps a MinIO client scoped to a single bucket.
type Client struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewClient creates a blob storage client from the storage
// configuration. If log is nil, the default logger is used.
func NewClient(cfg config.StorageConfig, log *slog.Logger) (*Client, error) {
	if log == nil {
		log = slog.Default()
	}

	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Client{
		client: mc,
		bucket: cfg.Bucket,
		logger: log.With(slog.String("component", "blob_store")),
	}, nil
}

// Ensure Client implements blobstore.Client
var _ blobstore.Client = (*Client)(nil)

// Upload implements blobstore.Client.Upload. Uploading under an
// existing key overwrites the stored object.
func (c *Client) Upload(
	ctx context.Context,
	key, contentType string,
	r io.Reader,
	size int64,
) (blobstore.UploadInfo, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	info, err := c.client.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Error("failed to upload object",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return blobstore.UploadInfo{}, fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	log.Debug("object uploaded",
		slog.String("key", key),
		slog.Int64("size", info.Size))

	return blobstore.UploadInfo{
		Key:  info.Key,
		Size: info.Size,
		ETag: info.ETag,
	}, nil
}

// Delete implements blobstore.Client.Delete.
func (c *Client) Delete(ctx context.Context, key string) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		log.Error("failed to delete object",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}

	log.Debug("object deleted", slog.String("key", key))
	return nil
}
