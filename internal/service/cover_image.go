package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/blobstore"
)

// replaceCoverImage runs the cover-image replacement sequence shared by
// the city and community services:
//
//  1. best-effort delete of the previously stored blob, derived from
//     the current public URL — a delete failure is logged and swallowed,
//     because blocking replacement on unrelated storage trouble would
//     leave the cover image permanently stuck, while a stale blob costs
//     only storage;
//  2. upload of the new blob under a deterministic key, so retries
//     overwrite rather than accumulate;
//  3. persist, via the supplied callback, of the new public URL — the
//     only step that defines success. If persisting fails after a
//     successful upload the operation fails, and retrying is safe
//     because of the deterministic key.
func replaceCoverImage(
	ctx context.Context,
	log *slog.Logger,
	blobs blobstore.Client,
	baseURL, kind string,
	id uuid.UUID,
	currentURL, filename, contentType string,
	r io.Reader,
	size int64,
	persist func(ctx context.Context, url string) error,
) (blobstore.UploadInfo, error) {
	if currentURL != "" {
		if key, ok := blobstore.KeyFromURL(baseURL, currentURL); ok {
			if err := blobs.Delete(ctx, key); err != nil {
				log.Warn("failed to delete previous cover image, continuing",
					slog.String("error", err.Error()),
					slog.String("key", key))
			}
		} else {
			log.Warn("stored cover image URL is outside the configured base URL, skipping delete",
				slog.String("url", currentURL))
		}
	}

	key := blobstore.ObjectKey(kind, id, filename)
	info, err := blobs.Upload(ctx, key, contentType, r, size)
	if err != nil {
		return blobstore.UploadInfo{}, err
	}

	url := blobstore.PublicURL(baseURL, key)
	if err := persist(ctx, url); err != nil {
		return blobstore.UploadInfo{}, err
	}

	return info, nil
}
