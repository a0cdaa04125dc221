package blobstore

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeFilename normalizes whitespace runs inside a filename to
// single hyphens so the resulting object key stays URL-safe.
func SanitizeFilename(name string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "-")
}

// ObjectKey derives the deterministic storage key for a resource's
// blob: kind/id/filename. Re-uploading for the same resource and
// filename overwrites the same object.
func ObjectKey(kind string, id uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", kind, id, SanitizeFilename(filename))
}

// PublicURL computes the public URL for an object key from the
// configured base URL.
func PublicURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}

// KeyFromURL derives the object key back out of a stored public URL.
// Returns false when the URL does not live under the base URL, in which
// case there is nothing safe to delete.
func KeyFromURL(baseURL, url string) (string, bool) {
	prefix := strings.TrimRight(baseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
