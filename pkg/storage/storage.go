package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store is a path-addressable object store for uploaded files.
// Put returns the public URL under which the object is reachable.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds a unique storage key for an upload, namespaced by prefix
// (e.g. "photos", "resumes", "logos"). The original filename is sanitized and
// kept for readability; uniqueness comes from the uuid.
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := sanitizeFilename(strings.TrimSuffix(filepath.Base(filename), ext))
	return fmt.Sprintf("%s/%s_%s%s", prefix, uuid.NewString(), base, ext)
}

// sanitizeFilename replaces spaces with underscores and drops non-ASCII
// characters so keys stay URL-safe
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")

	var result strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result.WriteRune(r)
		}
	}

	if result.Len() == 0 {
		return "file"
	}
	return result.String()
}
