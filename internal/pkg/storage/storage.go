package storage

import (
	"context"
	"io"
	"strings"
)

// Store is the blob store behind the media upload endpoint. Save writes the
// object under key and returns the location persisted on the attachment.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// SanitizeFilename strips any path components and collapses runes that are
// unsafe in object keys.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		out = "file"
	}
	return out
}
