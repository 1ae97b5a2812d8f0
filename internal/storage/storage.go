// Package storage persists uploaded files and hands back public URLs.
package storage

import (
	"context"
	"errors"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyFile is returned for zero-byte uploads; nothing is written.
var ErrEmptyFile = errors.New("uploaded file is empty")

// Saver writes file content under a derived object name and returns the URL
// the file is reachable at. The URL must only be returned after the content
// is fully persisted.
type Saver interface {
	Save(ctx context.Context, originalName string, data []byte) (string, error)
}

// FromEnv picks the storage backend: Google Cloud Storage when GCS_BUCKET is
// set, local disk otherwise.
func FromEnv(ctx context.Context) (Saver, error) {
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		return NewGCSSaver(ctx, bucket)
	}
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "public/uploads"
	}
	return NewLocalSaver(dir)
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectName derives a collision-resistant object name from the original
// filename: unsafe characters collapse to underscores and a millisecond
// timestamp prefix keeps repeated uploads of the same file apart.
func ObjectName(originalName string) string {
	base := originalName
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	base = unsafeNameChars.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		base = "file"
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + base
}
