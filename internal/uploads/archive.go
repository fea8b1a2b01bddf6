// Package uploads archives original CV files next to their parsed records.
package uploads

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Archive stores an uploaded original and returns the key it was stored under.
type Archive interface {
	Store(ctx context.Context, fileName, contentType string, data []byte) (string, error)
}

var unsafeNameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ObjectKey builds a collision-free key of the form cvs/YYYY/MM/DD/<uuid>-<name>.
func ObjectKey(fileName string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(fileName, `\`, "/"))
	base = strings.Trim(unsafeNameRe.ReplaceAllString(base, "_"), "_")
	if base == "" || base == "." {
		base = "upload"
	}
	return path.Join("cvs", now.UTC().Format("2006/01/02"), uuid.NewString()+"-"+base)
}

// DirArchive writes originals below a local directory.
type DirArchive struct {
	dir string
	now func() time.Time
}

// NewDirArchive creates the directory if needed.
func NewDirArchive(dir string) (*DirArchive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &DirArchive{dir: dir, now: time.Now}, nil
}

// Store implements Archive.
func (a *DirArchive) Store(_ context.Context, fileName, _ string, data []byte) (string, error) {
	key := ObjectKey(fileName, a.now())
	dest := filepath.Join(a.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write archived upload: %w", err)
	}
	return key, nil
}

// Open returns the archive selected by the configuration, or nil when
// neither a directory nor a bucket is configured.
func Open(ctx context.Context, dir, bucket, region string) (Archive, error) {
	switch {
	case bucket != "":
		a, err := NewS3ArchiveFromEnv(ctx, bucket, region)
		if err != nil {
			return nil, err
		}
		return a, nil
	case dir != "":
		a, err := NewDirArchive(dir)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
	return nil, nil
}
