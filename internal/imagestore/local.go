package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local serves image files from a directory laid out as
// {dir}/{photoName}/{file}.
type Local struct {
	dir string
}

// NewLocal creates a local image store rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// Open implements Store.
func (l *Local) Open(ctx context.Context, photoName, file string) (io.ReadCloser, error) {
	if err := validComponent(photoName); err != nil {
		return nil, err
	}

	full := filepath.Join(l.dir, photoName, filepath.FromSlash(file))
	if !strings.HasPrefix(full, filepath.Clean(l.dir)+string(filepath.Separator)) {
		return nil, ErrNotFound
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return f, nil
}
