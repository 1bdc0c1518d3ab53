// Package imagestore resolves photo image files by photo name and
// variant. Every photo ships three variants: main.jpg, preview.jpg and
// one targets/{name}.png icon per target.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
)

// ErrNotFound is returned when the requested image file does not exist.
var ErrNotFound = errors.New("image not found")

// Store provides read access to a photo's image files.
type Store interface {
	// Open returns the image file at {photoName}/{file}. The caller
	// closes the reader.
	Open(ctx context.Context, photoName, file string) (io.ReadCloser, error)
}

// MainFile is the relative path of a photo's full-size image.
const MainFile = "main.jpg"

// PreviewFile is the relative path of a photo's preview image.
const PreviewFile = "preview.jpg"

// TargetFile returns the relative path of a target's icon.
func TargetFile(targetName string) string {
	return path.Join("targets", targetName+".png")
}

// ContentType returns the MIME type for an image file path.
func ContentType(file string) string {
	switch path.Ext(file) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// validComponent rejects path components that could escape the photo
// directory. Photo and target names are slugs, anything else is treated
// as missing.
func validComponent(s string) error {
	if s == "" || s == "." || s == ".." {
		return ErrNotFound
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return fmt.Errorf("%w: invalid name %q", ErrNotFound, s)
		}
	}
	return nil
}
