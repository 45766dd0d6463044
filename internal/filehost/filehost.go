// Package filehost stores uploaded images by committing them to a
// version-controlled file host and serving them back through stable public
// URLs. The production implementation commits to a GitHub repository; an
// in-memory implementation backs tests and local development.
package filehost

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the named file does not exist.
	ErrNotFound = errors.New("filehost: file not found")

	// ErrUnavailable is returned when the hosting service call failed.
	ErrUnavailable = errors.New("filehost: host unavailable")
)

// Host uploads and deletes named files under a folder path.
type Host interface {
	// Upload commits data as <folder>/<name> and returns a stable public URL.
	// An existing file at the same path is overwritten.
	Upload(ctx context.Context, folder, name string, data []byte) (string, error)

	// Delete removes a previously committed file at <folder>/<name>.
	Delete(ctx context.Context, folder, name string) error
}
