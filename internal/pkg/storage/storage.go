package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where rendered payslip PDFs live. Only a local
// implementation exists; an object-store backend can be added behind the
// same interface. Files are never exposed by URL; everything streams
// through the API.
type FileStorage interface {
	// Upload uploads a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
