package ports

import (
	"context"
	"io"
)

// BlobStore uploads a byte stream and returns a publicly resolvable URL.
// Failures here are a distinct infrastructure kind from document-store
// failures and are wrapped accordingly by the implementation.
type BlobStore interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
}
