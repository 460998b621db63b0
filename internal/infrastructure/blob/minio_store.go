// Package blob stores item images in an S3-compatible bucket and hands back
// the public URL persisted on the catalog record.
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tokopos/tokopos-api/internal/application/ports"
	"github.com/tokopos/tokopos-api/pkg/config"
)

var _ ports.BlobStore = (*MinioStore)(nil)

// MinioStore implements the BlobStore port against any S3-compatible
// endpoint (MinIO, S3, GCS in interoperability mode).
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioStore builds the blob adapter. The bucket must already exist; the
// service does not manage bucket lifecycle.
func NewMinioStore(cfg config.BlobConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("blob: create client: %w", err)
	}

	baseURL := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

// Upload streams the object into the bucket and returns its public URL.
// Failures are wrapped with a "blob:" prefix so operators can tell them
// apart from document-store failures.
func (s *MinioStore) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("blob: upload %s: %w", objectName, err)
	}
	return s.baseURL + "/" + objectName, nil
}
