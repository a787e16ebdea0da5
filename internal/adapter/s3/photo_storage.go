package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/HansLagmay/realestate-coordination-service/internal/app/config"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PhotoStorage offloads photo payloads to a MinIO bucket so the photos
// collection carries object keys instead of multi-megabyte data URIs.
type PhotoStorage struct {
	client *minio.Client
	bucket string
	log    logger.Logger
}

func NewPhotoStorage(cfg config.MinIOConfig, log logger.Logger) (*PhotoStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	err = client.MakeBucket(context.Background(), cfg.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, existsErr := client.BucketExists(context.Background(), cfg.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &PhotoStorage{client: client, bucket: cfg.Bucket, log: log}, nil
}

// Upload stores the payload and returns the generated object key.
func (s *PhotoStorage) Upload(ctx context.Context, originalFilename string, payload []byte) (string, error) {
	objectKey := fmt.Sprintf("photos/%s%s", uuid.New().String(), filepath.Ext(originalFilename))

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	s.log.Infof("Uploaded photo payload %s (%d bytes) as %s", originalFilename, len(payload), objectKey)
	return objectKey, nil
}

func (s *PhotoStorage) Fetch(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s from bucket %s: %w", objectKey, s.bucket, err)
	}
	defer obj.Close()

	payload, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s from bucket %s: %w", objectKey, s.bucket, err)
	}
	return payload, nil
}

func (s *PhotoStorage) Remove(ctx context.Context, objectKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s from bucket %s: %w", objectKey, s.bucket, err)
	}
	return nil
}
