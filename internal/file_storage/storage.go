package filestorage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hebatacademy/certify/internal/config"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MinioStorage uploads rendered artifacts to minio and returns the public
// URL the bucket serves them on. Satisfies certgen.Storage.
type MinioStorage struct {
	client *minio.Client
	cfg    *config.MinioConfig
	logger *zap.SugaredLogger
}

func NewMinioStorage(client *minio.Client, cfg *config.MinioConfig, logger *zap.SugaredLogger) *MinioStorage {
	return &MinioStorage{client: client, cfg: cfg, logger: logger}
}

func (ms MinioStorage) createBucketIfNotExists(ctx context.Context, bucket string) error {
	exists, err := ms.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	ms.logger.Infof("Bucket %s does not exist, creating", bucket)
	return ms.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}

// Upload writes data under objectName. Re-uploading the same object name
// overwrites the previous version, so retried jobs stay idempotent.
func (ms MinioStorage) Upload(ctx context.Context, bucket, objectName string, data []byte, contentType string) (string, error) {
	if err := ms.createBucketIfNotExists(ctx, bucket); err != nil {
		return "", err
	}

	_, err := ms.client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return ms.PublicURL(bucket, objectName), nil
}

func (ms MinioStorage) PublicURL(bucket, objectName string) string {
	scheme := "http"
	if ms.cfg.USE_SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, ms.cfg.ENDPOINT, bucket, objectName)
}
