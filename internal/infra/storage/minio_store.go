package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"ewarrants/config"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioAPI is the subset of *minio.Client used by MinIOStore.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinIOStore writes objects to a MinIO or S3-compatible server.
type MinIOStore struct {
	api     minioAPI
	bucket  string
	baseURL string
}

// NewMinIOStore connects with static credentials and ensures the bucket exists.
func NewMinIOStore(ctx context.Context, cfg *config.StorageConfig) (*MinIOStore, error) {
	mc := cfg.MinIO
	if mc == nil || mc.Endpoint == "" || mc.Bucket == "" {
		return nil, errors.New("minio endpoint and bucket must be configured")
	}

	client, err := minio.New(mc.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(mc.AccessKey, mc.SecretKey, ""),
		Secure: mc.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if mc.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, mc.Endpoint, mc.Bucket)
	}

	return NewMinIOStoreWithAPI(ctx, client, mc.Bucket, baseURL)
}

// NewMinIOStoreWithAPI allows injecting a fake API.
func NewMinIOStoreWithAPI(ctx context.Context, api minioAPI, bucket, baseURL string) (*MinIOStore, error) {
	s := &MinIOStore{api: api, bucket: bucket, baseURL: baseURL}
	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ensure bucket exists")
	}

	return s, nil
}

func (s *MinIOStore) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *MinIOStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.api.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", domainerrors.NewUpstreamError("minio", err)
	}

	return objectURL(s.baseURL, key)
}
