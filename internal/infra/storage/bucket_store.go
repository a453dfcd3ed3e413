package storage

import (
	"context"

	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/errors"

	"gocloud.dev/blob"
	// Registered schemes for blob.OpenBucket.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BucketStore writes objects through a gocloud.dev portable bucket.
type BucketStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBucketStore opens bucketURL, e.g. file:///var/lib/ewarrants or mem://.
func NewBucketStore(ctx context.Context, bucketURL, publicBaseURL string) (*BucketStore, error) {
	if publicBaseURL == "" {
		return nil, errors.New("storage publicBaseUrl must be configured")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewBucketStoreFrom(bucket, publicBaseURL), nil
}

// NewBucketStoreFrom wraps an already opened bucket.
func NewBucketStoreFrom(bucket *blob.Bucket, publicBaseURL string) *BucketStore {
	return &BucketStore{bucket: bucket, baseURL: publicBaseURL}
}

func (s *BucketStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", domainerrors.NewUpstreamError("blob", err)
	}

	return objectURL(s.baseURL, key)
}

// Close releases the bucket.
func (s *BucketStore) Close() error {
	return s.bucket.Close()
}
