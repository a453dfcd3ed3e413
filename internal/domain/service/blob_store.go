package service

import "context"

// BlobStore keeps uploaded files and hands back a durable URL.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (url string, err error)
}
