// Package storage keeps uploaded receipts and attachments in an object store.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"ewarrants/config"
	"ewarrants/internal/domain/constants"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/errors"

	"go.uber.org/fx"
)

// Params defines the dependencies of the blob store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// closer is implemented by stores that hold a connection.
type closer interface {
	Close() error
}

// New selects the provider named in config.
func New(params Params) (service.BlobStore, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage must be configured")
	}

	ctx := context.Background()

	var (
		store service.BlobStore
		err   error
	)
	switch strings.ToLower(cfg.Provider) {
	case constants.StorageProviderMinIO:
		store, err = NewMinIOStore(ctx, cfg)
	case constants.StorageProviderBucket, "":
		store, err = NewBucketStore(ctx, cfg.BucketURL, cfg.PublicBaseURL)
	default:
		return nil, errors.Errorf("unknown storage provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if c, ok := store.(closer); ok {
		params.Append(fx.StopHook(c.Close))
	}
	params.Logger.Info("Blob store ready", slog.String("provider", cfg.Provider))

	return store, nil
}

func objectURL(base, key string) (string, error) {
	u, err := url.JoinPath(base, strings.Split(key, "/")...)
	if err != nil {
		return "", errors.Wrap(err, "failed to build object url")
	}

	return u, nil
}
