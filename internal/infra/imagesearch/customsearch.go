// Package imagesearch finds product pictures through Google Programmable Search.
package imagesearch

import (
	"context"
	"log/slog"
	"strings"

	"ewarrants/config"
	deliverycontext "ewarrants/internal/delivery/context"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const upstreamName = "customsearch"

// Params defines the dependencies of the image search client.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type searchFunc func(ctx context.Context, query string) (*customsearch.Search, error)

type customSearch struct {
	search searchFunc
	logger *slog.Logger
}

// New returns an ImageSearch. Without credentials it always reports no match.
func New(params Params) (service.ImageSearch, error) {
	cfg := params.Config.ImageSearch
	if cfg == nil || cfg.APIKey == "" || cfg.SearchEngineID == "" {
		params.Logger.Warn("Image search credentials missing, product images are disabled")

		return &customSearch{logger: params.Logger}, nil
	}

	svc, err := customsearch.NewService(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create custom search service")
	}

	engineID := cfg.SearchEngineID

	return &customSearch{
		search: func(ctx context.Context, query string) (*customsearch.Search, error) {
			return svc.Cse.List().
				Cx(engineID).
				Q(query).
				SearchType("image").
				Num(1).
				Context(ctx).
				Do()
		},
		logger: params.Logger,
	}, nil
}

func (s *customSearch) FindImage(ctx context.Context, query string) (string, error) {
	query = strings.Join(strings.Fields(query), " ")
	if s.search == nil || query == "" {
		return "", nil
	}

	res, err := s.search(ctx, query)
	if err != nil {
		return "", domainerrors.NewUpstreamError(upstreamName, err)
	}
	if res == nil || len(res.Items) == 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).DebugContext(ctx, "No product image found",
			slog.String("query", query),
		)

		return "", nil
	}

	return res.Items[0].Link, nil
}
