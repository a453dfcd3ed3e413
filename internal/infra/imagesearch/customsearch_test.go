package imagesearch

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ewarrants/config"
	domainerrors "ewarrants/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/customsearch/v1"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFindImage_FirstResult(t *testing.T) {
	var gotQuery string
	s := &customSearch{
		search: func(_ context.Context, q string) (*customsearch.Search, error) {
			gotQuery = q

			return &customsearch.Search{Items: []*customsearch.Result{
				{Link: "https://img.example.com/a.jpg"},
				{Link: "https://img.example.com/b.jpg"},
			}}, nil
		},
		logger: discard(),
	}

	link, err := s.FindImage(context.Background(), "Dyson V11  Home Appliances product shot official")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/a.jpg", link)
	assert.Equal(t, "Dyson V11 Home Appliances product shot official", gotQuery)
}

func TestFindImage_NoMatch(t *testing.T) {
	s := &customSearch{
		search: func(context.Context, string) (*customsearch.Search, error) {
			return &customsearch.Search{}, nil
		},
		logger: discard(),
	}

	link, err := s.FindImage(context.Background(), "unknown gadget")
	require.NoError(t, err)
	assert.Empty(t, link)
}

func TestFindImage_Upstream(t *testing.T) {
	s := &customSearch{
		search: func(context.Context, string) (*customsearch.Search, error) {
			return nil, errors.New("403 daily limit")
		},
		logger: discard(),
	}

	_, err := s.FindImage(context.Background(), "phone")
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestNew_WithoutCredentials(t *testing.T) {
	s, err := New(Params{Config: &config.Config{}, Logger: discard()})
	require.NoError(t, err)

	link, err := s.FindImage(context.Background(), "phone")
	require.NoError(t, err)
	assert.Empty(t, link)
}
