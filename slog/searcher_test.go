package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/petdex"
	"github.com/fwojciec/petdex/mock"
	petdexslog "github.com/fwojciec/petdex/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the result count", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.NearbySearcher{
			SearchFn: func(_ context.Context, _ petdex.SearchRequest) (*petdex.Page, error) {
				return &petdex.Page{
					Places:        []petdex.Place{{ID: "a"}, {ID: "b"}},
					NextPageToken: "token-2",
				}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		s := petdexslog.NewLoggingSearcher(searcher, logger)
		page, err := s.Search(context.Background(), petdex.SearchRequest{
			Category:     petdex.CategoryVet,
			RadiusMeters: 5000,
		})
		require.NoError(t, err)
		assert.Len(t, page.Places, 2)

		out := buf.String()
		assert.Contains(t, out, "nearby search")
		assert.Contains(t, out, "category=vet")
		assert.Contains(t, out, "count=2")
		assert.Contains(t, out, "more=true")
	})

	t.Run("logs errors from the wrapped searcher", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.NearbySearcher{
			SearchFn: func(_ context.Context, _ petdex.SearchRequest) (*petdex.Page, error) {
				return nil, petdex.Errorf(petdex.EUNAVAILABLE, "REQUEST_DENIED")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		s := petdexslog.NewLoggingSearcher(searcher, logger)
		_, err := s.Search(context.Background(), petdex.SearchRequest{
			Category:     petdex.CategoryVet,
			RadiusMeters: 5000,
		})
		require.Error(t, err)
		assert.Contains(t, buf.String(), "REQUEST_DENIED")
	})
}

func TestLoggingDetailsService_Details(t *testing.T) {
	t.Parallel()

	details := &mock.DetailsService{
		DetailsFn: func(_ context.Context, placeID string) (*petdex.PlaceDetail, error) {
			return &petdex.PlaceDetail{PlaceID: placeID}, nil
		},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := petdexslog.NewLoggingDetailsService(details, logger)
	detail, err := s.Details(context.Background(), "pid-1")
	require.NoError(t, err)
	assert.Equal(t, "pid-1", detail.PlaceID)
	assert.Contains(t, buf.String(), "place_id=pid-1")
}
