package search_test

import (
	"context"
	"testing"

	"github.com/fwojciec/petdex"
	"github.com/fwojciec/petdex/mock"
	"github.com/fwojciec/petdex/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles_OpenAssemblesView(t *testing.T) {
	t.Parallel()

	details := &mock.DetailsService{
		DetailsFn: func(_ context.Context, placeID string) (*petdex.PlaceDetail, error) {
			return &petdex.PlaceDetail{
				PlaceID:  placeID,
				Name:     "Clinica Vet Centro",
				Position: &petdex.LatLng{Lat: 0, Lng: 1},
			}, nil
		},
	}
	p := search.NewProfiles(details)

	view, authoritative, err := p.Open(context.Background(), "a", &petdex.LatLng{Lat: 0, Lng: 0})

	require.NoError(t, err)
	assert.True(t, authoritative)
	assert.Equal(t, "Clinica Vet Centro", view.Name)
	assert.InDelta(t, 111195, view.DistanceMeters, 50)
}

func TestProfiles_AnyFailureIsProfileUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"bad id", petdex.Errorf(petdex.ENOTFOUND, "no such place"), petdex.ENOTFOUND},
		{"provider failure", petdex.Errorf(petdex.EUNAVAILABLE, "OVER_QUERY_LIMIT"), petdex.EUNAVAILABLE},
		{"transport failure", context.DeadlineExceeded, petdex.EUNAVAILABLE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			details := &mock.DetailsService{
				DetailsFn: func(_ context.Context, _ string) (*petdex.PlaceDetail, error) {
					return nil, tt.err
				},
			}
			p := search.NewProfiles(details)

			view, _, err := p.Open(context.Background(), "a", nil)

			assert.Equal(t, tt.wantCode, petdex.ErrorCode(err))
			assert.Equal(t, "profile unavailable", petdex.ErrorMessage(err))
			assert.Zero(t, view, "no partial view on failure")
		})
	}
}

func TestProfiles_LastOpenWins(t *testing.T) {
	t.Parallel()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	details := &mock.DetailsService{
		DetailsFn: func(_ context.Context, placeID string) (*petdex.PlaceDetail, error) {
			if placeID == "first" {
				close(firstStarted)
				<-releaseFirst
			}
			return &petdex.PlaceDetail{PlaceID: placeID}, nil
		},
	}
	p := search.NewProfiles(details)

	type result struct {
		authoritative bool
		err           error
	}
	firstDone := make(chan result, 1)
	go func() {
		_, authoritative, err := p.Open(context.Background(), "first", nil)
		firstDone <- result{authoritative, err}
	}()
	<-firstStarted

	_, authoritative, err := p.Open(context.Background(), "second", nil)
	require.NoError(t, err)
	assert.True(t, authoritative, "newest open is authoritative")

	close(releaseFirst)
	first := <-firstDone

	require.NoError(t, first.err)
	assert.False(t, first.authoritative, "superseded open must not render")
}

func TestProfiles_RequiresPlaceID(t *testing.T) {
	t.Parallel()

	p := search.NewProfiles(&mock.DetailsService{})

	_, _, err := p.Open(context.Background(), "", nil)

	assert.Equal(t, petdex.EINVALID, petdex.ErrorCode(err))
}
