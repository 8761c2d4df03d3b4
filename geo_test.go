package petdex_test

import (
	"math"
	"testing"

	"github.com/fwojciec/petdex"
	"github.com/stretchr/testify/assert"
)

func TestDistance_OneDegreeLongitudeAtEquator(t *testing.T) {
	t.Parallel()

	d := petdex.Distance(&petdex.LatLng{Lat: 0, Lng: 0}, &petdex.LatLng{Lat: 0, Lng: 1})

	// 1 degree of longitude at the equator is about 111,195 m.
	assert.InDelta(t, 111195, d, 50)
}

func TestDistance_SamePointIsZero(t *testing.T) {
	t.Parallel()

	p := &petdex.LatLng{Lat: -23.5505, Lng: -46.6333}

	assert.Zero(t, petdex.Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	a := &petdex.LatLng{Lat: -23.5505, Lng: -46.6333}
	b := &petdex.LatLng{Lat: -23.5610, Lng: -46.6560}

	assert.Equal(t, petdex.Distance(a, b), petdex.Distance(b, a))
}

func TestDistance_UnknownPointIsInfinite(t *testing.T) {
	t.Parallel()

	p := &petdex.LatLng{Lat: 1, Lng: 1}

	assert.True(t, math.IsInf(petdex.Distance(nil, p), 1))
	assert.True(t, math.IsInf(petdex.Distance(p, nil), 1))
	assert.True(t, math.IsInf(petdex.Distance(nil, nil), 1))
}
