package search

import (
	"context"
	"sync"

	"github.com/fwojciec/petdex"
)

// Profiles orchestrates place-profile fetches. Fetches are independent per
// invocation; because the UI shows a single profile surface, the newest open
// is authoritative (last click wins, same rule as route previews).
type Profiles struct {
	details petdex.DetailsService

	mu  sync.Mutex
	seq uint64
}

// NewProfiles creates a Profiles orchestrator.
func NewProfiles(details petdex.DetailsService) *Profiles {
	return &Profiles{details: details}
}

// Open fetches the extended detail record for a place and assembles its
// presentation model. The authoritative flag is false when a newer Open
// started while this one was in flight; callers must not render a
// non-authoritative view.
//
// Any failure (bad id, transport error, provider non-OK) surfaces as a
// single "profile unavailable" error with no partial view.
func (p *Profiles) Open(ctx context.Context, placeID string, origin *petdex.LatLng) (view petdex.ProfileView, authoritative bool, err error) {
	if p.details == nil {
		return petdex.ProfileView{}, false, petdex.Errorf(petdex.EINTERNAL, "no details service configured")
	}
	if placeID == "" {
		return petdex.ProfileView{}, false, petdex.Errorf(petdex.EINVALID, "place id required")
	}

	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	detail, err := p.details.Details(ctx, placeID)
	if err != nil {
		code := petdex.ErrorCode(err)
		if code != petdex.ENOTFOUND {
			code = petdex.EUNAVAILABLE
		}
		return petdex.ProfileView{}, false, petdex.Errorf(code, "profile unavailable")
	}

	view = petdex.BuildProfileView(detail, origin)

	p.mu.Lock()
	authoritative = seq == p.seq
	p.mu.Unlock()

	return view, authoritative, nil
}
