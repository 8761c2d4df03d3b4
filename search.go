package petdex

import "context"

// SearchRequest describes one nearby-search operation.
type SearchRequest struct {
	Origin       LatLng
	Category     Category
	RadiusMeters int
}

// Validate returns an error if the request contains invalid fields.
func (r SearchRequest) Validate() error {
	if err := r.Category.Validate(); err != nil {
		return err
	}
	if r.RadiusMeters <= 0 {
		return Errorf(EINVALID, "search radius must be positive")
	}
	return nil
}

// Page is one page of nearby-search results. NextPageToken is empty when no
// further pages exist.
type Page struct {
	Places        []Place
	NextPageToken string
}

// NearbySearcher is the provider boundary for paginated nearby-search.
type NearbySearcher interface {
	// Search issues the first page request for a nearby-search.
	// A provider "zero results" status is not an error: it yields an empty
	// page. Returns EUNAVAILABLE on provider or transport failure.
	Search(ctx context.Context, req SearchRequest) (*Page, error)

	// NextPage requests the page identified by token. Page tokens activate
	// on the provider's side some time after they are issued; NextPage waits
	// out that delay, and if the token is still not accepted it returns
	// EUNAVAILABLE rather than retrying. Callers treat that as "no more
	// pages".
	NextPage(ctx context.Context, token string) (*Page, error)
}

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	// Geocode returns the best-match position for the query.
	// Returns ENOTFOUND when the query resolves to nothing.
	Geocode(ctx context.Context, query string) (*LatLng, error)
}
