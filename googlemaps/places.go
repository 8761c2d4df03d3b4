package googlemaps

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/petdex"
)

const nearbySearchEndpoint = "/place/nearbysearch/json"

// placesResponse is the nearby-search payload. Results are kept raw so the
// opaque provider record can travel with each Place.
type placesResponse struct {
	Status        string            `json:"status"`
	ErrorMessage  string            `json:"error_message"`
	Results       []json.RawMessage `json:"results"`
	NextPageToken string            `json:"next_page_token"`
}

// placeResult is the subset of a nearby-search result the pipeline reads.
type placeResult struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	Vicinity         string    `json:"vicinity"`
	Geometry         *geometry `json:"geometry"`
	Rating           float64   `json:"rating"`
	UserRatingsTotal int       `json:"user_ratings_total"`
	OpeningHours     *struct {
		OpenNow *bool `json:"open_now"`
	} `json:"opening_hours"`
}

// searchParams maps a category to the provider's query parameters.
// The shelter category has no dedicated place type and searches by keyword.
func searchParams(category petdex.Category) url.Values {
	params := url.Values{}
	switch category {
	case petdex.CategoryVet:
		params.Set("type", "veterinary_care")
	case petdex.CategoryStore:
		params.Set("type", "pet_store")
	case petdex.CategoryShelter:
		params.Set("keyword", "animal shelter")
	}
	return params
}

// Search issues the first page of a nearby-search. ZERO_RESULTS yields an
// empty page, not an error.
func (c *Client) Search(ctx context.Context, req petdex.SearchRequest) (*petdex.Page, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params := searchParams(req.Category)
	params.Set("location", formatLatLng(req.Origin))
	params.Set("radius", strconv.Itoa(req.RadiusMeters))

	body, err := c.get(ctx, nearbySearchEndpoint, params)
	if err != nil {
		return nil, err
	}
	return parsePage(body)
}

// NextPage requests the page identified by token. Tokens activate on the
// provider's side some time after they are issued, so the call waits out
// the activation delay first. A token the provider still rejects after the
// wait fails with EUNAVAILABLE; callers treat that as "no more pages".
func (c *Client) NextPage(ctx context.Context, token string) (*petdex.Page, error) {
	if token == "" {
		return nil, petdex.Errorf(petdex.EINVALID, "page token required")
	}

	if c.pageDelay > 0 {
		timer := time.NewTimer(c.pageDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	params := url.Values{}
	params.Set("pagetoken", token)

	body, err := c.get(ctx, nearbySearchEndpoint, params)
	if err != nil {
		return nil, err
	}
	return parsePage(body)
}

func parsePage(body []byte) (*petdex.Page, error) {
	var resp placesResponse
	if err := decode(body, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return &petdex.Page{}, nil
	default:
		return nil, statusError(resp.Status, resp.ErrorMessage)
	}

	page := &petdex.Page{NextPageToken: resp.NextPageToken}
	for _, raw := range resp.Results {
		var r placeResult
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		page.Places = append(page.Places, toPlace(r, raw))
	}
	return page, nil
}

func toPlace(r placeResult, raw json.RawMessage) petdex.Place {
	p := petdex.Place{
		ID:           r.PlaceID,
		Name:         r.Name,
		Vicinity:     r.Vicinity,
		Rating:       r.Rating,
		RatingsTotal: r.UserRatingsTotal,
		Raw:          raw,
	}
	if r.Geometry != nil {
		p.Position = &petdex.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}
	}
	if r.OpeningHours != nil {
		p.OpenNow = r.OpeningHours.OpenNow
	}
	return p
}
