package googlemaps

import (
	"context"
	"net/url"

	"github.com/fwojciec/petdex"
)

const geocodeEndpoint = "/geocode/json"

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry geometry `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text address to its best-match position.
// Responses are cached; repeated lookups of the same query within the cache
// TTL do not hit the provider.
func (c *Client) Geocode(ctx context.Context, query string) (*petdex.LatLng, error) {
	if query == "" {
		return nil, petdex.Errorf(petdex.EINVALID, "address query required")
	}

	params := url.Values{}
	params.Set("address", query)

	key := cacheKey(geocodeEndpoint + "?" + params.Encode())
	body, ok := c.cache.get(key)
	if !ok {
		var err error
		body, err = c.get(ctx, geocodeEndpoint, params)
		if err != nil {
			return nil, err
		}
	}

	var resp geocodeResponse
	if err := decode(body, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, petdex.Errorf(petdex.ENOTFOUND, "no match for %q", query)
	default:
		return nil, statusError(resp.Status, resp.ErrorMessage)
	}
	if len(resp.Results) == 0 {
		return nil, petdex.Errorf(petdex.ENOTFOUND, "no match for %q", query)
	}

	c.cache.set(key, body)

	loc := resp.Results[0].Geometry.Location
	return &petdex.LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
}
