package googlemaps

import (
	"context"
	"net/url"

	"github.com/fwojciec/petdex"
)

const directionsEndpoint = "/directions/json"

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Summary          string `json:"summary"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route computes a driving route from origin to destination. A pair the
// provider cannot connect fails with EUNAVAILABLE.
func (c *Client) Route(ctx context.Context, origin, destination petdex.LatLng) (*petdex.Route, error) {
	params := url.Values{}
	params.Set("origin", formatLatLng(origin))
	params.Set("destination", formatLatLng(destination))
	params.Set("mode", "driving")

	body, err := c.get(ctx, directionsEndpoint, params)
	if err != nil {
		return nil, err
	}

	var resp directionsResponse
	if err := decode(body, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "OK" || len(resp.Routes) == 0 {
		return nil, petdex.Errorf(petdex.EUNAVAILABLE, "no route between the two points")
	}

	r := resp.Routes[0]
	route := &petdex.Route{
		Origin:      origin,
		Destination: destination,
		Polyline:    r.OverviewPolyline.Points,
		Summary:     r.Summary,
	}
	for _, leg := range r.Legs {
		route.DistanceMeters += leg.Distance.Value
		route.DurationSeconds += leg.Duration.Value
	}
	return route, nil
}
