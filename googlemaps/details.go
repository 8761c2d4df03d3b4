package googlemaps

import (
	"context"
	"net/url"

	"github.com/fwojciec/petdex"
)

const detailsEndpoint = "/place/details/json"

// detailsFields is the field mask requested from the details endpoint.
// Requesting only what the profile renders keeps the response (and the
// billing tier) small.
const detailsFields = "place_id,name,formatted_address,formatted_phone_number,website,url,rating,user_ratings_total,geometry,opening_hours,reviews"

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		PlaceID          string    `json:"place_id"`
		Name             string    `json:"name"`
		FormattedAddress string    `json:"formatted_address"`
		Phone            string    `json:"formatted_phone_number"`
		Website          string    `json:"website"`
		URL              string    `json:"url"`
		Rating           float64   `json:"rating"`
		UserRatingsTotal int       `json:"user_ratings_total"`
		Geometry         *geometry `json:"geometry"`
		OpeningHours     *struct {
			OpenNow     *bool    `json:"open_now"`
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Reviews []struct {
			AuthorName string  `json:"author_name"`
			Rating     float64 `json:"rating"`
			Text       string  `json:"text"`
		} `json:"reviews"`
	} `json:"result"`
}

// Details fetches the extended detail record for a place. An unknown or
// malformed place id fails with ENOTFOUND. Responses are cached.
func (c *Client) Details(ctx context.Context, placeID string) (*petdex.PlaceDetail, error) {
	if placeID == "" {
		return nil, petdex.Errorf(petdex.EINVALID, "place ID required")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	key := cacheKey(detailsEndpoint + "?" + params.Encode())
	body, ok := c.cache.get(key)
	if !ok {
		var err error
		body, err = c.get(ctx, detailsEndpoint, params)
		if err != nil {
			return nil, err
		}
	}

	var resp detailsResponse
	if err := decode(body, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		// The provider answers INVALID_REQUEST for malformed ids.
		return nil, petdex.Errorf(petdex.ENOTFOUND, "no place with ID %q", placeID)
	default:
		return nil, statusError(resp.Status, resp.ErrorMessage)
	}

	c.cache.set(key, body)

	r := resp.Result
	detail := &petdex.PlaceDetail{
		PlaceID:      r.PlaceID,
		Name:         r.Name,
		Address:      r.FormattedAddress,
		Phone:        r.Phone,
		Website:      r.Website,
		URL:          r.URL,
		Rating:       r.Rating,
		RatingsTotal: r.UserRatingsTotal,
	}
	if r.Geometry != nil {
		detail.Position = &petdex.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}
	}
	if r.OpeningHours != nil {
		detail.OpenNow = r.OpeningHours.OpenNow
		detail.WeekdayHours = r.OpeningHours.WeekdayText
	}
	for _, rev := range r.Reviews {
		detail.Reviews = append(detail.Reviews, petdex.Review{
			Author: rev.AuthorName,
			Rating: rev.Rating,
			Text:   rev.Text,
		})
	}
	return detail, nil
}
