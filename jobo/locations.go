package jobo

import (
	"context"
	"net/http"
	"net/url"
)

// LocationsService exposes the geocoding endpoint.
type LocationsService struct {
	client *Client
}

// Geocode resolves a location string (e.g. "San Francisco, CA") into
// structured locations with coordinates via GET /api/locations/geocode.
func (s *LocationsService) Geocode(ctx context.Context, location string) (*GeocodeResult, error) {
	if location == "" {
		return nil, newValidationError("location is required", nil)
	}

	params := url.Values{}
	params.Set("location", location)

	var result GeocodeResult
	if err := s.client.do(ctx, http.MethodGet, "/api/locations/geocode", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
