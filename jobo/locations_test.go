package jobo

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/locations/geocode", r.URL.Path)
		assert.Equal(t, "San Francisco, CA", r.URL.Query().Get("location"))

		json.NewEncoder(w).Encode(GeocodeResult{
			Input:     "San Francisco, CA",
			Succeeded: true,
			Locations: []GeocodedLocation{
				{
					DisplayName: "San Francisco, California, United States",
					City:        String("San Francisco"),
					State:       String("California"),
					Country:     String("US"),
					Latitude:    Float64(37.7749),
					Longitude:   Float64(-122.4194),
				},
			},
		})
	})

	result, err := client.Locations.Geocode(context.Background(), "San Francisco, CA")
	require.NoError(t, err)

	assert.Equal(t, "San Francisco, CA", result.Input)
	assert.True(t, result.Succeeded)
	require.Len(t, result.Locations, 1)

	loc := result.Locations[0]
	assert.Equal(t, "San Francisco, California, United States", loc.DisplayName)
	require.NotNil(t, loc.Latitude)
	assert.InDelta(t, 37.7749, *loc.Latitude, 0.0001)
	require.NotNil(t, loc.Longitude)
	assert.InDelta(t, -122.4194, *loc.Longitude, 0.0001)
}

func TestGeocodeUnresolvedLocation(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GeocodeResult{
			Input:     "invalidlocationxyz123",
			Succeeded: false,
		})
	})

	result, err := client.Locations.Geocode(context.Background(), "invalidlocationxyz123")
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Empty(t, result.Locations)
}

func TestGeocodeEmptyInput(t *testing.T) {
	client, err := NewClient("test-key")
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Locations.Geocode(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
