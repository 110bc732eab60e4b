package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// Geocoder resolves a street address to a coordinate. A nil point with
// a nil error means the address was not found; transport and decoding
// problems are returned as errors.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.GeoPoint, error)
}

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleClient calls the Google Geocoding API with a bounded per-call
// timeout and no retry.
type GoogleClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// googleResponse is the subset of the geocoding response we consume
type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewGoogleClient creates a geocoding client
func NewGoogleClient(apiKey string, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		baseURL: googleGeocodeURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode resolves one address. Any non-OK API status maps to
// not-found rather than an error; the caller treats both the same way.
func (g *GoogleClient) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	if address == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, nil
	}

	loc := decoded.Results[0].Geometry.Location
	return &models.GeoPoint{Lat: loc.Lat, Lng: loc.Lng}, nil
}
