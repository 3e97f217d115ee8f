package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weatherline/internal/weather"
	"github.com/sony/gobreaker"
)

// Geocoder resolves place names through the Open-Meteo geocoding API.
type Geocoder struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGeocoder(client *http.Client) *Geocoder {
	return &Geocoder{
		baseURL: "https://geocoding-api.open-meteo.com/v1/search",
		client:  client,
		circuit: newBreaker("open-meteo-geocoding"),
	}
}

type geocodingResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// Resolve asks for the single best match for place. No results is reported
// as *weather.NotFoundError.
func (g *Geocoder) Resolve(ctx context.Context, place string) (weather.GeoResult, error) {
	values := url.Values{}
	values.Set("name", place)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", g.baseURL, values.Encode()), nil)
	if err != nil {
		return weather.GeoResult{}, &weather.TransportError{Err: err}
	}

	var payload geocodingResponse
	if err := getJSON(ctx, g.client, g.circuit, weather.ProviderOpenMeteo, req, &payload); err != nil {
		return weather.GeoResult{}, err
	}

	if len(payload.Results) == 0 {
		return weather.GeoResult{}, &weather.NotFoundError{Query: place}
	}

	r := payload.Results[0]
	return weather.GeoResult{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Name:      r.Name,
		Country:   r.Country,
		Admin1:    r.Admin1,
	}, nil
}
