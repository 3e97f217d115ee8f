package providers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weatherline/internal/weather"
	"github.com/sony/gobreaker"
)

// currentFields are the only forecast fields requested.
const currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m"

// OpenMeteoProvider implements weather.Provider for Open-Meteo. It geocodes
// the location first, then queries the forecast endpoint by coordinates.
type OpenMeteoProvider struct {
	baseURL  string
	client   *http.Client
	resolver weather.Resolver
	circuit  *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, resolver weather.Resolver) *OpenMeteoProvider {
	if resolver == nil {
		resolver = NewGeocoder(client)
	}
	return &OpenMeteoProvider{
		baseURL:  "https://api.open-meteo.com/v1/forecast",
		client:   client,
		resolver: resolver,
		circuit:  newBreaker("open-meteo"),
	}
}

func (p *OpenMeteoProvider) Name() weather.ProviderKind {
	return weather.ProviderOpenMeteo
}

type openMeteoResponse struct {
	Current *struct {
		Temperature         float64 `json:"temperature_2m"`
		RelativeHumidity    float64 `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		WeatherCode         int     `json:"weather_code"`
		WindSpeed           float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, location string, units weather.Units) (weather.Record, error) {
	geo, err := p.resolver.Resolve(ctx, location)
	if err != nil {
		return weather.Record{}, err
	}

	tempUnit, windUnit := "fahrenheit", "mph"
	if units == weather.UnitsMetric {
		tempUnit, windUnit = "celsius", "kmh"
	}

	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(geo.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(geo.Longitude, 'f', -1, 64))
	values.Set("current", currentFields)
	values.Set("temperature_unit", tempUnit)
	values.Set("wind_speed_unit", windUnit)
	values.Set("forecast_days", "1")

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), nil)
	if err != nil {
		return weather.Record{}, &weather.TransportError{Err: err}
	}

	var payload openMeteoResponse
	if err := getJSON(ctx, p.client, p.circuit, p.Name(), req, &payload); err != nil {
		return weather.Record{}, err
	}
	if payload.Current == nil {
		return weather.Record{}, &weather.ParseError{Provider: p.Name(), Msg: "response has no current conditions"}
	}

	cur := payload.Current
	cond := weather.ConditionForCode(cur.WeatherCode)

	return weather.Record{
		Temp:       formatRounded(cur.Temperature, units.TempSymbol()),
		Conditions: cond.Label,
		Icon:       cond.Icon,
		Wind:       formatRounded(cur.WindSpeed, " "+units.SpeedLabel()),
		Humidity:   formatRounded(cur.RelativeHumidity, "%"),
		FeelsLike:  formatRounded(cur.ApparentTemperature, units.TempSymbol()),
		Location:   geo.Label(),
	}, nil
}

// formatRounded rounds v to the nearest whole unit and appends suffix.
func formatRounded(v float64, suffix string) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', 0, 64) + suffix
}
