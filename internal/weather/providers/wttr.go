package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weatherline/internal/common"
	"github.com/i474232898/weatherline/internal/weather"
	"github.com/sony/gobreaker"
)

// WttrProvider implements weather.Provider for wttr.in. The place name goes
// straight into the request path; no geocoding is involved.
type WttrProvider struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewWttrProvider(client *http.Client) *WttrProvider {
	return &WttrProvider{
		baseURL: "https://wttr.in",
		client:  client,
		circuit: newBreaker("wttr"),
	}
}

func (p *WttrProvider) Name() weather.ProviderKind {
	return weather.ProviderWttr
}

type wttrValue []struct {
	Value string `json:"value"`
}

func (v wttrValue) first() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Value
}

// wttrJSON is the subset of the j1 payload we read. Unit-specific fields are
// pointers so a missing field can be told apart from an empty one.
type wttrJSON struct {
	CurrentCondition []struct {
		TempC          *string   `json:"temp_C"`
		TempF          *string   `json:"temp_F"`
		FeelsLikeC     *string   `json:"FeelsLikeC"`
		FeelsLikeF     *string   `json:"FeelsLikeF"`
		WindspeedKmph  *string   `json:"windspeedKmph"`
		WindspeedMiles *string   `json:"windspeedMiles"`
		Humidity       string    `json:"humidity"`
		WeatherDesc    wttrValue `json:"weatherDesc"`
	} `json:"current_condition"`
	NearestArea []struct {
		AreaName wttrValue `json:"areaName"`
		Region   wttrValue `json:"region"`
		Country  wttrValue `json:"country"`
	} `json:"nearest_area"`
}

func (p *WttrProvider) Fetch(ctx context.Context, location string, units weather.Units) (weather.Record, error) {
	unitFlag := "u"
	if units == weather.UnitsMetric {
		unitFlag = "m"
	}

	u := fmt.Sprintf("%s/%s?format=j1&%s", p.baseURL, url.PathEscape(location), unitFlag)
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return weather.Record{}, &weather.TransportError{Err: err}
	}
	// Custom User-Agent to avoid an HTML response.
	req.Header.Set("User-Agent", "curl")

	var payload wttrJSON
	if err := getJSON(ctx, p.client, p.circuit, p.Name(), req, &payload); err != nil {
		return weather.Record{}, err
	}
	if len(payload.CurrentCondition) == 0 {
		return weather.Record{}, &weather.ParseError{Provider: p.Name(), Msg: "response has no current_condition"}
	}
	cur := payload.CurrentCondition[0]

	temp, feels, wind := cur.TempF, cur.FeelsLikeF, cur.WindspeedMiles
	if units == weather.UnitsMetric {
		temp, feels, wind = cur.TempC, cur.FeelsLikeC, cur.WindspeedKmph
	}
	if temp == nil || feels == nil || wind == nil {
		return weather.Record{}, &weather.ParseError{
			Provider: p.Name(),
			Msg:      fmt.Sprintf("current_condition lacks %s temperature, feels-like or wind fields", units),
		}
	}

	humidity := weather.ConditionUnknown.Label
	if cur.Humidity != "" {
		humidity = cur.Humidity + "%"
	}

	desc := common.FirstNonEmpty(cur.WeatherDesc.first(), weather.ConditionUnknown.Label)
	cond := weather.ConditionForText(desc)

	return weather.Record{
		Temp:       *temp + units.TempSymbol(),
		Conditions: cond.Label,
		Icon:       cond.Icon,
		Wind:       *wind + " " + units.SpeedLabel(),
		Humidity:   humidity,
		FeelsLike:  *feels + units.TempSymbol(),
		Location:   wttrLocationLabel(payload, location),
	}, nil
}

// wttrLocationLabel prefers "area, region", then the bare area name, then
// the location as the user typed it.
func wttrLocationLabel(payload wttrJSON, input string) string {
	if len(payload.NearestArea) == 0 {
		return input
	}
	area := payload.NearestArea[0]
	name := area.AreaName.first()
	if name == "" {
		return input
	}
	if region := area.Region.first(); region != "" {
		return name + ", " + region
	}
	return name
}
