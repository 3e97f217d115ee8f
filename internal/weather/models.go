package weather

import (
	"fmt"
	"strings"
)

// Units selects the unit family used for temperatures and wind speed.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// TempSymbol returns the suffix appended to temperature values.
func (u Units) TempSymbol() string {
	if u == UnitsMetric {
		return "°C"
	}
	return "°F"
}

// SpeedLabel returns the suffix appended to wind speed values.
func (u Units) SpeedLabel() string {
	if u == UnitsMetric {
		return "km/h"
	}
	return "mph"
}

// ProviderKind names one of the two supported weather sources.
type ProviderKind string

const (
	// ProviderOpenMeteo geocodes the location, then queries by coordinates.
	ProviderOpenMeteo ProviderKind = "open-meteo"
	// ProviderWttr queries wttr.in with the place name in the path.
	ProviderWttr ProviderKind = "wttr"
)

// Record is the normalized, provider-agnostic weather view.
// All fields are presentation-ready strings with units already embedded.
type Record struct {
	Temp       string `json:"temp"`
	Conditions string `json:"conditions"`
	Icon       string `json:"icon"`
	Wind       string `json:"wind"`
	Humidity   string `json:"humidity"`
	FeelsLike  string `json:"feelsLike"`
	Location   string `json:"location"`
}

// GeoResult is the best geocoding match for a place name.
type GeoResult struct {
	Latitude  float64
	Longitude float64
	Name      string
	Country   string
	Admin1    string // first-level region, may be empty
}

// Label composes the display label: "name, region" when a region is known,
// otherwise "name, country".
func (g GeoResult) Label() string {
	if g.Admin1 != "" {
		return fmt.Sprintf("%s, %s", g.Name, g.Admin1)
	}
	return fmt.Sprintf("%s, %s", g.Name, g.Country)
}

// Segments controls which optional template fragments survive rendering.
type Segments struct {
	ShowWind     bool
	ShowHumidity bool
}

// DefaultTemplate is used when no template is configured.
const DefaultTemplate = "{icon} {temp}, {conditions} | Wind: {wind}"

// Settings is the read-only view of configuration consumed per call.
type Settings struct {
	Location     string
	Units        Units
	Provider     ProviderKind
	Template     string
	ShowWind     bool
	ShowHumidity bool

	// EscapeQuotes backslash-escapes quotes in frontmatter values.
	EscapeQuotes bool
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		Units:    UnitsImperial,
		Provider: ProviderOpenMeteo,
		Template: DefaultTemplate,
		ShowWind: true,
	}
}

// Segments extracts the segment flags.
func (s Settings) Segments() Segments {
	return Segments{ShowWind: s.ShowWind, ShowHumidity: s.ShowHumidity}
}

func (s Settings) hasLocation() bool {
	return strings.TrimSpace(s.Location) != ""
}
