package weather

import (
	"strings"

	"github.com/i474232898/weatherline/internal/common"
)

// Condition is a human-readable label plus a symbolic icon.
type Condition struct {
	Label string
	Icon  string
}

// FallbackIcon is used whenever a condition cannot be classified.
const FallbackIcon = "🌡️"

// ConditionUnknown is returned for codes outside the WMO table.
var ConditionUnknown = Condition{Label: "Unknown", Icon: FallbackIcon}

// wmoConditions maps WMO weather interpretation codes (as used by Open-Meteo).
var wmoConditions = map[int]Condition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	56: {"Light freezing drizzle", "🌨️"},
	57: {"Dense freezing drizzle", "🌨️"},
	61: {"Slight rain", "🌦️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	66: {"Light freezing rain", "🌨️"},
	67: {"Heavy freezing rain", "🌨️"},
	71: {"Slight snow", "🌨️"},
	73: {"Moderate snow", "❄️"},
	75: {"Heavy snow", "❄️"},
	77: {"Snow grains", "🌨️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌧️"},
	82: {"Violent rain showers", "⛈️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "❄️"},
	95: {"Thunderstorm", "⛈️"},
}

// ConditionForCode maps a WMO code to a condition. It never fails: codes
// outside the table yield ConditionUnknown.
func ConditionForCode(code int) Condition {
	if c, ok := wmoConditions[code]; ok {
		return c
	}
	return ConditionUnknown
}

// keywordIcons is checked in order; more specific groups come first.
var keywordIcons = []struct {
	keywords []string
	icon     string
}{
	{[]string{"thunder"}, "⛈️"},
	{[]string{"snow", "blizzard"}, "❄️"},
	{[]string{"sleet", "freezing"}, "🌨️"},
	{[]string{"heavy rain", "downpour"}, "🌧️"},
	{[]string{"rain", "drizzle"}, "🌦️"},
	{[]string{"fog", "mist"}, "🌫️"},
	{[]string{"overcast"}, "☁️"},
	{[]string{"partly", "cloudy"}, "⛅"},
	{[]string{"clear", "sunny"}, "☀️"},
}

// IconForText picks an icon for a free-text description by case-insensitive
// keyword match. The first matching group wins.
func IconForText(desc string) string {
	lower := strings.ToLower(desc)
	for _, group := range keywordIcons {
		if common.HasAny(lower, group.keywords...) {
			return group.icon
		}
	}
	return FallbackIcon
}

// ConditionForText keeps the description as the label and derives the icon.
func ConditionForText(desc string) Condition {
	return Condition{Label: desc, Icon: IconForText(desc)}
}
