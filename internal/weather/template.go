package weather

import (
	"regexp"
	"strings"
)

// Template tokens recognized by Render.
const (
	TokenIcon       = "{icon}"
	TokenTemp       = "{temp}"
	TokenConditions = "{conditions}"
	TokenWind       = "{wind}"
	TokenHumidity   = "{humidity}"
	TokenFeelsLike  = "{feels_like}"
	TokenLocation   = "{location}"
)

// The optional segments are recognized only in this literal phrasing:
// an optional "|" separator, the label, then the value tokens.
var (
	windSegment     = regexp.MustCompile(`\s*\|?\s*Wind:\s*\S+(?:\s+\S+)?`)
	humiditySegment = regexp.MustCompile(`\s*\|?\s*Humidity:\s*\S+`)
)

// Render substitutes every recognized token in tmpl with the matching record
// field, strips disabled optional segments and trims the result. Unknown
// tokens are left as they are.
func Render(rec Record, tmpl string, seg Segments) string {
	r := strings.NewReplacer(
		TokenIcon, rec.Icon,
		TokenTemp, rec.Temp,
		TokenConditions, rec.Conditions,
		TokenWind, rec.Wind,
		TokenHumidity, rec.Humidity,
		TokenFeelsLike, rec.FeelsLike,
		TokenLocation, rec.Location,
	)
	out := r.Replace(tmpl)

	if !seg.ShowWind {
		out = windSegment.ReplaceAllString(out, "")
	}
	if !seg.ShowHumidity {
		out = humiditySegment.ReplaceAllString(out, "")
	}

	return strings.TrimSpace(out)
}
