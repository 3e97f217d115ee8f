package weather

import (
	"strings"
)

// Field is a single frontmatter key with its raw (unquoted) value.
type Field struct {
	Key   string
	Value string
}

// Frontmatter is the ordered six-field block produced for a record.
type Frontmatter struct {
	Fields []Field

	escape bool
}

// NewFrontmatter builds the block in its fixed order:
// temp, conditions, icon, wind, humidity, location.
func NewFrontmatter(rec Record, escapeQuotes bool) Frontmatter {
	return Frontmatter{
		Fields: []Field{
			{"temp", rec.Temp},
			{"conditions", rec.Conditions},
			{"icon", rec.Icon},
			{"wind", rec.Wind},
			{"humidity", rec.Humidity},
			{"location", rec.Location},
		},
		escape: escapeQuotes,
	}
}

// Map returns field name to quoted value.
func (f Frontmatter) Map() map[string]string {
	m := make(map[string]string, len(f.Fields))
	for _, fld := range f.Fields {
		m[fld.Key] = f.quote(fld.Value)
	}
	return m
}

// Lines returns one `key: "value"` line per field, in order.
func (f Frontmatter) Lines() []string {
	lines := make([]string, 0, len(f.Fields))
	for _, fld := range f.Fields {
		lines = append(lines, fld.Key+": "+f.quote(fld.Value))
	}
	return lines
}

func (f Frontmatter) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Values are quoted verbatim unless escaping was requested; an embedded
// quote then produces invalid YAML.
func (f Frontmatter) quote(v string) string {
	if f.escape {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, `"`, `\"`)
	}
	return `"` + v + `"`
}
