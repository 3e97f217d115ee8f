package weather

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Service selects the configured provider, fetches the current weather and
// hands the record to the renderer. It holds no per-call state.
type Service struct {
	providers map[ProviderKind]Provider
	debug     bool
}

// NewService creates a new Service over the given providers.
func NewService(providers ...Provider) *Service {
	m := make(map[ProviderKind]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Service{providers: m}
}

// SetDebug toggles DEBUG log lines.
func (s *Service) SetDebug(on bool) {
	s.debug = on
}

// Fetch validates the settings and returns the normalized record from the
// selected provider. An empty location fails before any provider is called.
func (s *Service) Fetch(ctx context.Context, set Settings) (Record, error) {
	if !set.hasLocation() {
		return Record{}, &ConfigError{Msg: msgNoLocation}
	}

	p, ok := s.providers[set.Provider]
	if !ok {
		return Record{}, &ConfigError{Msg: fmt.Sprintf("unsupported weather provider: %q", set.Provider)}
	}

	units := set.Units
	if units != UnitsMetric {
		units = UnitsImperial
	}

	id := uuid.NewString()
	if s.debug {
		log.Printf("DEBUG: [%s] fetching %q from %s (%s)", id, set.Location, p.Name(), units)
	}

	rec, err := p.Fetch(ctx, set.Location, units)
	if err != nil {
		if s.debug {
			log.Printf("DEBUG: [%s] provider %s fetch failed for %q", id, p.Name(), set.Location)
		}
		return Record{}, err
	}

	if s.debug {
		log.Printf("DEBUG: [%s] got %+v", id, rec)
	}
	return rec, nil
}

// Line fetches the weather and renders it through the configured template.
// The template is used as given; defaults are applied by configuration.
func (s *Service) Line(ctx context.Context, set Settings) (string, error) {
	rec, err := s.Fetch(ctx, set)
	if err != nil {
		return "", err
	}
	return Render(rec, set.Template, set.Segments()), nil
}

// Frontmatter fetches the weather and returns the six-field block.
func (s *Service) Frontmatter(ctx context.Context, set Settings) (Frontmatter, error) {
	rec, err := s.Fetch(ctx, set)
	if err != nil {
		return Frontmatter{}, err
	}
	return NewFrontmatter(rec, set.EscapeQuotes), nil
}
