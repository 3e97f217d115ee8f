package weather

import (
	"context"
)

// Provider abstracts a weather data source (Open-Meteo, wttr.in).
// Implementations return a fully populated Record.
type Provider interface {
	Name() ProviderKind
	Fetch(ctx context.Context, location string, units Units) (Record, error)
}

// Resolver turns a free-text place name into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, place string) (GeoResult, error)
}
