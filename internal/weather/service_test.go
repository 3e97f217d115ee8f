package weather

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	kind  ProviderKind
	rec   Record
	err   error
	calls int
	units Units
}

func (f *fakeProvider) Name() ProviderKind { return f.kind }

func (f *fakeProvider) Fetch(_ context.Context, _ string, units Units) (Record, error) {
	f.calls++
	f.units = units
	return f.rec, f.err
}

func TestServiceEmptyLocationMakesNoCalls(t *testing.T) {
	om := &fakeProvider{kind: ProviderOpenMeteo, rec: londonRecord}
	wt := &fakeProvider{kind: ProviderWttr, rec: londonRecord}
	svc := NewService(om, wt)

	for _, loc := range []string{"", "   "} {
		set := DefaultSettings()
		set.Location = loc

		_, err := svc.Line(context.Background(), set)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ConfigError for %q, got %v", loc, err)
		}
		if cfgErr.Error() != "no location configured" {
			t.Fatalf("unexpected message %q", cfgErr.Error())
		}
	}

	if om.calls != 0 || wt.calls != 0 {
		t.Fatalf("expected zero provider calls, got %d and %d", om.calls, wt.calls)
	}
}

func TestServiceSelectsProvider(t *testing.T) {
	om := &fakeProvider{kind: ProviderOpenMeteo, rec: londonRecord}
	wt := &fakeProvider{kind: ProviderWttr, rec: Record{Temp: "64°F"}}
	svc := NewService(om, wt)

	set := DefaultSettings()
	set.Location = "London"
	set.Provider = ProviderWttr
	set.Template = "{temp}"

	line, err := svc.Line(context.Background(), set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "64°F" {
		t.Fatalf("expected wttr record, got %q", line)
	}
	if wt.calls != 1 || om.calls != 0 {
		t.Fatalf("expected only wttr to be called, got open-meteo=%d wttr=%d", om.calls, wt.calls)
	}
	if wt.units != UnitsImperial {
		t.Fatalf("expected imperial default units, got %s", wt.units)
	}
}

func TestServiceUnknownProvider(t *testing.T) {
	svc := NewService(&fakeProvider{kind: ProviderOpenMeteo})

	set := DefaultSettings()
	set.Location = "London"
	set.Provider = "accuweather"

	_, err := svc.Fetch(context.Background(), set)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestServiceLineScenario(t *testing.T) {
	svc := NewService(&fakeProvider{kind: ProviderOpenMeteo, rec: londonRecord})

	set := DefaultSettings()
	set.Location = "London"
	set.Units = UnitsMetric

	line, err := svc.Line(context.Background(), set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "⛅ 18°C, Partly cloudy | Wind: 12 km/h" {
		t.Fatalf("unexpected line %q", line)
	}
}

func TestServicePropagatesProviderError(t *testing.T) {
	parseErr := &ParseError{Provider: ProviderWttr, Msg: "missing"}
	svc := NewService(&fakeProvider{kind: ProviderWttr, err: parseErr})

	set := DefaultSettings()
	set.Location = "Oslo"
	set.Provider = ProviderWttr

	_, err := svc.Frontmatter(context.Background(), set)
	if !errors.Is(err, parseErr) {
		t.Fatalf("expected provider error to propagate, got %v", err)
	}
}

func TestServiceFrontmatter(t *testing.T) {
	svc := NewService(&fakeProvider{kind: ProviderOpenMeteo, rec: londonRecord})

	set := DefaultSettings()
	set.Location = "London"

	fm, err := svc.Frontmatter(context.Background(), set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fm.Fields) != 6 || fm.Fields[0].Key != "temp" || fm.Fields[5].Key != "location" {
		t.Fatalf("unexpected fields %+v", fm.Fields)
	}
}

func TestGeoResultLabel(t *testing.T) {
	withRegion := GeoResult{Name: "London", Country: "United Kingdom", Admin1: "England"}
	if got := withRegion.Label(); got != "London, England" {
		t.Fatalf("unexpected label %q", got)
	}

	noRegion := GeoResult{Name: "Monaco", Country: "Monaco"}
	if got := noRegion.Label(); got != "Monaco, Monaco" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestServiceLineUsesTemplateAsGiven(t *testing.T) {
	svc := NewService(&fakeProvider{kind: ProviderOpenMeteo, rec: londonRecord})

	set := DefaultSettings()
	set.Location = "London"

	set.Template = "no tokens here"
	line, err := svc.Line(context.Background(), set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "no tokens here" {
		t.Fatalf("expected template unchanged, got %q", line)
	}

	set.Template = ""
	line, err = svc.Line(context.Background(), set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "" {
		t.Fatalf("expected empty template to render empty, got %q", line)
	}
}
