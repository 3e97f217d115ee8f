package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/i474232898/weatherline/internal/weather"
	"github.com/sony/gobreaker"
)

func TestClientErrorsDoNotTripBreaker(t *testing.T) {
	var validHits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Nowhere" {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt32(&validHits, 1)
		_, _ = w.Write([]byte(wttrPayload))
	}))
	defer srv.Close()

	p := NewWttrProvider(srv.Client())
	p.baseURL = srv.URL

	for i := 0; i < 10; i++ {
		_, err := p.Fetch(context.Background(), "Nowhere", weather.UnitsMetric)
		var te *weather.TransportError
		if !errors.As(err, &te) || !errors.Is(err, errUnexpected) {
			t.Fatalf("call %d: expected status TransportError, got %v", i, err)
		}
		if errors.Is(err, gobreaker.ErrOpenState) {
			t.Fatalf("call %d: breaker opened on a 404", i)
		}
	}

	rec, err := p.Fetch(context.Background(), "Bergen", weather.UnitsMetric)
	if err != nil {
		t.Fatalf("valid location failed after bad lookups: %v", err)
	}
	if validHits != 1 {
		t.Fatalf("expected the valid location to reach the upstream, got %d hits", validHits)
	}
	if rec.Location != "Bergen, Hordaland" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestServerErrorsOpenBreaker(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewWttrProvider(srv.Client())
	p.baseURL = srv.URL

	// The default breaker trips after more than five consecutive failures.
	for i := 0; i < 6; i++ {
		if _, err := p.Fetch(context.Background(), "Bergen", weather.UnitsMetric); !errors.Is(err, errUnexpected) {
			t.Fatalf("call %d: expected status error, got %v", i, err)
		}
	}

	_, err := p.Fetch(context.Background(), "Bergen", weather.UnitsMetric)
	var te *weather.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if hits != 6 {
		t.Fatalf("expected no upstream call while open, got %d hits", hits)
	}
}
