package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/i474232898/weatherline/internal/weather"
	"github.com/sony/gobreaker"
)

var (
	errUnexpected   = errors.New("unexpected status code")
	errNoHTTPClient = errors.New("http client not configured")
)

// newBreaker returns the circuit breaker guarding one upstream. It never
// retries; it only fails fast once an upstream keeps failing. Only transport
// errors and 5xx responses count as failures, so bad lookups from one caller
// cannot pause requests for everyone else.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
	})
}

// getJSON issues a single GET through the circuit breaker and decodes the
// JSON body into out. Transport failures and non-2xx statuses come back as
// *weather.TransportError, undecodable bodies as *weather.ParseError.
// An open breaker is reported as a TransportError wrapping gobreaker.ErrOpenState.
func getJSON(
	ctx context.Context,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	provider weather.ProviderKind,
	req *http.Request,
	out any,
) error {
	if client == nil {
		return &weather.TransportError{Err: errNoHTTPClient}
	}

	// Ensure the request obeys context cancellation.
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, statusError(req, resp)
		}
		// 4xx is the caller's problem, not the upstream's.
		return resp, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &weather.TransportError{Err: fmt.Errorf("%s is failing, requests paused: %w", req.URL.Host, err)}
	}
	if err != nil {
		return &weather.TransportError{Err: err}
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return &weather.TransportError{Err: fmt.Errorf("unexpected result type from circuit breaker")}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &weather.TransportError{Err: statusError(req, resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &weather.ParseError{Provider: provider, Msg: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func statusError(req *http.Request, resp *http.Response) error {
	return fmt.Errorf("%w: %s returned %d", errUnexpected, req.URL.Host, resp.StatusCode)
}
