package weather

import (
	"fmt"
)

// ConfigError reports missing or invalid configuration. It is raised before
// any network call is made.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// NotFoundError is returned when geocoding yields no match.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("location \"%s\" not found; try a city name such as \"London\" or \"Paris\"", e.Query)
}

// ParseError is returned when a provider response lacks an expected section.
type ParseError struct {
	Provider ProviderKind
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Msg)
}

// TransportError wraps a failure from the HTTP transport. Its message is the
// underlying error's message, unmodified.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

const msgNoLocation = "no location configured"
