// Package telemetry sets up OpenTelemetry tracing, metrics and logs for grand.
package telemetry

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// Terminal is the endpoint value that writes spans to the terminal
// instead of exporting them over OTLP.
const Terminal = "terminal"

// Config holds configuration for telemetry export.
type Config struct {
	ServiceName string

	// OTLP config. An empty Endpoint disables telemetry.
	Endpoint string
	Insecure bool
	UseHTTP  bool
	Headers  HeaderValue
}

// HeaderValue is a map of header key-value pairs for OTLP exporters.
type HeaderValue map[string]string

var _ flag.Value = (*HeaderValue)(nil)

// Set parses a header string in the form key=value and adds it to the map.
func (v *HeaderValue) Set(s string) error {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 || kv[0] == "" {
		return errors.New("value should be of the format key=value")
	}
	if *v == nil {
		*v = HeaderValue{}
	}
	(*v)[kv[0]] = kv[1]
	return nil
}

// String returns the string representation of the HeaderValue map.
func (v *HeaderValue) String() string {
	return fmt.Sprintf("%v", map[string]string(*v))
}

// Enabled reports whether any telemetry is exported.
func (c *Config) Enabled() bool {
	return c.Endpoint != ""
}

// Validate checks the config for required fields.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.ServiceName == "" {
		return errors.New("service name must not be empty")
	}
	if strings.Contains(c.Endpoint, " ") {
		return errors.New("endpoint must not contain spaces")
	}
	return nil
}

// NewConfig returns a Config with telemetry disabled.
func NewConfig() *Config {
	return &Config{
		ServiceName: "grand",
		Endpoint:    "",
		Insecure:    false,
		UseHTTP:     false,
		Headers:     HeaderValue{},
	}
}
