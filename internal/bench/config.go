// Package bench measures the throughput and uniformity of grand sources.
package bench

import (
	"errors"
	"time"
)

// Config holds configuration for a benchmark run.
type Config struct {
	Bound        int
	Count        int
	Workers      int
	FloatSamples int
	Interval     time.Duration

	Seed    int64
	HasSeed bool
}

// Validate checks the config for valid values.
func (c *Config) Validate() error {
	if c.Bound < 2 {
		return errors.New("bound must be at least 2")
	}
	if c.Count < 1 {
		return errors.New("count must be positive")
	}
	if c.Workers < 1 {
		return errors.New("worker count must be positive")
	}
	if c.FloatSamples < 0 {
		return errors.New("float samples must be non-negative")
	}
	if c.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	return nil
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Bound:        10,
		Count:        1_000_000,
		Workers:      1,
		FloatSamples: 10_000,
		Interval:     time.Second,
	}
}
