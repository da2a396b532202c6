// Package draw runs concurrent workers that draw values from grand sources
// and write them out.
package draw

import (
	"errors"
	"fmt"
	"time"
)

// Kind selects what a worker draws.
type Kind string

// Supported kinds.
const (
	KindInt     Kind = "int"
	KindDouble  Kind = "double"
	KindBool    Kind = "bool"
	KindWord    Kind = "word"
	KindShuffle Kind = "shuffle"
)

// Config holds configuration for a draw run.
type Config struct {
	Kind        Kind
	N           int
	Bound       float64
	Probability float64
	Items       []string

	Count         int
	Workers       int
	Rate          float64
	TotalDuration time.Duration

	// Seed is only used when HasSeed is set. Worker i is seeded with Seed+i.
	Seed    int64
	HasSeed bool
}

// Validate checks the config for valid values.
// Zero is allowed for count, rate and total duration (meaning "unbounded"
// or "unthrottled"). The drawing parameters themselves are never invalid.
func (c *Config) Validate() error {
	switch c.Kind {
	case KindInt, KindDouble, KindBool, KindWord:
	case KindShuffle:
		if len(c.Items) == 0 {
			return errors.New("shuffle needs at least one item")
		}
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}
	if c.Count < 0 {
		return errors.New("count must be non-negative")
	}
	if c.Workers < 1 {
		return errors.New("worker count must be positive")
	}
	if c.Rate < 0 {
		return errors.New("rate must be non-negative (0 means unthrottled)")
	}
	if c.TotalDuration < 0 {
		return errors.New("total duration must be non-negative")
	}
	return nil
}

// NewConfig returns a Config that draws a single coin flip.
func NewConfig() *Config {
	return &Config{
		Kind:          KindInt,
		N:             2,
		Bound:         1.0,
		Probability:   0.5,
		Count:         1,
		Workers:       1,
		Rate:          0,
		TotalDuration: 0,
	}
}
