// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config describes the simulated worker pool.
type Config struct {
	// Workers is the number of steps that may be in progress at once.
	Workers int `yaml:"workers"`

	// BaseDuration is added to every step's alphabet ordinal when Duration
	// is nil.
	BaseDuration int `yaml:"base_duration"`

	// Duration overrides the per-step duration. When nil,
	// AlphabetDuration(BaseDuration) is used.
	Duration DurationFunc `yaml:"-"`
}

// ProductionConfig returns the configuration used for full-size inputs: five
// workers and a sixty second base duration.
func ProductionConfig() Config {
	return Config{Workers: 5, BaseDuration: 60}
}

// ExampleConfig returns the configuration used for the small worked example:
// two workers and no base duration.
func ExampleConfig() Config {
	return Config{Workers: 2, BaseDuration: 0}
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Duration == nil && c.BaseDuration < 0 {
		return fmt.Errorf("%w: base_duration may not be negative, got %d", ErrInvalidConfig, c.BaseDuration)
	}
	return nil
}

func (c Config) durationFunc() DurationFunc {
	if c.Duration != nil {
		return c.Duration
	}
	return AlphabetDuration(c.BaseDuration)
}

// LoadConfig decodes a YAML document such as
//
//	workers: 5
//	base_duration: 60
//
// Fields that are absent keep their [ProductionConfig] values; an empty
// document yields ProductionConfig itself. Unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := ProductionConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// An Option adjusts how a simulation or sweep runs without affecting its
// result.
type Option func(*options)

type options struct {
	logger         *zap.Logger
	tracerProvider trace.TracerProvider
}

// WithLogger directs per-step admission and completion events to logger at
// debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracerProvider makes [Sweep] record spans with tp instead of the global
// OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	return o
}
