// Package config loads the render options and curve parameters a host would
// hand to an animation curve node.
//
// Values are layered in order of precedence (low -> high): defaults, an
// optional YAML file, then ANIMCURVE_* environment variables.
package config

import (
	"fmt"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Options mirrors the host's render options node.
	Options Options `koanf:"options"`

	// Curve holds the node parameters.
	Curve Curve `koanf:"curve"`

	present presence
}

// Options are the render settings that drive motion sampling. Only settings
// that were actually set in the file or environment count as defined.
type Options struct {
	Frame               float64 `koanf:"frame"`
	MotionStartFrame    float64 `koanf:"motion_start_frame"`
	MotionEndFrame      float64 `koanf:"motion_end_frame"`
	RelativeMotionFrame bool    `koanf:"relative_motion_frame"`
	MotionSteps         int     `koanf:"motion_steps"`

	// Threads sizes the per-worker scratch pool; 0 means one per CPU.
	Threads int `koanf:"threads"`
}

// Curve holds the keyframe arrays and node inputs. Modes are given by name.
type Curve struct {
	Positions      []float64 `koanf:"positions"`
	Values         []float64 `koanf:"values"`
	Interpolations []string  `koanf:"interpolations"`
	InTangents     []float64 `koanf:"in_tangents"`
	OutTangents    []float64 `koanf:"out_tangents"`
	InWeights      []float64 `koanf:"in_weights"`
	OutWeights     []float64 `koanf:"out_weights"`

	DefaultInterpolation string `koanf:"default_interpolation"`
	PreInfinity          string `koanf:"pre_infinity"`
	PostInfinity         string `koanf:"post_infinity"`

	Input              float64 `koanf:"input"`
	InputLinked        bool    `koanf:"input_linked"`
	InputIsFrameOffset bool    `koanf:"input_is_frame_offset"`
}

// presence records which option keys were set by a source other than the
// defaults.
type presence struct {
	frame       bool
	motionStart bool
	motionEnd   bool
	motionSteps bool
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Curve: Curve{
			DefaultInterpolation: "linear",
			PreInfinity:          "constant",
			PostInfinity:         "constant",
			InputIsFrameOffset:   true,
		},
	}
}

// Validate checks the settings that cannot fall back to a default.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Options.Threads < 0 {
		return fmt.Errorf("%w: threads must not be negative, got %d", ErrInvalidConfig, c.Options.Threads)
	}
	return nil
}
