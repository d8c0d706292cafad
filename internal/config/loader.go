package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables read by Load.
const (
	EnvPrefix     = "ANIMCURVE_"
	EnvConfigPath = "ANIMCURVE_CONFIG"

	// envNestDelim separates nested keys in variable names, so
	// ANIMCURVE_OPTIONS__FRAME sets options.frame.
	envNestDelim = "__"

	// envListSeparator splits list values, so ANIMCURVE_CURVE__VALUES=1,2
	// sets curve.values to [1 2].
	envListSeparator = ","
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) at path, or at $ANIMCURVE_CONFIG when path is empty
//  3. env (prefix ANIMCURVE_)
//
// List values in the environment are comma separated.
func Load(ctx context.Context, path string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := New()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.ProviderWithValue(EnvPrefix, ".", envKeyValue)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// The host only defines motion settings it has set; defaults do not count.
	cfg.present = presence{
		frame:       k.Exists("options.frame"),
		motionStart: k.Exists("options.motion_start_frame"),
		motionEnd:   k.Exists("options.motion_end_frame"),
		motionSteps: k.Exists("options.motion_steps"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKeyValue maps ANIMCURVE_OPTIONS__FRAME to options.frame and splits
// comma separated values into lists. The decoder converts each element to
// the field's element type.
func envKeyValue(key, value string) (string, any) {
	key = strings.ToLower(key)
	key = strings.TrimPrefix(key, strings.ToLower(EnvPrefix))
	key = strings.ReplaceAll(key, envNestDelim, ".")

	if strings.Contains(value, envListSeparator) {
		parts := strings.Split(value, envListSeparator)
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return key, parts
	}
	return key, value
}
