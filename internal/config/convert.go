package config

import (
	"log/slog"
	"strings"

	animcurve "github.com/tphakala/go-animcurve"
)

// undefinedMode is handed to the curve builder for a mode name that does not
// parse, so the builder applies and reports its usual fallback.
const undefinedMode = -1

// RenderOptions converts the options section into the node's render options.
func (c *Config) RenderOptions() animcurve.RenderOptions {
	o := c.Options
	return animcurve.RenderOptions{
		HasFrame:            c.present.frame,
		Frame:               o.Frame,
		HasMotionWindow:     c.present.motionStart && c.present.motionEnd,
		MotionStart:         o.MotionStartFrame,
		MotionEnd:           o.MotionEndFrame,
		RelativeMotionFrame: o.RelativeMotionFrame,
		HasMotionSteps:      c.present.motionSteps,
		MotionSteps:         o.MotionSteps,
		Threads:             o.Threads,
	}
}

// NodeParams converts the curve section into node parameters. Unknown mode
// names are passed on as undefined modes rather than rejected.
func (c *Config) NodeParams() animcurve.NodeParams {
	cv := c.Curve

	var interps animcurve.Array
	if len(cv.Interpolations) > 0 {
		modes := make([]int, len(cv.Interpolations))
		for i, name := range cv.Interpolations {
			modes[i] = int(parseInterpolation(name))
		}
		interps = animcurve.Ints(modes...)
	}

	return animcurve.NodeParams{
		Params: animcurve.Params{
			Positions:            floatArray(cv.Positions),
			Values:               floatArray(cv.Values),
			Interpolations:       interps,
			InTangents:           floatArray(cv.InTangents),
			OutTangents:          floatArray(cv.OutTangents),
			InWeights:            floatArray(cv.InWeights),
			OutWeights:           floatArray(cv.OutWeights),
			DefaultInterpolation: parseInterpolation(cv.DefaultInterpolation),
			PreInfinity:          parseInfinity(cv.PreInfinity),
			PostInfinity:         parseInfinity(cv.PostInfinity),
		},
		Input:              cv.Input,
		InputLinked:        cv.InputLinked,
		InputIsFrameOffset: cv.InputIsFrameOffset,
	}
}

// SlogLevel returns the configured log level.
// Accepts: debug, info, warn/warning, error (case-insensitive).
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func floatArray(v []float64) animcurve.Array {
	if len(v) == 0 {
		return animcurve.Array{}
	}
	return animcurve.Floats(v...)
}

func parseInterpolation(name string) animcurve.Interpolation {
	mode, err := animcurve.ParseInterpolation(name)
	if err != nil {
		return animcurve.Interpolation(undefinedMode)
	}
	return mode
}

func parseInfinity(name string) animcurve.Infinity {
	policy, err := animcurve.ParseInfinity(name)
	if err != nil {
		return animcurve.Infinity(undefinedMode)
	}
	return policy
}
