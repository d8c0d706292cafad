package animcurve

import (
	"log/slog"
)

// RenderOptions carries the host's global render settings that drive motion
// sampling. The Has* flags record which settings the host actually defines.
type RenderOptions struct {
	HasFrame bool
	Frame    float64

	HasMotionWindow bool
	MotionStart     float64
	MotionEnd       float64

	// RelativeMotionFrame makes MotionStart and MotionEnd offsets from Frame.
	RelativeMotionFrame bool

	HasMotionSteps bool
	MotionSteps    int

	// Threads is the number of concurrent evaluation workers. Values below
	// 1 mean "use the node default".
	Threads int
}

// ResolveMotion derives the bake window from the host options.
//
// It reports false when no frame is defined, in which case nothing can be
// baked. Without a motion window a single sample at the frame is baked. An
// inverted window, or one that does not contain the frame, collapses onto
// the frame. The step count defaults to 1, 2 or 3 depending on where the
// frame sits in the window; a positive MotionSteps overrides it, and the
// result never exceeds MaxMotionSteps.
func ResolveMotion(o RenderOptions) (MotionWindow, bool) {
	log := Logger()

	if !o.HasFrame {
		log.Warn("no frame option defined, cannot bake curve samples")
		return MotionWindow{}, false
	}

	frame := o.Frame
	w := MotionWindow{Frame: frame, Start: frame, End: frame, Steps: defaultStepsSingle}

	if !o.HasMotionWindow {
		log.Warn("no motion window defined, baking a single sample", slog.Float64("frame", frame))
		return w, true
	}

	start, end := o.MotionStart, o.MotionEnd
	if o.RelativeMotionFrame {
		start += frame
		end += frame
	}

	if start > end || frame < start || frame > end {
		log.Warn("invalid motion window, collapsing onto frame",
			slog.Float64("motion_start", start),
			slog.Float64("motion_end", end),
			slog.Float64("frame", frame))
		start, end = frame, frame
	}
	w.Start, w.End = start, end

	if end > start {
		w.Steps = defaultStepsEnds
		if frame > start && frame < end {
			w.Steps = defaultStepsBracket
		}
	}

	switch {
	case !o.HasMotionSteps:
		log.Warn("no motion steps defined, using default", slog.Int("steps", w.Steps))
	case o.MotionSteps > 0:
		w.Steps = o.MotionSteps
	default:
		log.Warn("invalid motion steps, using default",
			slog.Int("motion_steps", o.MotionSteps),
			slog.Int("steps", w.Steps))
	}

	if w.Steps > MaxMotionSteps {
		log.Warn("clamping motion steps", slog.Int("steps", w.Steps), slog.Int("max", MaxMotionSteps))
		w.Steps = MaxMotionSteps
	}

	return w, true
}
