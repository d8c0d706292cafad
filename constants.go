package animcurve

// Motion sampling limits and defaults
const (
	// MaxMotionSteps bounds the number of samples in a baked table.
	MaxMotionSteps = 255

	// Default step counts when the host does not supply a usable one:
	// a single sample at the frame, both window ends when the frame sits on
	// one of them, and both ends plus the frame when it lies strictly inside.
	defaultStepsSingle  = 1
	defaultStepsEnds    = 2
	defaultStepsBracket = 3
)

// Cubic segment constants
const (
	// handleFraction places a weight-1 handle a third of the way across the
	// segment, which makes a weighted segment with unit weights identical to
	// the unweighted Hermite segment.
	handleFraction = 1.0 / 3.0

	// maxHandleWeightSum is the largest combined out/in weight for which the
	// x handles cannot cross. Larger pairs are scaled down proportionally.
	maxHandleWeightSum = 3.0

	// Hermite coefficients in y = ((a*t + b)*t + c)*t + d:
	//   a = 2*(y0 - y1) + d0 + d1
	//   b = 3*(y1 - y0) - 2*d0 - d1
	hermiteEndScale = 2.0
	hermiteMidScale = 3.0
)

// Scratch layout
const (
	scratchPadBytes = 64 // one cache line on common hardware
)
