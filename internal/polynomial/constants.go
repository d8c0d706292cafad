package polynomial

// Degeneracy thresholds
const (
	// A leading coefficient this small relative to the others is treated as
	// zero and the equation is solved one degree lower.
	degenerateRatio = 1e-12

	// rootTolerance accepts roots that land just outside [0, 1] because of
	// rounding at segment boundaries. They are clamped afterwards.
	rootTolerance = 1e-9
)

// Refinement limits. Both loops are capped so inversion always terminates.
const (
	maxNewtonSteps      = 2
	maxBisectIterations = 64
)

// Numeric constants used by the cubic solver.
const (
	oneThird = 1.0 / 3.0
	sqrt3    = 1.7320508075688772
)
