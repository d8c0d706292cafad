package mathutil

// Mirror folding constants
const (
	// mirrorPeriodFactor converts a domain span into the mirror period:
	// one forward pass plus one backward pass.
	mirrorPeriodFactor = 2.0
)
