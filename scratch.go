package animcurve

import (
	"github.com/tphakala/go-animcurve/internal/polynomial"
)

// PolynomialPair is the per-worker work storage for weighted spline
// evaluation: one cubic for the x parametrization and one for the values.
// Its zero value is ready to use.
type PolynomialPair struct {
	x polynomial.Cubic
	y polynomial.Cubic

	_ [scratchPadBytes]byte // keeps neighbouring slots off a shared cache line
}

// ScratchPool holds one PolynomialPair per worker.
//
// Slots are partitioned by worker id, so evaluation needs no locking as long
// as each worker only ever uses its own id. The pool is sized once when it is
// created and is rebuilt, not resized, on the next update.
type ScratchPool struct {
	slots []PolynomialPair
}

// NewScratchPool allocates a pool for the given number of workers.
// Worker counts below 1 are raised to 1.
func NewScratchPool(workers int) *ScratchPool {
	workers = max(workers, 1)
	return &ScratchPool{slots: make([]PolynomialPair, workers)}
}

// Get returns the slot for worker, or nil when the id is outside the pool.
// Curve.Eval accepts nil and falls back to a temporary.
func (p *ScratchPool) Get(worker int) *PolynomialPair {
	if p == nil || worker < 0 || worker >= len(p.slots) {
		return nil
	}
	return &p.slots[worker]
}

// Len returns the number of worker slots.
func (p *ScratchPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.slots)
}
