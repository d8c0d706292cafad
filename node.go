package animcurve

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Recorder receives node activity. internal/metrics provides a Prometheus
// implementation; the default discards everything.
type Recorder interface {
	RecordRebuild(valid bool)
	RecordFallback(feature string)
	RecordBake(samples int, elapsed time.Duration)
	SetKeyframes(n int)
}

type nopRecorder struct{}

func (nopRecorder) RecordRebuild(bool)            {}
func (nopRecorder) RecordFallback(string)         {}
func (nopRecorder) RecordBake(int, time.Duration) {}
func (nopRecorder) SetKeyframes(int)              {}

// NodeParams are the per-update inputs of a Node.
type NodeParams struct {
	Params

	// Input is the evaluation position, or the offset added to the frame
	// when InputIsFrameOffset is set.
	Input float64

	// InputLinked reports that Input is driven per sample by the host, so
	// the curve cannot be baked ahead of time.
	InputLinked bool

	// InputIsFrameOffset makes Input relative to the render frame.
	InputIsFrameOffset bool
}

// nodeState is everything Evaluate reads. It is never modified after it has
// been published.
type nodeState struct {
	curve         *Curve
	table         *SampleTable
	pool          *ScratchPool
	inputIsOffset bool
	frame         float64
	motionStart   float64
	motionEnd     float64
}

var emptyState = &nodeState{}

// Node is a curve bound to a host's render settings.
//
// Update rebuilds the curve and publishes the result atomically; Evaluate may
// run concurrently on any number of workers and always sees a complete state.
// Each concurrent worker must pass its own id in [0, Threads).
type Node struct {
	state    atomic.Pointer[nodeState]
	mu       sync.Mutex // serializes Update
	recorder Recorder
	threads  int
	bake     func(c *Curve, start, end float64, steps int, offset float64) (*SampleTable, error)
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// WithRecorder sets the activity recorder.
func WithRecorder(r Recorder) NodeOption {
	return func(n *Node) {
		if r != nil {
			n.recorder = r
		}
	}
}

// WithThreads sets the default worker count used to size scratch pools.
// RenderOptions.Threads overrides it per update.
func WithThreads(threads int) NodeOption {
	return func(n *Node) {
		if threads > 0 {
			n.threads = threads
		}
	}
}

// NewNode returns a node that evaluates to 0 until the first Update.
func NewNode(opts ...NodeOption) *Node {
	n := &Node{
		recorder: nopRecorder{},
		threads:  runtime.NumCPU(),
		bake:     Bake,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.state.Store(emptyState)
	return n
}

// Update rebuilds the node from p and o.
//
// A build or bake error leaves the node evaluating to 0 and is returned. When the
// input is a frame offset and a frame is defined, an unlinked input bakes the
// curve over the motion window and evaluation reads the table; a linked input
// keeps the window for live evaluation instead.
func (n *Node) Update(p NodeParams, o RenderOptions) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	c, err := Build(p.Params)
	if err != nil {
		Logger().Warn("curve rejected, node evaluates to 0", slog.Any("error", err))
		n.reset()
		return err
	}

	for _, name := range c.Fallbacks().Names() {
		n.recorder.RecordFallback(name)
	}

	s := &nodeState{curve: c, inputIsOffset: p.InputIsFrameOffset}

	if p.InputIsFrameOffset {
		if w, ok := ResolveMotion(o); ok {
			if p.InputLinked {
				s.frame, s.motionStart, s.motionEnd = w.Frame, w.Start, w.End
			} else {
				begin := time.Now()
				table, err := n.bake(c, w.Start, w.End, w.Steps, p.Input)
				if err != nil {
					Logger().Warn("bake failed, node evaluates to 0", slog.Any("error", err))
					n.reset()
					return err
				}
				n.recorder.RecordBake(table.Len(), time.Since(begin))
				s.table = table
			}
		}
	}

	if s.table == nil && c.Weighted() {
		threads := n.threads
		if o.Threads > 0 {
			threads = o.Threads
		}
		s.pool = NewScratchPool(threads)
	}

	n.recorder.RecordRebuild(true)
	n.recorder.SetKeyframes(c.Len())
	n.state.Store(s)
	return nil
}

// reset publishes the empty state after a failed update.
func (n *Node) reset() {
	n.state.Store(emptyState)
	n.recorder.RecordRebuild(false)
	n.recorder.SetKeyframes(0)
}

// Evaluate returns the node value for one shading sample.
//
// time is the sample's normalized shutter time in [0, 1]. A baked node reads
// its table at time and ignores input. Otherwise input is used as the curve
// position, shifted onto the motion window when it is a frame offset.
func (n *Node) Evaluate(input, time float64, worker int) float64 {
	s := n.state.Load()
	if s.table != nil {
		return s.table.At(time)
	}
	if s.curve == nil {
		return 0
	}
	if s.inputIsOffset {
		if s.motionEnd <= s.motionStart {
			input += s.frame
		} else {
			input += s.motionStart + time*(s.motionEnd-s.motionStart)
		}
	}
	return s.curve.Eval(input, s.pool.Get(worker))
}

// Curve returns the curve of the last successful update, or nil.
func (n *Node) Curve() *Curve {
	return n.state.Load().curve
}

// Table returns the baked sample table, or nil when the node evaluates live.
func (n *Node) Table() *SampleTable {
	return n.state.Load().table
}

// Close releases the node's curve, table and scratch pool. The node keeps
// working and evaluates to 0 until the next Update.
func (n *Node) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.Store(emptyState)
}
