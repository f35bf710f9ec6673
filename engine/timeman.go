package engine

import (
	"sync/atomic"
	"time"
)

// nodePollInterval is the only frequency at which a search consults the
// wall clock (§3, §5): cheap bitwise check on the node counter.
const nodePollInterval = 512

// SearchContext carries the deadline and node counter threaded through one
// call to the iterative deepening loop. It is cooperative and
// single-threaded, but stopped is atomic so a UCI `stop` arriving between
// input lines (this engine never receives one mid-search, per §4.11) is at
// least safe to observe.
type SearchContext struct {
	startTime time.Time
	deadline  time.Time
	nodes     int64
	stopped   atomic.Bool
}

// NewSearchContext starts a context with the given per-move deadline.
func NewSearchContext(budget time.Duration) *SearchContext {
	now := time.Now()
	return &SearchContext{
		startTime: now,
		deadline:  now.Add(budget),
	}
}

// Stop cooperatively aborts the in-flight search.
func (ctx *SearchContext) Stop() { ctx.stopped.Store(true) }

// Elapsed returns the time spent so far.
func (ctx *SearchContext) Elapsed() time.Duration { return time.Since(ctx.startTime) }

// Nodes returns the number of nodes visited so far.
func (ctx *SearchContext) Nodes() int64 { return atomic.LoadInt64(&ctx.nodes) }

// visit counts one node visit and reports whether the deadline has now
// passed, polling the clock only every nodePollInterval visits (§3, §5).
func (ctx *SearchContext) visit() bool {
	n := atomic.AddInt64(&ctx.nodes, 1)
	if n&(nodePollInterval-1) != 0 {
		return ctx.stopped.Load()
	}
	if ctx.stopped.Load() {
		return true
	}
	if time.Now().After(ctx.deadline) {
		ctx.stopped.Store(true)
		return true
	}
	return false
}

// AllocateTime converts a remaining-clock budget into a per-move deadline,
// per §4.3: Δ = max(50, T/30), except T=0 means "return immediately with
// whatever is already computed" rather than the usual 50ms floor.
func AllocateTime(remainingMS int) time.Duration {
	if remainingMS <= 0 {
		return 0
	}
	allocated := remainingMS / 30
	if allocated < 50 {
		allocated = 50
	}
	return time.Duration(allocated) * time.Millisecond
}
