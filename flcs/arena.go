package flcs

import "sync"

// Allocator supplies backing storage for an Engine's match matrix and
// candidate frontier. The only contract an implementation must honor
// is that slices returned from AllocCells / AllocCandidates remain
// valid for at least the lifetime of the Engine and any Result it
// produces.
//
// Callers that want true arena semantics (never freed until process
// exit) can supply an Allocator that always returns fresh slices and
// ignores Release. The default allocator instead pools slices via
// sync.Pool and reclaims them on Engine.Release.
type Allocator interface {
	// AllocCells returns a slice of length n for the match matrix.
	AllocCells(n int) []evalMatch
	// AllocCandidates returns a slice of length n for the candidate arena.
	AllocCandidates(n int) []candidateNode
	// Release returns previously allocated slices to the allocator. It
	// is called at most once per Engine, from Engine.Release.
	Release(cells []evalMatch, candidates []candidateNode)
}

// pooledAllocator is the default Allocator: a pair of sync.Pool
// instances keyed by nothing but size class ("big enough or discard"),
// which is the idiom the wider corpus reaches for whenever hot-loop
// buffers need reuse across calls rather than a hand-rolled bump
// allocator (no third-party arena/pool library appears anywhere in the
// retrieved examples — see DESIGN.md).
type pooledAllocator struct {
	cellPool sync.Pool
	candPool sync.Pool
}

// defaultAllocator is shared by all engines that do not supply their
// own Allocator. sync.Pool is itself safe for concurrent use, though a
// single Engine is not.
var defaultAllocator = newPooledAllocator()

func newPooledAllocator() *pooledAllocator {
	return &pooledAllocator{}
}

func (p *pooledAllocator) AllocCells(n int) []evalMatch {
	if v, ok := p.cellPool.Get().([]evalMatch); ok && cap(v) >= n {
		return v[:n]
	}

	return make([]evalMatch, n)
}

func (p *pooledAllocator) AllocCandidates(n int) []candidateNode {
	if v, ok := p.candPool.Get().([]candidateNode); ok && cap(v) >= n {
		return v[:n]
	}

	return make([]candidateNode, n)
}

func (p *pooledAllocator) Release(cells []evalMatch, candidates []candidateNode) {
	if cells != nil {
		p.cellPool.Put(cells[:0:cap(cells)]) //nolint:staticcheck // reset length, keep capacity
	}
	if candidates != nil {
		p.candPool.Put(candidates[:0:cap(candidates)])
	}
}
