package flcs

import (
	"math"
	"testing"
)

// TestFrontier_InsertPopOrder verifies the frontier pops candidates in
// strictly descending metric order, with stable tail insertion for ties.
func TestFrontier_InsertPopOrder(t *testing.T) {
	fr := newFrontier(5, 5, defaultAllocator)

	fr.insert(0, 0, 0) // upperBound=5, metric=5
	fr.insert(1, 0, 2) // upperBound=2+4=6, metric=6.02
	fr.insert(0, 1, 2) // upperBound=2+4=6, metric=6.02 (tie, inserted after)

	gotI, gotJ, _ := fr.pop()
	if gotI != 1 || gotJ != 0 {
		t.Fatalf("expected (1,0) first (inserted before its tie), got (%d,%d)", gotI, gotJ)
	}
	gotI, gotJ, _ = fr.pop()
	if gotI != 0 || gotJ != 1 {
		t.Fatalf("expected (0,1) second, got (%d,%d)", gotI, gotJ)
	}
	gotI, gotJ, _ = fr.pop()
	if gotI != 0 || gotJ != 0 {
		t.Fatalf("expected (0,0) last, got (%d,%d)", gotI, gotJ)
	}
	if !fr.empty() {
		t.Fatalf("frontier should be empty after draining all candidates")
	}
}

// TestFrontier_PruneDropsBelowThreshold verifies prune() removes only
// candidates whose upper bound falls below minScore, scanning from the
// tail inward.
func TestFrontier_PruneDropsBelowThreshold(t *testing.T) {
	fr := newFrontier(10, 10, defaultAllocator)

	fr.insert(8, 8, 0) // upperBound=2
	fr.insert(5, 5, 0) // upperBound=5
	fr.insert(0, 0, 0) // upperBound=10

	fr.prune(4) // drop anything with upperBound < 4

	if fr.len() != 2 {
		t.Fatalf("expected 2 survivors after prune(4), got %d", fr.len())
	}
	i, j, _ := fr.pop()
	if i != 0 || j != 0 {
		t.Fatalf("expected (0,0) to survive as highest metric, got (%d,%d)", i, j)
	}
	i, j, _ = fr.pop()
	if i != 5 || j != 5 {
		t.Fatalf("expected (5,5) to survive, got (%d,%d)", i, j)
	}
}

// TestFrontier_FreeListRecyclesNodes verifies that popped/pruned nodes
// are reused by subsequent inserts instead of growing the arena.
func TestFrontier_FreeListRecyclesNodes(t *testing.T) {
	fr := newFrontier(20, 20, defaultAllocator)
	fr.insert(0, 0, 0)
	fr.insert(1, 1, 0)
	arenaLenBefore := len(fr.nodes)

	fr.pop()
	fr.pop()
	if !fr.empty() {
		t.Fatalf("expected frontier empty after draining")
	}

	fr.insert(2, 2, 0)
	fr.insert(3, 3, 0)

	if len(fr.nodes) != arenaLenBefore {
		t.Fatalf("expected arena reuse via free-list, arena grew from %d to %d", arenaLenBefore, len(fr.nodes))
	}
}

// TestEvalMatrix_LazySentinels verifies fresh cells report NaN for both
// eval and best until explicitly written.
func TestEvalMatrix_LazySentinels(t *testing.T) {
	cells := make([]evalMatch, 6)
	m := newEvalMatrix(3, 2, cells)

	c := m.at(1, 1)
	if !math.IsNaN(c.eval) || !math.IsNaN(c.best) {
		t.Fatalf("expected unevaluated cell to have NaN eval/best, got %+v", c)
	}

	c.eval = 0.5
	c.best = 0.5
	if m.at(1, 1).eval != 0.5 {
		t.Fatalf("expected in-place mutation via at() to stick")
	}
}

// TestEngine_FrontierBoundedUnderPruning verifies the frontier does not
// grow without bound across steps for a well-matched search, since
// pruning should keep it small relative to W*H.
func TestEngine_FrontierBoundedUnderPruning(t *testing.T) {
	const n = 30
	e, err := newEngine(n, n, MatcherFunc(func(i, j int) float64 {
		if i == j {
			return 1
		}

		return 0
	}), func() Options { o := DefaultOptions(); o.BranchThreshold = 1.0; return o }())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	maxLen := 0
	for {
		more, serr := e.Step()
		if serr != nil {
			t.Fatalf("unexpected step error: %v", serr)
		}
		if e.FrontierLen() > maxLen {
			maxLen = e.FrontierLen()
		}
		if !more {
			break
		}
	}

	if maxLen >= n*n {
		t.Fatalf("expected pruning to keep frontier well below W*H=%d, saw max %d", n*n, maxLen)
	}
}
