// Package flcs computes the Fuzzy Longest Common Subsequence (FLCS)
// between two index ranges [0,W) and [0,H) under an opaque, caller-supplied
// match function f(i,j) -> [0,1].
//
// 🚀 What is FLCS?
//
//	Classical LCS finds the longest common subsequence of two discrete
//	alphabets using binary equality. FLCS generalizes this to continuous
//	match weights: instead of asking "do these elements match?", it asks
//	"how well do these elements match?" and searches for the
//	monotonically-increasing index path (i1,j1),(i2,j2),... that
//	maximizes the sum of match weights along it. It's widely useful for:
//	  • fuzzy string/record alignment where equality is too strict
//	  • aligning tokenized sequences under a learned similarity function
//	  • any two-sequence matching problem where "match" is a gradient,
//	    not a boolean
//
// ✨ Key features:
//   - lazy evaluation: the match function is called at most once per
//     (i,j) cell, and in practice far fewer than W*H times
//   - branch-and-bound pruning: an admissible upper bound discards
//     frontier candidates that cannot beat the current best path
//   - tunable exactness: BranchThreshold trades optimality for speed;
//     at 1.0 the search is exact
//   - pluggable storage: an Allocator interface lets callers control how
//     matrix cells and candidate nodes are backed
//
// ⚙️ Usage:
//
//	import "github.com/flcs-engine/lvlath/flcs"
//
//	matcher := flcs.MatcherFunc(func(i, j int) float64 {
//	    if a[i] == b[j] {
//	        return 1.0
//	    }
//	    return 0.0
//	})
//	engine, err := flcs.NewEngine(len(a), len(b), matcher,
//	    flcs.WithBranchThreshold(1.0))
//	if err != nil {
//	    // handle invalid dimensions / nil matcher / bad threshold
//	}
//	result, err := engine.Run()
//	engine.Release()
//
// Performance:
//
//   - Time:   O(W*H) worst case; near-linear in practice for
//     well-matched sequences, since the engine evaluates a cell at most
//     once and prunes dominated candidates eagerly.
//   - Memory: O(W*H) for the match matrix. A memory-optimal variant
//     that discards the matrix and keeps only enough state to
//     reconstruct the path is possible but not implemented here.
//
// See flcs_test.go and example_test.go for worked scenarios, and
// DESIGN.md at the module root for this package's design rationale.
package flcs
