package flcs_test

import (
	"fmt"

	"github.com/flcs-engine/lvlath/flcs"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewEngine_tokenAlignment
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Align two tokenized sentences under a fuzzy word-similarity matcher
//	that returns 1.0 for identical tokens and 0 otherwise. This is the
//	degenerate, exact case (BranchThreshold=1.0) where FLCS reduces to
//	classical LCS over tokens instead of characters.
//
// Use case:
//
//	Finding the longest common subsequence of words between two
//	near-duplicate documents.
//
// Complexity: O(W*H) worst case, near-linear for well-matched inputs.
func ExampleNewEngine_tokenAlignment() {
	a := []string{"the", "quick", "brown", "fox", "jumps"}
	b := []string{"the", "lazy", "brown", "dog", "jumps"}

	matcher := flcs.MatcherFunc(func(i, j int) float64 {
		if a[i] == b[j] {
			return 1.0
		}

		return 0.0
	})

	engine, err := flcs.NewEngine(len(a), len(b), matcher, flcs.WithBranchThreshold(1.0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer engine.Release()

	result, err := engine.Run()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("totalMatch=%.0f\n", result.TotalMatch)
	for _, m := range result.Matches {
		fmt.Printf("%s == %s\n", a[m.I], b[m.J])
	}
	// Output:
	// totalMatch=3
	// the == the
	// brown == brown
	// jumps == jumps
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewEngine_fuzzyScores
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two numeric sequences compared with a similarity function that
//	decays with absolute difference, producing continuous match weights
//	in [0,1] rather than a binary equality test.
//
// Use case:
//
//	Fuzzy alignment of noisy numeric readings where exact equality
//	rarely holds but near-matches should still be rewarded.
func ExampleNewEngine_fuzzyScores() {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.1, 2.9}

	sim := func(x, y float64) float64 {
		d := x - y
		if d < 0 {
			d = -d
		}
		v := 1.0 - d
		if v < 0 {
			return 0
		}

		return v
	}

	matcher := flcs.MatcherFunc(func(i, j int) float64 { return sim(a[i], b[j]) })
	engine, err := flcs.NewEngine(len(a), len(b), matcher)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer engine.Release()

	result, err := engine.Run()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("matches=%d\n", result.LCSLength())
	// Output:
	// matches=2
}
