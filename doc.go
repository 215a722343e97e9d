// Package lvlath is the root of a small family of sequence-alignment
// engines: DTW for minimizing warp distance between numeric time
// series, and FLCS for maximizing fuzzy longest-common-subsequence
// match between arbitrary indexed sequences.
//
// 🚀 What's here?
//
//	  • dtw/  — Dynamic Time Warping: minimal cumulative cost to align
//	            two sequences under an optional Sakoe–Chiba window
//	  • flcs/ — Fuzzy Longest Common Subsequence: branch-and-bound
//	            search for the monotone index-pair path that maximizes
//	            total match score over a caller-supplied [0,1] matcher
//
// ✨ Why two engines instead of one?
//
//	DTW and FLCS answer different questions about the same shape of
//	input. DTW forces every element of both sequences to participate
//	and charges a penalty for stretching the time axis; it answers
//	"how much does it cost to make these line up end to end?". FLCS
//	instead searches for the best-matching subsequence and is free to
//	skip elements entirely; it answers "what's the longest run of
//	elements that agree closely?".
//
// Both packages are pure Go with no I/O and no persisted state — they
// are computational kernels meant to be embedded by a caller, not
// services in their own right.
//
//	go get github.com/flcs-engine/lvlath/dtw
//	go get github.com/flcs-engine/lvlath/flcs
package lvlath
