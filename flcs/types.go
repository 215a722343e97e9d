package flcs

import "errors"

// Sentinel errors returned by NewEngine, Step, Run and Reset.
var (
	// ErrInvalidDimensions indicates W or H was not positive.
	ErrInvalidDimensions = errors.New("flcs: width and height must be positive")
	// ErrNilMatcher indicates a nil Matcher was supplied.
	ErrNilMatcher = errors.New("flcs: matcher must not be nil")
	// ErrBadThreshold indicates BranchThreshold > 1.0.
	ErrBadThreshold = errors.New("flcs: branch threshold must be <= 1.0")
	// ErrMatcherOutOfRange indicates the matcher returned a value outside [0,1].
	ErrMatcherOutOfRange = errors.New("flcs: matcher returned a value outside [0,1]")
	// ErrAlreadyReleased indicates the engine's storage has already been returned to its allocator.
	ErrAlreadyReleased = errors.New("flcs: engine has been released")
)

// defaultBranchThreshold is the eval level above which step suppresses the
// skip-row / skip-column successors. See Options.BranchThreshold.
const defaultBranchThreshold = 0.95

// reconstructEps is the absolute floating tolerance used when comparing
// candidate predecessor costs during path reconstruction.
const reconstructEps = 1e-3

// Options configures an Engine. The zero value is not valid on its own;
// use DefaultOptions to obtain a populated Options and override fields
// as needed, mirroring dtw.Options/dtw.DefaultOptions.
type Options struct {
	// BranchThreshold declares a match "good enough" that the engine skips
	// emitting right/down successors for it. Must be <= 1.0. At 1.0 the
	// search is exact; below 1.0 it trades optimality for speed.
	BranchThreshold float64

	// Allocator supplies backing storage for the match matrix and the
	// candidate frontier. If nil, a pooled default allocator is used.
	Allocator Allocator
}

// DefaultOptions returns an Options struct pre-populated with safe
// defaults:
//
//	BranchThreshold: 0.95
//	Allocator:       nil (pooled default)
func DefaultOptions() Options {
	return Options{
		BranchThreshold: defaultBranchThreshold,
		Allocator:       nil,
	}
}

// Validate checks that Options holds a valid combination of fields.
func (o *Options) Validate() error {
	if o.BranchThreshold > 1.0 {
		return ErrBadThreshold
	}

	return nil
}

// Option mutates an Options value starting from DefaultOptions; functional-options
// form offered alongside the struct form, mirroring dijkstra.Option.
type Option func(*Options)

// WithBranchThreshold overrides the default branch threshold.
func WithBranchThreshold(t float64) Option {
	return func(o *Options) { o.BranchThreshold = t }
}

// WithAllocator overrides the default pooled allocator.
func WithAllocator(a Allocator) Option {
	return func(o *Options) { o.Allocator = a }
}

// Match is one point on a recovered path: index i in the first sequence,
// index j in the second sequence, and the match value at that cell.
type Match struct {
	I, J  int
	Value float64
}

// Result is the outcome of a completed Engine run.
type Result struct {
	// TotalMatch is the accumulated score of the best path found.
	TotalMatch float64
	// Matches is the forward-ordered sequence of path points, each with
	// strictly increasing I and J and Value in (0,1].
	Matches []Match
}

// LCSLength returns the number of points on the recovered path, i.e. the
// length of the (fuzzy) longest common subsequence found.
func (r Result) LCSLength() int {
	return len(r.Matches)
}

// Matcher evaluates the match weight between index i of the first
// sequence and index j of the second sequence. Implementations must be
// pure with respect to (i,j) within a single Engine run and return
// values in [0,1]; the engine calls Match at most once per distinct
// (i,j) pair.
type Matcher interface {
	Match(i, j int) float64
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(i, j int) float64

// Match calls f(i, j).
func (f MatcherFunc) Match(i, j int) float64 { return f(i, j) }
