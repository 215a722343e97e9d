package flcs

import "math"

// Engine drives a single Fuzzy Longest Common Subsequence search over a
// W*H match matrix evaluated lazily through matcher. An Engine is not
// safe for concurrent use from multiple goroutines; distinct Engine
// instances are fully independent.
type Engine struct {
	w, h    int
	matcher Matcher
	opts    Options

	matrix   *evalMatrix
	frontier *frontier

	bestMatch    float64
	bestI, bestJ int
	haveBest     bool

	numSteps int
	numEvals int

	released bool
}

// NewEngine constructs an Engine ready to search a W*H match matrix
// using matcher. A single seed candidate (0,0,score=0) is inserted into
// the frontier so the first Step call has somewhere to start from.
func NewEngine(w, h int, matcher Matcher, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newEngine(w, h, matcher, cfg)
}

// NewEngineWithOptions is the struct-literal counterpart to NewEngine,
// mirroring dtw.DTW(a, b, opts *Options): pass nil for defaults.
func NewEngineWithOptions(w, h int, matcher Matcher, opts *Options) (*Engine, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	return newEngine(w, h, matcher, cfg)
}

func newEngine(w, h int, matcher Matcher, cfg Options) (*Engine, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if matcher == nil {
		return nil, ErrNilMatcher
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	alloc := cfg.Allocator
	if alloc == nil {
		alloc = defaultAllocator
	}

	e := &Engine{
		w:       w,
		h:       h,
		matcher: matcher,
		opts:    cfg,
	}
	e.initStorage(alloc)

	return e, nil
}

func (e *Engine) initStorage(alloc Allocator) {
	cells := alloc.AllocCells(e.w * e.h)
	e.matrix = newEvalMatrix(e.w, e.h, cells)
	e.frontier = newFrontier(e.w, e.h, alloc)
	e.bestMatch = 0
	e.haveBest = false
	e.numSteps = 0
	e.numEvals = 0
	e.opts.Allocator = alloc

	// Seed the search at the origin with zero accumulated score.
	e.frontier.insert(0, 0, 0)
}

// Reset reconfigures the engine for a fresh run over a new W*H matrix
// and matcher, reusing the Engine value and its allocator instead of
// allocating a new Engine. The matrix and frontier storage for the new
// run are requested afresh from the allocator; the previous run's
// slices are not handed back to it.
func (e *Engine) Reset(w, h int, matcher Matcher) error {
	if e.released {
		return ErrAlreadyReleased
	}
	if w <= 0 || h <= 0 {
		return ErrInvalidDimensions
	}
	if matcher == nil {
		return ErrNilMatcher
	}

	e.w, e.h = w, h
	e.matcher = matcher
	e.initStorage(e.opts.Allocator)

	return nil
}

// Width returns W, the length of the first sequence.
func (e *Engine) Width() int { return e.w }

// Height returns H, the length of the second sequence.
func (e *Engine) Height() int { return e.h }

// NumSteps returns the number of completed Step calls.
func (e *Engine) NumSteps() int { return e.numSteps }

// NumEvals returns the number of distinct matcher evaluations performed.
func (e *Engine) NumEvals() int { return e.numEvals }

// FrontierLen reports the current number of live candidates in the
// frontier, for diagnostics and tests.
func (e *Engine) FrontierLen() int {
	return e.frontier.len()
}

// Release returns the engine's matrix and frontier storage to its
// allocator. After Release, the Engine must not be used again; Reset
// on a released Engine returns ErrAlreadyReleased.
func (e *Engine) Release() {
	if e.released {
		return
	}
	e.opts.Allocator.Release(e.matrix.cells, e.frontier.nodes)
	e.released = true
}

// Step performs one frontier expansion. It returns (false, nil) iff
// the frontier is empty, and a non-nil error if the matcher returned a
// value outside [0,1].
func (e *Engine) Step() (bool, error) {
	if e.frontier.empty() {
		return false, nil
	}

	i, j, score := e.frontier.pop()
	e.numSteps++

	m := e.matrix.at(i, j)

	// Pre-eval dominance check: any completion through (i,j) is already
	// dominated by an earlier visit, since the to-be-added eval is at
	// most 1.
	if !math.IsNaN(m.best) && m.best >= score+1 {
		return true, nil
	}

	if math.IsNaN(m.eval) {
		val := e.matcher.Match(i, j)
		if val < 0 || val > 1 {
			return true, ErrMatcherOutOfRange
		}
		m.eval = val
		e.numEvals++
	}

	newScore := score + m.eval
	if math.IsNaN(m.best) || newScore > m.best {
		m.best = newScore

		if m.eval > 0 {
			e.addCandidate(newScore, i, j, 1, 1)
			e.frontier.prune(newScore)
		}
		if m.eval < e.opts.BranchThreshold {
			e.addCandidate(score, i, j, 1, 0)
			e.addCandidate(score, i, j, 0, 1)
		}
	}

	return true, nil
}

// addCandidate computes the successor of (i,j) reached by (di,dj). If
// the successor would leave the matrix, the path is terminal: bestMatch
// is updated if score improves on it. Otherwise the successor is
// inserted into the frontier only if its upper bound still exceeds
// bestMatch.
func (e *Engine) addCandidate(score float64, i, j, di, dj int) {
	ni, nj := i+di, j+dj
	if ni >= e.w || nj >= e.h {
		if !e.haveBest || score > e.bestMatch {
			e.bestMatch = score
			e.bestI, e.bestJ = i, j
			e.haveBest = true
		}

		return
	}

	if e.frontier.upperBound(ni, nj, score) > e.bestMatch {
		e.frontier.insert(ni, nj, score)
	}
}

// Run drives the engine to completion and returns the best path found.
func (e *Engine) Run() (Result, error) {
	for {
		more, err := e.Step()
		if err != nil {
			return Result{}, err
		}
		if !more {
			break
		}
	}

	return e.reconstruct(), nil
}

// reconstruct walks the matrix back from the best terminal cell to the
// origin, recovering the path in forward order.
func (e *Engine) reconstruct() Result {
	if !e.haveBest || e.bestMatch <= 0 {
		return Result{TotalMatch: 0, Matches: []Match{}}
	}

	maxLen := e.w
	if e.h < maxLen {
		maxLen = e.h
	}
	buf := make([]Match, maxLen)
	n := 0 // number of entries written, growing from the back

	i, j := e.bestI, e.bestJ

	// Edge case: the terminal cell itself may be a match point.
	termEval := e.matrix.at(i, j).eval
	if !math.IsNaN(termEval) && termEval > 0 {
		n++
		buf[maxLen-n] = Match{I: i, J: j, Value: termEval}
	}

	// arrival is the best score with which a path entered (i,j), i.e. the
	// cell's best minus its own eval (NaN if no path reached it). The
	// back-walk compares arrival scores, since skip moves carry the
	// pre-eval score and a diagonal move carries the predecessor's best.
	arrival := func(i, j int) float64 {
		b := e.matrix.bestAt(i, j)
		if math.IsNaN(b) {
			return b
		}

		return b - e.matrix.at(i, j).eval
	}

	for i > 0 && j > 0 {
		cur := arrival(i, j)
		left := arrival(i-1, j)
		up := arrival(i, j-1)

		if !math.IsNaN(left) && left == cur {
			i--
			continue
		}
		if !math.IsNaN(up) && up == cur {
			j--
			continue
		}

		diag := e.matrix.at(i-1, j-1)
		diagArr := arrival(i-1, j-1)
		if !math.IsNaN(diagArr) && diagArr < cur &&
			!math.IsNaN(diag.eval) && math.Abs(diag.eval-(cur-diagArr)) <= reconstructEps {
			n++
			buf[maxLen-n] = Match{I: i - 1, J: j - 1, Value: diag.eval}
			i, j = i-1, j-1
			continue
		}

		// No recognized predecessor: terminate the walk here. This can
		// only happen at a boundary that the loop condition above
		// should have already excluded; guard defensively.
		break
	}

	return Result{
		TotalMatch: e.bestMatch,
		Matches:    append([]Match{}, buf[maxLen-n:]...),
	}
}
