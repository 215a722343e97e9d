package flcs

// candidateNode is one entry of the intrusive doubly-linked candidate
// list. Candidates live in an arena-backed slice and are addressed by
// index rather than pointer, since idiomatic Go avoids raw node
// ownership and a slice-of-structs with a free-list gives the same
// O(1) insert/unlink/recycle a pointer-based list would.
type candidateNode struct {
	i, j  int
	score float64
	prev  int
	next  int
}

// Reserved arena indices for the sentinel head/tail nodes. Both are
// always present in the arena and never recycled.
const (
	headIdx = 0
	tailIdx = 1
	nilIdx  = -1
)

// frontier is the candidate queue: a doubly-linked list in descending
// metric order, backed by an index-addressed arena with a free-list for
// recycled nodes.
type frontier struct {
	w, h     int
	nodes    []candidateNode
	freeHead int // index of first free node, or nilIdx
	size     int // number of live (non-sentinel) nodes
}

func newFrontier(w, h int, alloc Allocator) *frontier {
	nodes := alloc.AllocCandidates(2)
	nodes[headIdx] = candidateNode{prev: nilIdx, next: tailIdx}
	nodes[tailIdx] = candidateNode{prev: headIdx, next: nilIdx}

	return &frontier{
		w:        w,
		h:        h,
		nodes:    nodes,
		freeHead: nilIdx,
	}
}

// upperBound returns the optimistic ceiling on any completion of a
// candidate (i,j,score): at most min(W-i, H-j) further diagonal steps
// remain, each contributing at most 1.
func (fr *frontier) upperBound(i, j int, score float64) float64 {
	remW := fr.w - i
	remH := fr.h - j
	rem := remW
	if remH < rem {
		rem = remH
	}

	return score + float64(rem)
}

// metric is the queue ordering key: upperBound plus a small tie-breaker
// favoring candidates already further along an actual path. It is a
// monotone function of upperBound, which is what makes tail-pruning in
// prune() correct; changing this formula without replacing prune()'s
// tail-walk with a full sweep would silently drop still-viable
// candidates.
// TODO: if metric() ever stops being monotone in upperBound, prune
// must walk the whole list instead of stopping at the first survivor.
func (fr *frontier) metric(i, j int, score float64) float64 {
	return fr.upperBound(i, j, score) + 0.01*score
}

// newNode takes a node from the free-list if available, else grows the
// arena by one slot. It never shrinks the arena and never discards a
// node once allocated; a node is either live in the queue or sitting on
// the free-list, never both. The allocator is consulted once up front
// for the arena's initial backing storage (newFrontier); growth beyond
// that follows ordinary Go slice-growth amortization via append, which
// is never returned to the allocator individually — only the whole
// arena is, on Engine.Release.
func (fr *frontier) newNode() int {
	if fr.freeHead != nilIdx {
		idx := fr.freeHead
		fr.freeHead = fr.nodes[idx].next

		return idx
	}

	idx := len(fr.nodes)
	fr.nodes = append(fr.nodes, candidateNode{})

	return idx
}

// linkAfter splices node idx into the list immediately after anchor.
func (fr *frontier) linkAfter(anchor, idx int) {
	n := &fr.nodes[idx]
	a := &fr.nodes[anchor]
	n.prev = anchor
	n.next = a.next
	fr.nodes[a.next].prev = idx
	a.next = idx
}

// unlink removes node idx from the list without recycling it.
func (fr *frontier) unlink(idx int) {
	n := fr.nodes[idx]
	fr.nodes[n.prev].next = n.next
	fr.nodes[n.next].prev = n.prev
}

// recycle moves node idx onto the free-list.
func (fr *frontier) recycle(idx int) {
	fr.nodes[idx].next = fr.freeHead
	fr.freeHead = idx
}

// insert splices a new candidate (i,j,score) into the queue in
// descending order of metric(). New candidates with equal metric are
// inserted after existing equal-metric entries (stable tail insertion
// at the first strictly-lower position).
func (fr *frontier) insert(i, j int, score float64) {
	idx := fr.newNode()
	fr.nodes[idx].i = i
	fr.nodes[idx].j = j
	fr.nodes[idx].score = score

	m := fr.metric(i, j, score)

	// Walk from head forward until we find the first node whose metric
	// is strictly lower than m; insert immediately before it.
	cur := fr.nodes[headIdx].next
	for cur != tailIdx {
		cn := fr.nodes[cur]
		if fr.metric(cn.i, cn.j, cn.score) < m {
			break
		}
		cur = cn.next
	}
	fr.linkAfter(fr.nodes[cur].prev, idx)
	fr.size++
}

// pop removes and returns the head (highest-metric) candidate. The
// caller must check empty() first; calling pop on an empty frontier is
// a programmer error.
func (fr *frontier) pop() (i, j int, score float64) {
	idx := fr.nodes[headIdx].next
	n := fr.nodes[idx]
	fr.unlink(idx)
	fr.recycle(idx)
	fr.size--

	return n.i, n.j, n.score
}

// prune walks from the tail (lowest-metric end) inward, unlinking every
// node whose upperBound is below minScore, stopping at the first node
// that still satisfies upperBound >= minScore. This is correct only
// because metric() is a monotone function of upperBound.
func (fr *frontier) prune(minScore float64) {
	cur := fr.nodes[tailIdx].prev
	for cur != headIdx {
		cn := fr.nodes[cur]
		if fr.upperBound(cn.i, cn.j, cn.score) >= minScore {
			break
		}
		prev := cn.prev
		fr.unlink(cur)
		fr.recycle(cur)
		fr.size--
		cur = prev
	}
}

// empty reports whether the frontier has no live candidates.
func (fr *frontier) empty() bool {
	return fr.nodes[headIdx].next == tailIdx
}

// len reports the number of live candidates, for diagnostics (see
// Engine.FrontierLen).
func (fr *frontier) len() int {
	return fr.size
}
