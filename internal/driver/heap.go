package driver

import (
	"fmt"

	"github.com/basaltsat/gocdcl/internal/core"
)

// varOrder is a VSIDS-style priority heap over variables: a binary heap
// ordered by activity, keyed so the most active variable (highest
// activity) sits at the root, with an index array giving O(log n)
// decrease/increase after a bump.
type varOrder struct {
	data     []core.Var
	indices  []int
	activity []float64
	incr     float64
	decay    float64
}

func newVarOrder(numVars int, decay float64) *varOrder {
	h := &varOrder{
		indices:  make([]int, numVars+1),
		activity: make([]float64, numVars+1),
		incr:     1.0,
		decay:    decay,
	}
	for i := range h.indices {
		h.indices[i] = -1
	}
	for v := 1; v <= numVars; v++ {
		h.pushBack(core.Var(v))
	}
	return h
}

func (h *varOrder) less(i, j int) bool { return h.activity[i] > h.activity[j] }

func (h *varOrder) size() int  { return len(h.data) }
func (h *varOrder) empty() bool { return len(h.data) == 0 }

func (h *varOrder) inHeap(x core.Var) bool {
	return int(x) < len(h.indices) && h.indices[x] >= 0
}

func (h *varOrder) pushBack(x core.Var) {
	if h.inHeap(x) {
		panic(fmt.Sprintf("driver: variable %d already in decision heap", x))
	}
	h.data = append(h.data, x)
	h.indices[x] = len(h.data) - 1
	h.percolateUp(h.indices[x])
}

// insertIfAbsent restores x to the heap on backtrack. x may already be
// present: pickBranchLiteral only ever removes a decided variable, so a
// variable that was merely propagated, then freed by an undo, was never
// taken out of the heap in the first place.
func (h *varOrder) insertIfAbsent(x core.Var) {
	if !h.inHeap(x) {
		h.pushBack(x)
	}
}

func (h *varOrder) removeMax() core.Var {
	x := h.data[0]
	last := h.size() - 1
	h.data[0] = h.data[last]
	h.indices[h.data[0]] = 0
	h.indices[x] = -1
	h.data = h.data[:last]
	if h.size() > 0 {
		h.percolateDown(0)
	}
	return x
}

// bump raises v's activity on conflict, rescaling every activity (and
// the increment) if it grows too large, then re-heapifies v.
func (h *varOrder) bump(v core.Var) {
	h.activity[v] += h.incr
	if h.activity[v] > 1e100 {
		for i := range h.activity {
			h.activity[i] *= 1e-100
		}
		h.incr *= 1e-100
	}
	if h.inHeap(v) {
		h.percolateUp(h.indices[v])
	}
}

func (h *varOrder) decayActivity() { h.incr /= h.decay }

func (h *varOrder) percolateUp(i int) {
	x := h.data[i]
	for i != 0 {
		p := (i - 1) >> 1
		if !h.less(int(x), int(h.data[p])) {
			break
		}
		h.data[i] = h.data[p]
		h.indices[h.data[p]] = i
		i = p
	}
	h.data[i] = x
	h.indices[x] = i
}

func (h *varOrder) percolateDown(i int) {
	x := h.data[i]
	for {
		l, r := 2*i+1, 2*i+2
		best := i
		bestVal := x
		if l < h.size() && h.less(int(h.data[l]), int(bestVal)) {
			best, bestVal = l, h.data[l]
		}
		if r < h.size() && h.less(int(h.data[r]), int(bestVal)) {
			best, bestVal = r, h.data[r]
		}
		if best == i {
			break
		}
		h.data[i] = h.data[best]
		h.indices[h.data[i]] = i
		i = best
	}
	h.data[i] = x
	h.indices[x] = i
}
