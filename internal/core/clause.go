package core

import "math"

// ClauseRef is an index-based handle to a Clause. Original clauses
// occupy [0, origCount) in the allocator's dense array; learned clauses
// are appended afterwards, in the order they were asserted, giving them
// monotonically increasing ids starting at origCount.
type ClauseRef uint32

// ClauseRefNone marks the absence of a clause (a decision has no implier).
const ClauseRefNone ClauseRef = math.MaxUint32

// Clause is an original or learned clause. Its literal order never
// changes once built; watchA/watchB name which two of its literals are
// currently watched by value, not by position, rather than the common
// MiniSat trick of swapping watched literals into fixed slots. A unit
// clause (size 1, or a learned unit clause) has no second watch, tracked
// by hasWatchB rather than aliasing watchB onto watchA — aliasing would
// double-register the clause on one watch list.
type Clause struct {
	id             ClauseRef
	Lits           []Lit
	Learnt         bool
	IsSubsumed     bool
	AssertionLevel int
	watchA         Lit
	watchB         Lit
	hasWatchB      bool
}

func newClause(id ClauseRef, lits []Lit, learnt bool) *Clause {
	c := &Clause{
		id:     id,
		Lits:   append([]Lit(nil), lits...),
		Learnt: learnt,
		watchA: lits[0],
	}
	if len(lits) >= 2 {
		c.watchB = lits[len(lits)-1]
		c.hasWatchB = true
	}
	return c
}

// ID returns the clause's identity, stable for its lifetime.
func (c *Clause) ID() ClauseRef { return c.id }

// Size returns the number of literals in the clause.
func (c *Clause) Size() int { return len(c.Lits) }

// At returns the i-th literal of the clause.
func (c *Clause) At(i int) Lit { return c.Lits[i] }

// WatchA returns the clause's first watched literal. Every non-empty
// clause has one.
func (c *Clause) WatchA() Lit { return c.watchA }

// WatchB returns the clause's second watched literal, if any. A unit
// clause (size 1) has none.
func (c *Clause) WatchB() (Lit, bool) {
	if !c.hasWatchB {
		return LitUndef, false
	}
	return c.watchB, true
}

// setWatchA / setWatchB repoint a watch at a newly chosen literal during
// BCP's watch-replacement step.
func (c *Clause) setWatchA(l Lit) { c.watchA = l }
func (c *Clause) setWatchB(l Lit) { c.watchB = l }

// allocator owns every Clause in the solver: original clauses installed at
// construction, and learned clauses appended by AssertClause. It never
// frees a clause early — a learned clause must outlive any individual
// decision level, freed only at teardown — so this is a plain growing
// arena, not a free-list.
type allocator struct {
	clauses   []*Clause
	origCount int
}

func newAllocator() *allocator {
	return &allocator{}
}

func (a *allocator) allocateOriginal(lits []Lit) ClauseRef {
	ref := ClauseRef(len(a.clauses))
	a.clauses = append(a.clauses, newClause(ref, lits, false))
	a.origCount = len(a.clauses)
	return ref
}

func (a *allocator) allocateLearned(lits []Lit) ClauseRef {
	ref := ClauseRef(len(a.clauses))
	c := newClause(ref, lits, true)
	a.clauses = append(a.clauses, c)
	return ref
}

func (a *allocator) get(ref ClauseRef) *Clause {
	return a.clauses[ref]
}

func (a *allocator) learnedCount() int {
	return len(a.clauses) - a.origCount
}
