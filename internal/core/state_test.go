package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kr/pretty"
)

func lit(x int) Lit { return FromInt(x) }

// snapshot captures every field the undo round-trip property must
// preserve: assignments, watches, subsumption flags, level and the
// learned-clause set.
type snapshot struct {
	Level     int
	Vars      []varState
	Trail     []Lit
	Watches   [][]ClauseRef
	Subsumed  []bool
	NumClause int
}

func snapshotState(s *State) snapshot {
	watches := make([][]ClauseRef, len(s.lits.records))
	for i, r := range s.lits.records {
		watches[i] = append([]ClauseRef(nil), r.watchList...)
	}
	subsumed := make([]bool, len(s.alloc.clauses))
	for i, c := range s.alloc.clauses {
		subsumed[i] = c.IsSubsumed
	}
	vars := make([]varState, len(s.vars))
	copy(vars, s.vars)
	return snapshot{
		Level:     s.level,
		Vars:      vars,
		Trail:     append([]Lit(nil), s.tr.literals...),
		Watches:   watches,
		Subsumed:  subsumed,
		NumClause: len(s.alloc.clauses),
	}
}

func snapshotDiff(t *testing.T, before, after snapshot) string {
	t.Helper()
	diff := cmp.Diff(before, after, cmpopts.EquateEmpty())
	if diff != "" {
		t.Logf("before: %# v", pretty.Formatter(before))
		t.Logf("after:  %# v", pretty.Formatter(after))
	}
	return diff
}

// {{1,2},{-1,2},{1,-2},{-1,-2}}. decide(1) -> BCP forces 2 via {-1,2},
// conflict on {-1,-2}. UIP is variable 1, learned {-1}, assertion level 1.
func TestDecideConflictLearnsNegatedDecision(t *testing.T) {
	s := New(2, [][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}})
	if !s.ok {
		t.Fatalf("construction unexpectedly unsat")
	}

	learned, ok := s.Decide(lit(1))
	if ok {
		t.Fatalf("expected a conflict on deciding 1")
	}
	if learned.Size() != 1 || learned.At(0) != lit(-1) {
		t.Fatalf("expected learned clause {-1}, got %v", learned.Lits)
	}
	if learned.AssertionLevel != 1 {
		t.Fatalf("expected assertion level 1, got %d", learned.AssertionLevel)
	}

	s.UndoDecide(nil)
	if s.level != 1 {
		t.Fatalf("expected level 1 after undo, got %d", s.level)
	}

	final, ok := s.AssertClause(learned)
	if ok {
		t.Fatalf("expected asserting {-1} to eventually conflict")
	}
	if final != s.falseClause {
		t.Fatalf("expected false clause, got %v", final)
	}
}

// {{1,2,3}}. decide(-1), decide(-2) -> BCP forces 3, no conflict,
// irrelevant(v3) is true since the sole clause is now subsumed.
func TestIrrelevantOnceSoleClauseSubsumed(t *testing.T) {
	s := New(3, [][]int{{1, 2, 3}})

	if _, ok := s.Decide(lit(-1)); !ok {
		t.Fatalf("unexpected conflict on deciding -1")
	}
	if _, ok := s.Decide(lit(-2)); !ok {
		t.Fatalf("unexpected conflict on deciding -2")
	}
	if !s.litTrue(lit(3)) {
		t.Fatalf("expected BCP to force 3 true")
	}
	if !s.Irrelevant(Var(3)) {
		t.Fatalf("expected variable 3 to be irrelevant once its only clause is subsumed")
	}
}

// {{1},{-1,2}}. Construction alone propagates 1 then 2, both level 1
// with non-null impliers, and installs no learned clauses.
func TestConstructionPropagatesUnitClauses(t *testing.T) {
	s := New(2, [][]int{{1}, {-1, 2}})
	if !s.ok {
		t.Fatalf("construction unexpectedly unsat")
	}
	if s.tr.len() != 2 {
		t.Fatalf("expected 2 trail entries, got %d", s.tr.len())
	}
	if s.tr.at(0) != lit(1) || s.tr.at(1) != lit(2) {
		t.Fatalf("unexpected trail order: %v", s.tr.literals)
	}
	for _, v := range []Var{1, 2} {
		if s.Level(v) != 1 {
			t.Fatalf("expected variable %d at level 1, got %d", v, s.Level(v))
		}
		if s.Reason(v) == ClauseRefNone {
			t.Fatalf("expected variable %d to have a non-null implier", v)
		}
	}
	if s.LearnedClauseCount() != 0 {
		t.Fatalf("expected no learned clauses, got %d", s.LearnedClauseCount())
	}
}

// A single unit clause {1} followed by deciding -1 conflicts
// immediately; the learned clause is {1}, asserting at level 1, the
// level where 1 was fixed.
func TestDecideContradictingFixedUnitClause(t *testing.T) {
	s := New(1, [][]int{{1}})
	if !s.ok {
		t.Fatalf("construction unexpectedly unsat")
	}

	learned, ok := s.Decide(lit(-1))
	if ok {
		t.Fatalf("expected a conflict on deciding -1")
	}
	if learned.Size() != 1 || learned.At(0) != lit(1) {
		t.Fatalf("expected learned clause {1}, got %v", learned.Lits)
	}
	if learned.AssertionLevel != 1 {
		t.Fatalf("expected assertion level 1, got %d", learned.AssertionLevel)
	}
}

// {{1,2},{1,3},{-2,-3,4},{1,-4}}. decide(-1) derives 2, 3 and -4 by
// BCP and conflicts on {-2,-3,4}; the 1-UIP is the decision variable
// itself.
func TestMultiStepBCPConflict(t *testing.T) {
	s := New(4, [][]int{{1, 2}, {1, 3}, {-2, -3, 4}, {1, -4}})

	learned, ok := s.Decide(lit(-1))
	if ok {
		t.Fatalf("expected a conflict on deciding -1")
	}
	if learned.Size() != 1 || learned.At(0) != lit(1) {
		t.Fatalf("expected learned clause {1}, got %v", learned.Lits)
	}
	if learned.AssertionLevel != 1 {
		t.Fatalf("expected assertion level 1, got %d", learned.AssertionLevel)
	}
}

// After a conflict is analyzed but the learned clause is never asserted,
// UndoDecide must restore the exact pre-decide state.
func TestUndoDecideRestoresExactState(t *testing.T) {
	s := New(4, [][]int{{1, 2}, {1, 3}, {-2, -3, 4}, {1, -4}})
	before := snapshotState(s)

	if _, ok := s.Decide(lit(-1)); ok {
		t.Fatalf("expected a conflict on deciding -1")
	}
	s.UndoDecide(nil)

	after := snapshotState(s)
	if diff := snapshotDiff(t, before, after); diff != "" {
		t.Fatalf("state mismatch after undo (-before +after):\n%s", diff)
	}
}

// Unit resolution is idempotent absent an intervening decision.
func TestUnitResolutionIdempotent(t *testing.T) {
	s := New(2, [][]int{{1}, {-1, 2}})
	before := snapshotState(s)
	if !s.UnitResolution() {
		t.Fatalf("unexpected conflict on redundant unit resolution")
	}
	after := snapshotState(s)
	if diff := snapshotDiff(t, before, after); diff != "" {
		t.Fatalf("state changed on redundant unit resolution (-before +after):\n%s", diff)
	}
}

// Every non-subsumed clause of size >= 2 has two distinct watches, and
// each appears on its literal's watch list exactly once.
func TestWatchInvariant(t *testing.T) {
	s := New(4, [][]int{{1, 2}, {1, 3}, {-2, -3, 4}, {-1, -4}})
	for _, c := range s.alloc.clauses {
		if c.IsSubsumed || c.Size() < 2 {
			continue
		}
		wa := c.WatchA()
		wb, ok := c.WatchB()
		if !ok {
			t.Fatalf("clause %d of size %d missing second watch", c.id, c.Size())
		}
		if wa == wb {
			t.Fatalf("clause %d has identical watches", c.id)
		}
		for _, w := range [2]Lit{wa, wb} {
			count := 0
			for _, cr := range s.lits.watchList(w) {
				if cr == c.id {
					count++
				}
			}
			if count != 1 {
				t.Fatalf("clause %d expected exactly once on watch list of literal %d, found %d", c.id, w, count)
			}
		}
	}
}

// Every trail entry with a non-null implier has its literal present in
// the implier, every other literal of the implier false, and falsified
// strictly earlier on the trail.
func TestImplicationCorrectness(t *testing.T) {
	s := New(4, [][]int{{1, 2}, {1, 3}, {-2, -3, 4}, {1, -4}})
	s.Decide(lit(-1))

	posOnTrail := make(map[Var]int)
	for i, l := range s.tr.literals {
		posOnTrail[l.Var()] = i
	}

	for i, l := range s.tr.literals {
		cr := s.vars[l.Var()].ImpliedBy
		if cr == ClauseRefNone {
			continue
		}
		c := s.alloc.get(cr)
		found := false
		for _, cl := range c.Lits {
			if cl == l {
				found = true
				continue
			}
			if !s.litFalse(cl) {
				t.Fatalf("implier of trail entry %d has a non-false other literal %d", i, cl)
			}
			if pos, ok := posOnTrail[cl.Var()]; !ok || pos >= i {
				t.Fatalf("implier of trail entry %d falsified no earlier than the entry itself", i)
			}
		}
		if !found {
			t.Fatalf("trail entry %d's literal not present in its implier", i)
		}
	}
}
