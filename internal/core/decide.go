package core

// Decide raises the decision level, forces lit true as this level's
// decision (no reason clause) and runs unit resolution to a fixed point.
// On success it returns (nil, true). On conflict it performs dominator
// analysis immediately and returns the resulting asserting clause; the
// caller (the driver's search loop) is expected to back-jump to the
// clause's assertion level and assert it. If New already flagged the
// state unsatisfiable (an empty clause, or a contradiction found by
// construction-time propagation), Decide returns the false clause
// without mutating any state; once unsatisfiable, no further operation
// on the state is meaningful.
func (s *State) Decide(lit Lit) (*Clause, bool) {
	if !s.ok {
		return s.falseClause, false
	}

	s.level++
	s.journal.pushBoundary()
	s.conflict = nil

	if !s.setLiteralTrue(lit, ClauseRefNone) {
		return s.buildAssertingClauseOrDirect(lit), false
	}
	if !s.UnitResolution() {
		return s.buildAssertingClauseOrDirect(lit), false
	}
	return nil, true
}

// buildAssertingClauseOrDirect handles a decision directly contradicting
// a variable already fixed at an earlier level, with no reason clause
// and nothing yet on the current level's trail to run dominator analysis
// over — a case the driver should avoid by checking the variable's value
// before deciding, but one the core must still resolve cleanly rather
// than crash on. There the asserting clause is simply the
// singleton reasserting the variable's existing value, at the level it
// was originally fixed — full 1-UIP analysis has nothing to analyze.
// Every other conflict, including one on the decision literal itself
// once BCP is involved, goes through the ordinary dominator walk.
func (s *State) buildAssertingClauseOrDirect(decided Lit) *Clause {
	cf := s.conflict
	if cf.clause == ClauseRefNone && s.currentLevelStart() == s.tr.len() {
		v := decided.Var()
		existing := NewLit(v, !s.vars[v].Value)
		c := s.alloc.get(s.alloc.allocateLearned([]Lit{existing}))
		c.AssertionLevel = s.vars[v].Level
		return c
	}
	return s.BuildAssertingClause(cf.clause)
}

// UndoDecide reverses the most recent Decide: it undoes unit resolution
// at the current level, then drops back to the previous decision level.
// onFree, if non-nil, is called for every variable unassigned in the
// process — the caller's hook for reinserting them into a branching
// heuristic's candidate set, since a variable can only be re-decided
// once it is both unassigned and back under consideration.
func (s *State) UndoDecide(onFree func(Var)) {
	s.UndoUnitResolution(onFree)
	s.level--
}

// UndoUnitResolution unassigns every variable set at the current level —
// by decision or by propagation — and un-marks every clause the
// journal recorded as subsumed since the level's boundary. It leaves the
// decision level unchanged; callers that are undoing a whole decision
// (not just its propagation) must also decrement the level themselves,
// which UndoDecide does. onFree, if non-nil, is called for every
// variable unassigned.
func (s *State) UndoUnitResolution(onFree func(Var)) {
	level := s.level
	s.tr.popWhile(
		func(l Lit) bool { return s.vars[l.Var()].Level == level },
		func(l Lit) {
			v := l.Var()
			s.vars[v].clear()
			if onFree != nil {
				onFree(v)
			}
		},
	)
	s.journal.popToBoundary(func(cr ClauseRef) {
		s.alloc.get(cr).IsSubsumed = false
	})
	s.conflict = nil
}

// AtAssertionLevel reports whether c's recorded assertion level equals
// the state's current decision level — the search loop's signal that it
// has backtracked far enough for AssertClause to make c unit.
func (s *State) AtAssertionLevel(c *Clause) bool {
	return c.AssertionLevel == s.level
}

// AssertClause installs an asserting clause c that has just become unit
// at the current level: it registers c's occurrence and watch-list
// entries and forces its single current-level literal true, then runs
// unit resolution to a fixed point. On conflict it either returns a
// further asserting clause (if the current level is still above the
// root level 1, where dominator analysis remains meaningful) or the
// false clause, signalling unsatisfiability.
func (s *State) AssertClause(c *Clause) (*Clause, bool) {
	for _, l := range c.Lits {
		s.lits.addLearned(l, c.id)
	}
	s.lits.addWatch(c.WatchA(), c.id)
	if wb, ok := c.WatchB(); ok {
		s.lits.addWatch(wb, c.id)
	}

	s.conflict = nil
	passed := s.setLiteralTrue(c.WatchA(), c.id)
	if passed {
		passed = s.UnitResolution()
	}
	if passed {
		return nil, true
	}
	if s.level > 1 {
		return s.BuildAssertingClause(s.conflict.clause), false
	}
	return s.falseClause, false
}
