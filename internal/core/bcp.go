package core

// UnitResolution drains the propagation work-list to a fixed point. It
// returns false the moment any literal's propagation finds a falsified
// clause, leaving the conflicting clause available via
// the state's internal conflict record for the caller to consume through
// BuildAssertingClause. On success (true), every clause implied by the
// current trail has been subsumed and every clause's watch invariant
// holds again.
func (s *State) UnitResolution() bool {
	for {
		lit, ok := s.tr.nextPropagation()
		if !ok {
			s.tr.clearPropagation()
			return true
		}
		if !s.propagateLiteral(lit) {
			s.tr.clearPropagation()
			return false
		}
	}
}

// propagateLiteral handles the consequences of lit having just become
// true: every clause containing lit is now satisfied and can be
// subsumed, and every clause watching ¬lit (now false) must either find
// a new literal to watch, propagate its other watch, or report a
// conflict. The subsumption pass runs over both the original-clause
// occurrence list and the learned-clause occurrence list before the
// watch-list scan begins.
func (s *State) propagateLiteral(lit Lit) bool {
	for _, cr := range s.lits.appearsIn(lit) {
		s.subsumeClause(cr)
	}
	for _, cr := range s.lits.learnedList(lit) {
		s.subsumeClause(cr)
	}

	falsified := lit.Negate()
	ws := s.lits.watchList(falsified)

	keep := ws[:0]
	conflict := false
	for i := 0; i < len(ws); i++ {
		cr := ws[i]
		c := s.alloc.get(cr)

		if c.IsSubsumed {
			keep = append(keep, cr)
			continue
		}

		repl, subsumedDuringScan := s.findUnwatchedLiteral(c)
		if subsumedDuringScan {
			keep = append(keep, cr)
			continue
		}
		if repl != LitUndef {
			if c.WatchA() == falsified {
				c.setWatchA(repl)
			} else {
				c.setWatchB(repl)
			}
			s.lits.addWatch(repl, cr)
			continue
		}

		// No replacement: the clause's other watch decides the outcome.
		keep = append(keep, cr)
		var other Lit
		if wb, hasWB := c.WatchB(); hasWB {
			if c.WatchA() == falsified {
				other = wb
			} else {
				other = c.WatchA()
			}
		} else {
			other = LitUndef
		}

		switch {
		case other == LitUndef:
			s.recordConflict(cr)
			conflict = true
		case s.litTrue(other):
			s.subsumeClause(cr)
		case s.litFalse(other):
			s.recordConflict(cr)
			conflict = true
		default:
			if !s.setLiteralTrue(other, cr) {
				conflict = true
			}
		}

		if conflict {
			keep = append(keep, ws[i+1:]...)
			break
		}
	}

	s.lits.records[falsified].watchList = keep
	return !conflict
}

// findUnwatchedLiteral scans c for a literal that can replace one of its
// current watches: an unassigned literal other than the two already
// watched. If it instead finds a literal that is already true, c is
// satisfied regardless of its watches and is marked subsumed on the
// spot.
func (s *State) findUnwatchedLiteral(c *Clause) (repl Lit, subsumed bool) {
	wa := c.WatchA()
	wb, hasWB := c.WatchB()
	for _, l := range c.Lits {
		if s.vars[l.Var()].assigned() {
			if s.litTrue(l) {
				s.subsumeClause(c.id)
				return LitUndef, true
			}
			continue
		}
		if l == wa || (hasWB && l == wb) {
			continue
		}
		return l, false
	}
	return LitUndef, false
}
