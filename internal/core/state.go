package core

// conflictRecord stands in for a synthetic "contradiction" pseudo-variable:
// rather than appending a dummy trail entry, a failed propagation or
// decide records which clause went unsatisfiable and at what level. Its
// dominator is computed as part of BuildAssertingClause and never stored
// back on the trail.
type conflictRecord struct {
	clause ClauseRef
	level  int
}

// State is the complete mutable state of one CDCL search: the variable
// table, the clause store, the watch/occurrence lists, the trail and the
// subsumption journal. It is owned by exactly one control flow — there
// is no locking and no concurrent access support.
type State struct {
	numVars int
	vars    []varState // 1-indexed; vars[0] is an unused sentinel slot
	alloc   *allocator
	lits    *literalTable
	tr      *trail
	journal *subsumptionJournal
	level   int

	ok       bool // false once level-1 propagation has found a contradiction
	conflict *conflictRecord

	falseClause *Clause

	seen []bool // scratch mark bitmap for conflict analysis, indexed by Var
}

// New builds a State from a parsed CNF: nVars variables and, for each
// clause, its literals in DIMACS integer form (non-zero, sign encodes
// polarity). It installs the variable table, the clause store and the
// occurrence lists, sets each original clause's initial watches to its
// first and last literal, and runs unit resolution over the clauses that
// are unit on arrival. If that initial propagation finds a contradiction,
// the State is still returned, but flagged: every subsequent Decide call
// returns the false clause immediately.
func New(nVars int, clauses [][]int) *State {
	s := &State{
		numVars:     nVars,
		vars:        make([]varState, nVars+1),
		alloc:       newAllocator(),
		lits:        newLiteralTable(nVars),
		tr:          newTrail(),
		journal:     newSubsumptionJournal(),
		level:       1,
		ok:          true,
		falseClause: &Clause{Lits: nil, AssertionLevel: 0},
		seen:        make([]bool, nVars+1),
	}
	for v := range s.vars {
		s.vars[v].ImpliedBy = ClauseRefNone
	}

	for _, raw := range clauses {
		if len(raw) == 0 {
			s.ok = false
			continue
		}
		lits := make([]Lit, len(raw))
		for i, x := range raw {
			lits[i] = FromInt(x)
		}
		cr := s.alloc.allocateOriginal(lits)
		c := s.alloc.get(cr)
		for _, l := range c.Lits {
			s.lits.addAppearsIn(l, cr)
		}
		s.lits.addWatch(c.WatchA(), cr)
		if wb, ok := c.WatchB(); ok {
			s.lits.addWatch(wb, cr)
		}
		if c.Size() == 1 {
			if !s.setLiteralTrue(c.WatchA(), cr) {
				s.ok = false
			}
		}
	}

	if s.ok && !s.UnitResolution() {
		s.ok = false
	}
	return s
}

// NumVars returns the number of problem variables.
func (s *State) NumVars() int { return s.numVars }

// NumClauses returns the number of original clauses.
func (s *State) NumClauses() int { return s.alloc.origCount }

// LearnedClauseCount returns the number of clauses AssertClause has
// installed so far.
func (s *State) LearnedClauseCount() int { return s.alloc.learnedCount() }

// IndexToVar / VarToIndex / PosLiteral / NegLiteral / ClauseByRef are the
// cheap accessor half of the public query surface.
func (s *State) IndexToVar(i int) Var { return Var(i) }
func (s *State) VarToIndex(v Var) int { return int(v) }

func (s *State) PosLiteral(v Var) Lit { return NewLit(v, false) }
func (s *State) NegLiteral(v Var) Lit { return NewLit(v, true) }

func (s *State) ClauseByRef(cr ClauseRef) *Clause { return s.alloc.get(cr) }

func (s *State) FalseClause() *Clause { return s.falseClause }

// IsAssigned reports whether v currently has a value (by decision or
// propagation).
func (s *State) IsAssigned(v Var) bool { return s.vars[v].assigned() }

// Level returns the decision level at which v was assigned, or 0 if
// unassigned.
func (s *State) Level(v Var) int { return s.vars[v].Level }

// Reason returns the clause that forced v, or ClauseRefNone for a
// decision or an unassigned variable.
func (s *State) Reason(v Var) ClauseRef { return s.vars[v].ImpliedBy }

// Value returns v's current truth value. Only meaningful when
// IsAssigned(v) is true.
func (s *State) Value(v Var) bool { return s.vars[v].Value }

// OK reports whether the state is still known satisfiable-or-unknown;
// once false, no further operation on it is meaningful.
func (s *State) OK() bool { return s.ok }

// CurrentLevel returns the solver's current decision level (>= 1).
func (s *State) CurrentLevel() int { return s.level }

// litTrue / litFalse / litUndef implement the "is this literal currently
// true" query and its complement: a literal is true exactly when its
// sign matches the variable's assigned value.
func (s *State) litTrue(l Lit) bool {
	vs := &s.vars[l.Var()]
	return vs.assigned() && vs.Value == !l.Negative()
}

func (s *State) litFalse(l Lit) bool {
	vs := &s.vars[l.Var()]
	return vs.assigned() && vs.Value != !l.Negative()
}

func (s *State) litUndef(l Lit) bool {
	return !s.vars[l.Var()].assigned()
}

// LitTrue is the exported form of litTrue, part of the public query
// surface.
func (s *State) LitTrue(l Lit) bool { return s.litTrue(l) }

// Irrelevant reports whether every original clause mentioning v is
// currently subsumed. Only original clauses are consulted — a variable
// that appears solely in subsumed learned clauses is not, by itself,
// made irrelevant.
func (s *State) Irrelevant(v Var) bool {
	for _, l := range [2]Lit{NewLit(v, false), NewLit(v, true)} {
		for _, cr := range s.lits.appearsIn(l) {
			if !s.alloc.get(cr).IsSubsumed {
				return false
			}
		}
	}
	return true
}

// subsumeClause marks cr subsumed and journals the change, idempotently.
func (s *State) subsumeClause(cr ClauseRef) {
	c := s.alloc.get(cr)
	if c.IsSubsumed {
		return
	}
	c.IsSubsumed = true
	s.journal.pushClause(cr)
}

// setLiteralTrue is the core assignment primitive: if l's
// variable is unassigned, it is forced true at the current level with
// implier as its reason and queued for propagation. If already assigned
// consistently with l, implier (if any) is subsumed — it is already
// satisfied by this literal. If assigned to the opposite value, a
// conflict is recorded and false is returned.
func (s *State) setLiteralTrue(l Lit, implier ClauseRef) bool {
	v := l.Var()
	vs := &s.vars[v]
	if !vs.assigned() {
		vs.Level = s.level
		vs.Value = !l.Negative()
		vs.ImpliedBy = implier
		s.tr.push(l)
		return true
	}
	if s.litTrue(l) {
		if implier != ClauseRefNone {
			s.subsumeClause(implier)
		}
		return true
	}
	s.recordConflict(implier)
	return false
}

func (s *State) recordConflict(cr ClauseRef) {
	s.conflict = &conflictRecord{clause: cr, level: s.level}
}

// currentLevelStart returns the index into the trail where the current
// level's assignments begin — the decision literal is always at this
// position, since decision levels occupy a contiguous trail suffix.
func (s *State) currentLevelStart() int {
	lo := s.tr.len()
	for lo > 0 && s.vars[s.tr.at(lo-1).Var()].Level == s.level {
		lo--
	}
	return lo
}

