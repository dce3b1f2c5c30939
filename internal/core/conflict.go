package core

// idom walks the immediate-dominator chains of a and b (as recorded in
// varState.Dominator/Order) until they meet, using the standard
// two-pointer climb: repeatedly step whichever of a, b has the larger
// trail order up to its own dominator, until they coincide. Both
// variables must already have their Order and Dominator fields
// populated by the current analysis pass.
func (s *State) idom(a, b Var) Var {
	for a != b {
		for s.vars[a].Order < s.vars[b].Order {
			b = s.vars[b].Dominator
		}
		for s.vars[b].Order < s.vars[a].Order {
			a = s.vars[a].Dominator
		}
	}
	return a
}

// computeUIP labels every variable assigned at the current decision
// level with its position on the trail (Order) and its immediate
// dominator (Dominator) within the current level's implication subgraph,
// treating the conflicting clause itself as a synthetic final vertex one
// past the end of the trail. It returns the dominator of that synthetic
// vertex, which is exactly the first unique implication point: the
// single current-level variable through which every path from the
// decision to the conflict passes. The conflicting clause's dominator is
// computed from the explicit conflictRecord rather than by pushing a
// synthetic entry onto the trail itself.
func (s *State) computeUIP(confl ClauseRef) Var {
	lo := s.currentLevelStart()
	suffix := s.tr.literals[lo:]

	for i, lit := range suffix {
		v := lit.Var()
		s.vars[v].Order = i
		s.vars[v].Dominator = VarUndef
	}
	decisionVar := suffix[0].Var()
	s.vars[decisionVar].Dominator = decisionVar

	updateDominator := func(v Var, reason ClauseRef) {
		for _, p := range s.alloc.get(reason).Lits {
			pv := p.Var()
			if pv == v || s.vars[pv].Level != s.level {
				continue
			}
			if s.vars[v].Dominator == VarUndef {
				s.vars[v].Dominator = pv
			} else {
				s.vars[v].Dominator = s.idom(pv, s.vars[v].Dominator)
			}
		}
	}

	for i := 1; i < len(suffix); i++ {
		v := suffix[i].Var()
		updateDominator(v, s.vars[v].ImpliedBy)
	}

	contradictionDominator := VarUndef
	for _, p := range s.alloc.get(confl).Lits {
		pv := p.Var()
		if s.vars[pv].Level != s.level {
			continue
		}
		if contradictionDominator == VarUndef {
			contradictionDominator = pv
		} else {
			contradictionDominator = s.idom(pv, contradictionDominator)
		}
	}
	return contradictionDominator
}

// BuildAssertingClause performs dominator-based 1-UIP conflict analysis
// over the clause confl that UnitResolution just found falsified,
// producing a new asserting clause: the negation of the UIP, plus one
// literal per variable assigned before the current level that a
// dominance-cut ancestor of the UIP depends on. The cut uses a
// transitive-ancestor dominance test (idom(uip, v.Dominator) == uip)
// rather than a direct equality check, which is what lets it collect
// literals from every reason clause between the UIP and the conflict,
// not only those it dominates directly.
func (s *State) BuildAssertingClause(confl ClauseRef) *Clause {
	uip := s.computeUIP(confl)
	lo := s.currentLevelStart()
	suffix := s.tr.literals[lo:]
	n := len(suffix)

	var touched []Var
	mark := func(v Var) {
		if !s.seen[v] {
			s.seen[v] = true
			touched = append(touched, v)
		}
	}
	defer func() {
		for _, v := range touched {
			s.seen[v] = false
		}
	}()

	uipIndex := s.vars[uip].Order
	for pos := n; pos > uipIndex; pos-- {
		var reason ClauseRef
		var dom Var
		if pos == n {
			reason, dom = confl, uip
		} else {
			v := suffix[pos].Var()
			reason, dom = s.vars[v].ImpliedBy, s.vars[v].Dominator
		}
		if s.idom(uip, dom) == uip {
			for _, p := range s.alloc.get(reason).Lits {
				pv := p.Var()
				if s.vars[pv].Level < s.level {
					mark(pv)
				}
			}
		}
	}

	negUIP := NewLit(uip, s.vars[uip].Value)

	if len(touched) == 0 {
		c := s.alloc.get(s.alloc.allocateLearned([]Lit{negUIP}))
		c.AssertionLevel = 1
		return c
	}

	lits := make([]Lit, 1, len(touched)+1)
	lits[0] = negUIP
	assertionLevel := 1
	for i := 0; i < lo; i++ {
		v := s.tr.literals[i].Var()
		if !s.seen[v] {
			continue
		}
		lits = append(lits, NewLit(v, s.vars[v].Value))
		if lvl := s.vars[v].Level; lvl > assertionLevel {
			assertionLevel = lvl
		}
	}

	c := s.alloc.get(s.alloc.allocateLearned(lits))
	c.AssertionLevel = assertionLevel
	return c
}
