package driver

import "github.com/basaltsat/gocdcl/internal/core"

// Result is the outcome of a completed search.
type Result int

const (
	Unknown Result = iota
	Satisfiable
	Unsatisfiable
)

// Solver drives internal/core's decide/undo/assert protocol with a
// VSIDS branching heuristic and a Luby restart schedule. It never
// inspects or mutates core's internal state directly — every interaction
// goes through core.State's exported methods.
type Solver struct {
	state   *core.State
	order   *varOrder
	quality *clauseQuality
	Stats   Statistics

	restartFirst float64
	restartInc   float64

	varDecay float64
}

// NewSolver builds a Solver around a freshly constructed core.State for
// problem p. If construction-time propagation already found a
// contradiction, the returned Solver's first Solve call reports
// Unsatisfiable immediately.
func NewSolver(p *Problem) *Solver {
	const varDecay = 0.95
	return &Solver{
		state:        core.New(p.NumVars, p.Clauses),
		order:        newVarOrder(p.NumVars, varDecay),
		quality:      newClauseQuality(),
		restartFirst: 100,
		restartInc:   2,
		varDecay:     varDecay,
	}
}

// State exposes the underlying core state, e.g. for the model to be read
// back once Solve reports Satisfiable.
func (s *Solver) State() *core.State { return s.state }

// Solve runs the Luby-scheduled restart loop around search until a
// definitive verdict is reached.
func (s *Solver) Solve() Result {
	if !s.state.OK() {
		return Unsatisfiable
	}
	round := 0
	for {
		budget := int(luby(s.restartInc, round) * s.restartFirst)
		result := s.search(budget)
		if result != Unknown {
			return result
		}
		s.Stats.RestartCount++
		round++
	}
}

// search runs decisions and conflict-driven learning until either a
// full assignment is found (Satisfiable), the root level itself
// conflicts (Unsatisfiable), or the conflict budget is exhausted and a
// restart is due (Unknown).
func (s *Solver) search(conflictBudget int) Result {
	conflicts := 0
	for {
		lit, ok := s.pickBranchLiteral()
		if !ok {
			return Satisfiable
		}

		s.Stats.DecisionCount++
		learned, decided := s.state.Decide(lit)
		if decided {
			continue
		}

		s.Stats.ConflictCount++
		conflicts++
		s.order.decayActivity()

		if learned == s.state.FalseClause() {
			return Unsatisfiable
		}

		pending := learned
		for {
			s.bumpActivities(pending)
			for !s.state.AtAssertionLevel(pending) && s.state.CurrentLevel() > 1 {
				s.state.UndoDecide(s.order.insertIfAbsent)
			}
			asserted := pending
			next, ok := s.state.AssertClause(pending)
			s.quality.record(s.state, asserted)
			if ok {
				break
			}
			if next == s.state.FalseClause() {
				return Unsatisfiable
			}
			s.Stats.ConflictCount++
			pending = next
		}

		if conflictBudget >= 0 && conflicts > conflictBudget {
			for s.state.CurrentLevel() > 1 {
				s.state.UndoDecide(s.order.insertIfAbsent)
			}
			return Unknown
		}
	}
}

// bumpActivities raises the VSIDS activity of every variable mentioned
// in a freshly learned clause, the standard conflict-side heuristic
// update. core tracks no clause activity of its own, so the bump lands
// directly on variables rather than on the clause.
func (s *Solver) bumpActivities(c *core.Clause) {
	for i := 0; i < c.Size(); i++ {
		s.order.bump(c.At(i).Var())
	}
}

// pickBranchLiteral pops the highest-activity unassigned variable from
// the decision heap and returns its default-polarity literal (negative
// by default). It reports ok=false once every variable is assigned, the
// search's success condition.
func (s *Solver) pickBranchLiteral() (core.Lit, bool) {
	for !s.order.empty() {
		v := s.order.removeMax()
		if s.state.IsAssigned(v) {
			continue
		}
		return core.NewLit(v, true), true
	}
	return core.LitUndef, false
}
