package driver

import "github.com/basaltsat/gocdcl/internal/core"

// lbd computes the literal block distance of a freshly learned clause:
// the number of distinct decision levels its literals span. The core
// exposes no notion of clause quality at all, so this is purely
// informational bookkeeping the driver keeps for reporting and for
// choosing which learned clauses a future deletion policy would prefer
// to keep.
func lbd(s *core.State, c *core.Clause) int {
	levels := map[int]bool{}
	for i := 0; i < c.Size(); i++ {
		levels[s.Level(c.At(i).Var())] = true
	}
	return len(levels)
}

// clauseQuality tracks the LBD score the driver computed for each
// learned clause, indexed by ClauseRef. The core never deletes clauses,
// so this map only grows; a real clause-deletion policy (explicitly out
// of scope) would consult it to pick eviction candidates.
type clauseQuality struct {
	scores map[core.ClauseRef]int
}

func newClauseQuality() *clauseQuality {
	return &clauseQuality{scores: make(map[core.ClauseRef]int)}
}

func (q *clauseQuality) record(s *core.State, c *core.Clause) {
	q.scores[c.ID()] = lbd(s, c)
}
