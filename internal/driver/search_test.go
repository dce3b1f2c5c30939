package driver

import (
	"testing"

	"github.com/basaltsat/gocdcl/internal/core"
)

func TestSolveSatisfiable(t *testing.T) {
	s := NewSolver(&Problem{NumVars: 3, Clauses: [][]int{{1, 2, 3}}})
	if got := s.Solve(); got != Satisfiable {
		t.Fatalf("expected Satisfiable, got %v", got)
	}
	st := s.State()
	found := false
	for v := 1; v <= 3; v++ {
		if st.IsAssigned(core.Var(v)) && st.Value(core.Var(v)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected at least one variable satisfying the sole clause")
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	s := NewSolver(&Problem{NumVars: 2, Clauses: [][]int{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
	}})
	if got := s.Solve(); got != Unsatisfiable {
		t.Fatalf("expected Unsatisfiable, got %v", got)
	}
}

func TestSolveConstructionTimeConflict(t *testing.T) {
	s := NewSolver(&Problem{NumVars: 1, Clauses: [][]int{{1}, {-1}}})
	if got := s.Solve(); got != Unsatisfiable {
		t.Fatalf("expected Unsatisfiable from construction-time propagation, got %v", got)
	}
}
