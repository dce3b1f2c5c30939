package core

// varState is a variable's decision record: level 0 means unassigned,
// Value is only meaningful once Level > 0, ImpliedBy is the clause that
// forced the variable (ClauseRefNone for a decision), and Dominator/Order
// are scratch fields valid only during conflict analysis — reset at the
// start of each analysis, treated as uninitialized otherwise.
type varState struct {
	Level     int
	Value     bool
	ImpliedBy ClauseRef
	Dominator Var
	Order     int
}

func (s *varState) assigned() bool { return s.Level > 0 }

func (s *varState) clear() {
	s.Level = 0
	s.Value = false
	s.ImpliedBy = ClauseRefNone
	s.Dominator = VarUndef
	s.Order = 0
}
