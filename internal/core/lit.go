// Package core implements the CDCL solver core: the trail, the
// watched-literal BCP engine, dominator-based 1-UIP conflict analysis and
// the decide/undo/assert protocol. It has no notion of a branching
// heuristic, a restart policy or a clause-deletion policy; those live in
// internal/driver.
package core

// Var identifies a problem variable. Variables are 1-indexed, 1..n, as
// required by the external DIMACS-style input format; Var(0) is never a
// real variable and is used as the zero value / "none" sentinel.
type Var int32

// VarUndef marks the absence of a variable, e.g. an unset dominator.
const VarUndef Var = 0

// Lit identifies a literal: a variable together with its polarity. Lit is
// a dense array index, not a signed integer — literal index 2*v is the
// positive occurrence of v, 2*v+1 is the negative occurrence, giving
// every variable two adjacent literal slots.
type Lit int32

// LitUndef marks the absence of a literal.
const LitUndef Lit = -1

// NewLit builds the literal for variable v with the given polarity.
func NewLit(v Var, negative bool) Lit {
	l := Lit(2 * v)
	if negative {
		l++
	}
	return l
}

// FromInt converts an external DIMACS-style literal (a non-zero signed
// integer, sign encodes polarity) to the internal dense encoding.
func FromInt(x int) Lit {
	if x == 0 {
		panic("core: literal 0 is not a valid DIMACS literal")
	}
	v := x
	neg := false
	if v < 0 {
		neg = true
		v = -v
	}
	return NewLit(Var(v), neg)
}

// Var returns the variable underlying l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Negative reports whether l is the negated occurrence of its variable.
func (l Lit) Negative() bool {
	return l&1 == 1
}

// Negate returns the literal's complement, ¬l.
func (l Lit) Negate() Lit {
	return l ^ 1
}

// Int converts l back to the external signed-integer representation.
func (l Lit) Int() int {
	v := int(l.Var())
	if l.Negative() {
		return -v
	}
	return v
}
