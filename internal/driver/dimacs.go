// Package driver supplies everything around the CDCL core itself:
// DIMACS parsing, the VSIDS branching heuristic, the Luby restart
// policy, LBD-based clause-quality bookkeeping and the search loop that
// drives internal/core's public decide/undo/assert API to a verdict.
package driver

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Problem is a parsed CNF instance: the declared variable count and the
// clause list in the signed-integer form internal/core.New expects.
type Problem struct {
	NumVars int
	Clauses [][]int
}

// ParseDIMACS reads a DIMACS CNF file from in: "c" lines are comments, a
// "p cnf <vars> <clauses>" header declares the problem size, and every
// other non-blank line is a clause of space-separated literals
// terminated by a trailing 0.
func ParseDIMACS(in *bufio.Scanner) (*Problem, error) {
	p := &Problem{}
	declaredClauses := -1
	seenHeader := false

	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p cnf") {
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, fmt.Errorf("driver: malformed problem line %q", line)
			}
			nv, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("driver: bad variable count in %q: %w", line, err)
			}
			nc, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("driver: bad clause count in %q: %w", line, err)
			}
			p.NumVars, declaredClauses, seenHeader = nv, nc, true
			continue
		}
		if !seenHeader {
			return nil, fmt.Errorf("driver: clause data before problem line: %q", line)
		}
		clause, err := parseClauseLine(line)
		if err != nil {
			return nil, err
		}
		p.Clauses = append(p.Clauses, clause)
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	if declaredClauses >= 0 && declaredClauses != len(p.Clauses) {
		return nil, fmt.Errorf("driver: declared %d clauses, parsed %d", declaredClauses, len(p.Clauses))
	}
	return p, nil
}

func parseClauseLine(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return nil, fmt.Errorf("driver: clause not terminated by 0: %q", line)
	}
	lits := make([]int, 0, len(fields)-1)
	for _, f := range fields[:len(fields)-1] {
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("driver: bad literal %q: %w", f, err)
		}
		if x == 0 {
			return nil, fmt.Errorf("driver: literal 0 inside clause: %q", line)
		}
		lits = append(lits, x)
	}
	return lits, nil
}
