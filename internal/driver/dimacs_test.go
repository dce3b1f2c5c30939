package driver

import (
	"bufio"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want *Problem
	}{
		{
			name: "trivial unit clause",
			text: "c a trivial instance\np cnf 1 1\n1 0\n",
			want: &Problem{NumVars: 1, Clauses: [][]int{{1}}},
		},
		{
			name: "multiple clauses with comments interleaved",
			text: "c header\np cnf 4 3\n1 3 -4 0\nc mid-file comment\n4 2 0\n-3 1 0\n",
			want: &Problem{NumVars: 4, Clauses: [][]int{{1, 3, -4}, {4, 2}, {-3, 1}}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDIMACS(bufio.NewScanner(strings.NewReader(tt.text)))
			if err != nil {
				t.Fatalf("ParseDIMACS: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ParseDIMACS mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDIMACSRejectsClauseCountMismatch(t *testing.T) {
	_, err := ParseDIMACS(bufio.NewScanner(strings.NewReader("p cnf 2 2\n1 2 0\n")))
	if err == nil {
		t.Fatalf("expected an error for a declared/parsed clause count mismatch")
	}
}

func TestParseDIMACSRejectsMissingTerminator(t *testing.T) {
	_, err := ParseDIMACS(bufio.NewScanner(strings.NewReader("p cnf 2 1\n1 2\n")))
	if err == nil {
		t.Fatalf("expected an error for a clause missing its trailing 0")
	}
}
