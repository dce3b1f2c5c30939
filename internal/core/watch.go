package core

// literalRecord is the per-literal bookkeeping kept for each literal: the
// clauses it watches (mutated continuously by BCP), the original clauses
// it appears in (for the irrelevant/occurrence queries), and the learned
// clauses it appears in (for subsumption bookkeeping). Represented as
// three plain slices of ClauseRef rather than intrusive
// doubly-linked list nodes.
type literalRecord struct {
	watchList []ClauseRef
	appearsIn []ClauseRef
	learned   []ClauseRef
}

// literalTable holds one literalRecord per literal, dense-indexed by Lit.
type literalTable struct {
	records []literalRecord
}

func newLiteralTable(numVars int) *literalTable {
	return &literalTable{records: make([]literalRecord, 2*(numVars+1))}
}

func (t *literalTable) watchList(l Lit) []ClauseRef { return t.records[l].watchList }

func (t *literalTable) addWatch(l Lit, cr ClauseRef) {
	t.records[l].watchList = append(t.records[l].watchList, cr)
}

func (t *literalTable) addAppearsIn(l Lit, cr ClauseRef) {
	t.records[l].appearsIn = append(t.records[l].appearsIn, cr)
}

func (t *literalTable) appearsIn(l Lit) []ClauseRef { return t.records[l].appearsIn }

func (t *literalTable) addLearned(l Lit, cr ClauseRef) {
	t.records[l].learned = append(t.records[l].learned, cr)
}

func (t *literalTable) learnedList(l Lit) []ClauseRef { return t.records[l].learned }
