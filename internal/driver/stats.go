package driver

// Statistics holds the run counters cmd/gocdcl reports at the end of a
// run.
type Statistics struct {
	DecisionCount    int
	ConflictCount    int
	PropagationCount int
	RestartCount     int
}
