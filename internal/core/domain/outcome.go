package domain

// Outcome is the result of one target of a batch run. Err is nil on success.
type Outcome struct {
	Instance Instance
	Result   Result
	Err      error
}

// Failed reports whether the target failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// CountFailed returns how many outcomes carry an error.
func CountFailed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}
