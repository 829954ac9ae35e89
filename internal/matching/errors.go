package matching

import "fmt"

// InputError reports a precondition the caller failed to meet: requesting
// matches without a resume analysis, or against an empty job list. Analysis
// itself never produces one; degenerate data resolves to neutral scores.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid match input: %s", e.Message)
}
