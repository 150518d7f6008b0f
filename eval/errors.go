package eval

import "fmt"

// EvaluateError is the one error taxon the Evaluator raises (spec.md §4.4).
type EvaluateError struct {
	Message string
}

func (e *EvaluateError) Error() string {
	return fmt.Sprintf("evaluate error: %s", e.Message)
}

func newEvalError(format string, args ...interface{}) *EvaluateError {
	return &EvaluateError{Message: fmt.Sprintf(format, args...)}
}
