package analyzer

import "fmt"

// AnalyzeError is the one error taxon the Analyzer raises (spec.md §4.3):
// a type or scoping violation detected during a single top-to-bottom pass.
type AnalyzeError struct {
	Message string
}

func (e *AnalyzeError) Error() string {
	return fmt.Sprintf("analyze error: %s", e.Message)
}

func newAnalyzeError(format string, args ...interface{}) *AnalyzeError {
	return &AnalyzeError{Message: fmt.Sprintf(format, args...)}
}
