package lexer

import "fmt"

// LexError is the one error taxon the Lexer raises (spec.md §7). It is
// fatal for the whole Lex call — no recovery, no skipping.
type LexError struct {
	Line    int
	Column  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[%d:%d] lex error: %s", e.Line, e.Column, e.Message)
}

func newLexError(line, column int, format string, args ...interface{}) *LexError {
	return &LexError{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
