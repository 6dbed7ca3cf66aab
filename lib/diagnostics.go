package lib

import "fmt"

// Diagnostic is a single reported problem from scanning or parsing.
// The scanner and parser return these instead of printing anywhere, so
// callers decide where diagnostics go.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

func diagnosticAt(tok Token, message string) Diagnostic {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == TokenTypeEOF {
		where = " at end"
	}
	return Diagnostic{Line: tok.Line, Where: where, Message: message}
}

// RuntimeError aborts evaluation of everything after the statement that
// raised it.
type RuntimeError struct {
	Token   Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

func runtimeError(tok Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
