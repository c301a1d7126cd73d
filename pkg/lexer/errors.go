package lexer

import "fmt"

// FatalError is a position-tagged lexing failure: an unexpected
// leading character, an invalid operator, unbalanced parentheses, or
// an unterminated comment or character literal. It formats exactly as
// the original front-end's compiler_error:
// "<message> on line <L>, col <C> in file <F>".
type FatalError struct {
	Pos     Position
	Message string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s on line %d, col %d in file %s", e.Message, e.Pos.Line, e.Pos.Col, e.Pos.Filename)
}

// Diagnostic is a non-fatal warning raised against a CompileContext.
// Warnings never alter control flow; they only accumulate for the
// caller to report.
type Diagnostic struct {
	Pos     Position
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s on line %d, col %d in file %s", d.Message, d.Pos.Line, d.Pos.Col, d.Pos.Filename)
}

// Warn records a non-fatal diagnostic against the compile context.
func (cc *CompileContext) Warn(pos Position, format string, args ...interface{}) {
	cc.Diagnostics = append(cc.Diagnostics, Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...)})
}
