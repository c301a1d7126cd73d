// Package lexer implements the lexical front-end of the kcc-lex
// compiler: it turns a UTF-8 byte source into an ordered sequence of
// Tokens annotated with position, whitespace and bracket-nesting
// context. Parsing, semantic analysis and code generation are out of
// scope; this package only produces the token vector.
package lexer

import "fmt"

// Position records a location inside a source file. Line and Col are
// both 1-based; Col resets to 1 every time a '\n' is consumed.
type Position struct {
	Line     int
	Col      int
	Filename string
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d in file %s", p.Line, p.Col, p.Filename)
}

// Kind is the tag of the Token variant.
type Kind int

const (
	Identifier Kind = iota
	Keyword
	Operator
	Symbol
	Number
	String
	Comment
	Newline
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Keyword:
		return "Keyword"
	case Operator:
		return "Operator"
	case Symbol:
		return "Symbol"
	case Number:
		return "Number"
	case String:
		return "String"
	case Comment:
		return "Comment"
	case Newline:
		return "Newline"
	default:
		return "Unknown"
	}
}

// NumberSubKind classifies a Number token by its trailing suffix
// character: L/l -> Long, f -> Float, d -> Double, absent -> Normal.
type NumberSubKind int

const (
	Normal NumberSubKind = iota
	Long
	Float
	Double
)

func (s NumberSubKind) String() string {
	switch s {
	case Long:
		return "Long"
	case Float:
		return "Float"
	case Double:
		return "Double"
	default:
		return "Normal"
	}
}

// Token is a single lexical unit. Exactly one of the payload fields is
// meaningful, selected by Kind:
//   - Number:                        NumberValue, NumberSub
//   - String/Identifier/Keyword/
//     Operator/Comment:              Text
//   - Symbol:                        SymbolByte
//   - Newline:                       (no payload)
type Token struct {
	Kind Kind

	Text        string
	SymbolByte  byte
	NumberValue uint64
	NumberSub   NumberSubKind

	// Pos is captured once the token's characters have all been
	// consumed, i.e. it is the position just past the token.
	Pos Position

	// Whitespace is set on the *previous* emitted token when a space or
	// tab (not a newline) was consumed before the current one.
	Whitespace bool

	// BetweenBrackets is the captured byte run since the outermost '('
	// on the current nesting stack, non-nil only when the token was
	// emitted at expression depth >= 1.
	BetweenBrackets *string
}

// IsKeyword reports whether t is a Keyword token whose text equals name.
func (t Token) IsKeyword(name string) bool {
	return t.Kind == Keyword && t.Text == name
}

// Tokens is the output vector the lexer appends to in emission order.
type Tokens []Token

// Push appends tok to the end of the vector.
func (ts *Tokens) Push(tok Token) {
	*ts = append(*ts, tok)
}

// Pop discards the last token, if any.
func (ts *Tokens) Pop() {
	if n := len(*ts); n > 0 {
		*ts = (*ts)[:n-1]
	}
}

// Last returns a pointer to the most recently pushed token, or nil if
// the vector is empty. The returned pointer aliases the slice's
// backing array so callers may mutate the token in place (used to set
// Whitespace on the previous token).
func (ts Tokens) Last() *Token {
	if len(ts) == 0 {
		return nil
	}
	return &ts[len(ts)-1]
}
