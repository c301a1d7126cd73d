package lexer

import "fmt"

// Context holds the per-run state of a single lexing pass: the
// current position, the expression-nesting counter, the bracket
// capture buffer, the character source being read, and the output
// vector being built. It is created once per compilation and freed
// once Lex returns; it does not own the output vector, ownership of
// which transfers to the CompileContext.
//
// Unlike the original front-end's process-global *lex_process
// pointer, every recognizer method below takes *Context as its
// receiver, so there is no package-level mutable lexer state.
type Context struct {
	pos          Position
	exprDepth    int
	parenBuf     *buffer
	parenCapture *string

	source   Source
	compiler *CompileContext
	tokens   Tokens
}

// NewLexContext creates a lex context bound to the given character
// source, reporting diagnostics against compiler (which may be nil for
// throwaway string-driven lexes that don't need a CompileContext).
func NewLexContext(compiler *CompileContext, source Source) *Context {
	filename := ""
	if compiler != nil {
		filename = compiler.InPath
	}

	return &Context{
		pos:      Position{Line: 1, Col: 1, Filename: filename},
		source:   source,
		compiler: compiler,
	}
}

// LexString lexes text as a standalone input, bound to a string-backed
// character source. It is the entry point synthetic inputs use, such
// as the interactive token-dump REPL.
func LexString(compiler *CompileContext, text string) (*Context, error) {
	buf := newBuffer()
	buf.AppendString(text)

	ctx := NewLexContext(compiler, &stringSource{buf: buf})
	if err := ctx.Lex(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Output returns the token vector accumulated so far.
func (c *Context) Output() Tokens {
	return c.tokens
}

// Lex runs the recognizer to completion, pushing every emitted token
// onto the output vector in order. It returns the first fatal error
// encountered, if any.
func (c *Context) Lex() error {
	for {
		tok, err := c.readNextToken()
		if err != nil {
			return err
		}
		if tok == nil {
			return nil
		}
		c.tokens.Push(*tok)
	}
}

func (c *Context) next() byte {
	b := c.source.Next()
	if b == eof {
		return eof
	}

	if c.inExpression() {
		c.parenBuf.Append(b)
		*c.parenCapture = c.parenBuf.String()
	}

	c.pos.Col++
	if b == '\n' {
		c.pos.Line++
		c.pos.Col = 1
	}

	return b
}

func (c *Context) peek() byte {
	return c.source.Peek()
}

// push returns b to the source so the next peek/next re-sees it.
// Push-back deliberately does not rewind pos or parenBuf, an accepted
// source-level quirk rather than a bug to "fix".
func (c *Context) push(b byte) {
	c.source.Push(b)
}

func (c *Context) newExpression() {
	c.exprDepth++
	if c.exprDepth == 1 {
		c.parenBuf = newBuffer()
		capture := ""
		c.parenCapture = &capture
	}
}

func (c *Context) finishExpression() error {
	c.exprDepth--
	if c.exprDepth < 0 {
		return c.fatalf("unexpected ')'")
	}
	return nil
}

func (c *Context) inExpression() bool {
	return c.exprDepth > 0
}

func (c *Context) lastToken() *Token {
	return c.tokens.Last()
}

func (c *Context) fatalf(format string, args ...interface{}) error {
	return &FatalError{Pos: c.pos, Message: fmt.Sprintf(format, args...)}
}

// finishToken stamps tok with the lexer's current position and, when
// inside a parenthesized expression, the bracket-capture pointer.
// Every token captured during the same expression shares the one
// parenCapture pointer, faithfully reproducing the original front-end's
// buffer_ptr aliasing into a single growing buffer rather than a copy
// per token: a token's BetweenBrackets keeps reflecting bytes appended
// by tokens emitted after it, settling on the full captured span only
// once the expression closes.
func (c *Context) finishToken(tok Token) *Token {
	tok.Pos = c.pos
	if c.inExpression() {
		tok.BetweenBrackets = c.parenCapture
	}
	return &tok
}
