package lexer

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// readNextToken is the top-level dispatch. It peeks one byte and
// routes to the recognizer responsible for that lead byte, returning
// (nil, nil) only at end of input.
func (c *Context) readNextToken() (*Token, error) {
	lead := c.peek()

	switch {
	case lead == '/':
		return c.comment()
	case lead == eof:
		return nil, nil
	case lead >= '0' && lead <= '9':
		return c.numberToken()
	case isSet(operatorLeadSet, lead):
		return c.operatorOrString()
	case isSet(symbolLeadSet, lead):
		return c.symbolToken()
	case lead == 'b' || lead == 'x':
		return c.specialNumberOrIdentifier()
	case lead == '"':
		return c.stringLiteral('"', '"')
	case lead == '\'':
		return c.charLiteral()
	case lead == ' ' || lead == '\t':
		return c.whitespace()
	case lead == '\n':
		return c.newlineToken()
	case isAlpha(lead) || lead == '_':
		return c.identifierOrKeyword()
	default:
		return nil, c.fatalf("unexpected token")
	}
}

func isSet[T comparable](set map[T]struct{}, v T) bool {
	_, ok := set[v]
	return ok
}

// --- numbers ---

func (c *Context) readDigits() string {
	var buf strings.Builder
	for ch := c.peek(); ch >= '0' && ch <= '9'; ch = c.peek() {
		buf.WriteByte(c.next())
	}
	return buf.String()
}

// finishNumber applies the single-character suffix rule shared by
// decimal, hexadecimal and binary literals.
func (c *Context) finishNumber(value uint64) *Token {
	sub := Normal
	switch c.peek() {
	case 'L', 'l':
		c.next()
		sub = Long
	case 'f':
		c.next()
		sub = Float
	case 'd':
		c.next()
		sub = Double
	}

	return c.finishToken(Token{Kind: Number, NumberValue: value, NumberSub: sub})
}

func (c *Context) numberToken() (*Token, error) {
	digits := c.readDigits()
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid decimal literal %q", digits)
	}
	return c.finishNumber(value), nil
}

// specialNumberOrIdentifier handles a leading 'b' or 'x'. These only
// trigger hex/binary reclassification when the previously emitted
// token is Number(0); that token is popped and replaced. Otherwise
// 'b'/'x' are ordinary identifier/keyword leads.
func (c *Context) specialNumberOrIdentifier() (*Token, error) {
	last := c.lastToken()
	if last == nil || last.Kind != Number || last.NumberValue != 0 {
		return c.identifierOrKeyword()
	}

	c.tokens.Pop()

	switch c.peek() {
	case 'x':
		return c.hexSpecialNumber()
	case 'b':
		return c.binSpecialNumber()
	default:
		return c.identifierOrKeyword()
	}
}

func (c *Context) hexSpecialNumber() (*Token, error) {
	c.next() // skip 'x'

	var buf strings.Builder
	for ch := c.peek(); isHexDigit(ch); ch = c.peek() {
		buf.WriteByte(c.next())
	}

	value, err := strconv.ParseUint(buf.String(), 16, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hexadecimal literal %q", buf.String())
	}
	return c.finishNumber(value), nil
}

func (c *Context) binSpecialNumber() (*Token, error) {
	c.next() // skip 'b'

	digits := c.readDigits()
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' && digits[i] != '1' {
			return nil, c.fatalf("invalid binary string")
		}
	}

	value, err := strconv.ParseUint(digits, 2, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid binary literal %q", digits)
	}
	return c.finishNumber(value), nil
}

// charLiteral reads a character literal, emitted as a Number token
// carrying the decoded byte value.
func (c *Context) charLiteral() (*Token, error) {
	if got := c.next(); got != '\'' {
		return nil, c.fatalf("expected opening quote")
	}

	ch := c.next()

	var value byte
	if ch == '\\' {
		esc := c.next()
		value = escapeTable[esc] // zero value for an unrecognized escape
	} else {
		value = ch
	}

	if got := c.next(); got != '\'' {
		return nil, c.fatalf("You opened a quote, but did not close it.")
	}

	return c.finishToken(Token{Kind: Number, NumberValue: uint64(value)}), nil
}

// --- strings ---

func (c *Context) stringLiteral(start, end byte) (*Token, error) {
	if got := c.next(); got != start {
		return nil, c.fatalf("expected %q to start string", string(start))
	}

	var buf strings.Builder
	for ch := c.next(); ch != end && ch != eof; ch = c.next() {
		if ch == '\\' {
			continue
		}
		buf.WriteByte(ch)
	}

	return c.finishToken(Token{Kind: String, Text: buf.String()}), nil
}

// --- operators ---

func (c *Context) operatorOrString() (*Token, error) {
	lead := c.peek()

	if lead == '<' {
		if last := c.lastToken(); last != nil && last.IsKeyword("include") {
			return c.stringLiteral('<', '>')
		}
	}

	op, err := c.readOperator()
	if err != nil {
		return nil, err
	}

	tok := c.finishToken(Token{Kind: Operator, Text: op})
	if lead == '(' {
		c.newExpression()
	}
	return tok, nil
}

// readOperator implements the push-back recovery algorithm: a second
// character is only tentatively consumed, and is pushed back if the
// two-byte combination is not in the valid set.
func (c *Context) readOperator() (string, error) {
	op1 := c.next()
	buf := []byte{op1}

	multiAttempt := false
	if !isSet(treatedAsOne, op1) {
		op2 := c.peek()
		if isSet(singleOperatorAlphabet, op2) {
			buf = append(buf, op2)
			c.next()
			multiAttempt = true
		}
	}

	candidate := string(buf)
	if multiAttempt && !isSet(validOperators, candidate) {
		c.push(buf[1])
		candidate = string(buf[:1])
	}

	if !isSet(validOperators, candidate) {
		return "", c.fatalf("The operator %s is not valid", candidate)
	}

	return candidate, nil
}


// --- symbols ---

func (c *Context) symbolToken() (*Token, error) {
	b := c.next()
	if b == ')' {
		if err := c.finishExpression(); err != nil {
			return nil, err
		}
	}
	return c.finishToken(Token{Kind: Symbol, SymbolByte: b}), nil
}

// --- comments ---

func (c *Context) comment() (*Token, error) {
	c.next() // consume the leading '/'

	switch c.peek() {
	case '/':
		c.next()
		return c.lineComment()
	case '*':
		c.next()
		return c.multilineComment()
	default:
		c.push('/')
		return c.operatorOrString()
	}
}

func (c *Context) lineComment() (*Token, error) {
	var buf strings.Builder
	for ch := c.peek(); ch != '\n' && ch != eof; ch = c.peek() {
		buf.WriteByte(c.next())
	}
	return c.finishToken(Token{Kind: Comment, Text: buf.String()}), nil
}

func (c *Context) multilineComment() (*Token, error) {
	var buf strings.Builder
	for {
		ch := c.peek()
		for ch != '*' && ch != eof {
			buf.WriteByte(c.next())
			ch = c.peek()
		}
		if ch == eof {
			return nil, c.fatalf("You did not close this multiline comment.")
		}

		c.next() // consume the '*'
		if c.peek() == '/' {
			c.next()
			break
		}
		// A lone '*' not followed by '/' is dropped and scanning resumes.
	}
	return c.finishToken(Token{Kind: Comment, Text: buf.String()}), nil
}

// --- identifiers and keywords ---

func (c *Context) identifierOrKeyword() (*Token, error) {
	var buf strings.Builder
	for ch := c.peek(); isIdentByte(ch); ch = c.peek() {
		buf.WriteByte(c.next())
	}

	text := buf.String()
	if _, ok := keywordSet[text]; ok {
		return c.finishToken(Token{Kind: Keyword, Text: text}), nil
	}
	return c.finishToken(Token{Kind: Identifier, Text: text}), nil
}

// --- whitespace and newlines ---

func (c *Context) whitespace() (*Token, error) {
	if last := c.lastToken(); last != nil {
		last.Whitespace = true
	}
	c.next()
	return c.readNextToken()
}

func (c *Context) newlineToken() (*Token, error) {
	c.next()
	return c.finishToken(Token{Kind: Newline}), nil
}
