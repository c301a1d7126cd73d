package lexer

import "bufio"

// eof is the sentinel byte returned by Source.Next/Peek once the
// stream is exhausted.
const eof byte = 0

// Source is the character-stream abstraction the recognizer reads
// from: consume-and-return, peek-without-consuming, and push a byte
// back so the next Peek/Next re-sees it.
type Source interface {
	Next() byte
	Peek() byte
	Push(b byte)
}

// fileSource reads from an open file through a buffered reader. It is
// the authoritative column/line tracker for the owning CompileContext:
// every byte it hands out also advances the compiler's own position,
// which is used for diagnostics raised outside the lexer proper.
//
// Push-back is a small LIFO stack rather than relying on the
// underlying reader's own unread support, since the operator
// recognizer's push-back must compose correctly with an immediately
// following Peek.
type fileSource struct {
	reader   *bufio.Reader
	compiler *CompileContext
	pushback []byte
}

func newFileSource(cc *CompileContext) *fileSource {
	return &fileSource{
		reader:   bufio.NewReader(cc.in),
		compiler: cc,
	}
}

func (s *fileSource) Next() byte {
	if n := len(s.pushback); n > 0 {
		c := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return c
	}

	c, err := s.reader.ReadByte()
	if err != nil {
		return eof
	}

	s.compiler.advancePos(c)
	return c
}

func (s *fileSource) Peek() byte {
	if n := len(s.pushback); n > 0 {
		return s.pushback[n-1]
	}

	b, err := s.reader.Peek(1)
	if err != nil {
		return eof
	}
	return b[0]
}

func (s *fileSource) Push(c byte) {
	s.pushback = append(s.pushback, c)
}

// stringSource reads from an in-memory buffer's read cursor. It is
// used only for lexing synthetic inputs (LexString), and, like the
// original front-end's string-backed character source, Push simply
// appends to the buffer rather than truly rewinding the cursor; it
// does not need to preserve exact inverse-of-Next semantics for
// arbitrary push patterns.
type stringSource struct {
	buf *buffer
}

func (s *stringSource) Next() byte {
	return s.buf.Read()
}

func (s *stringSource) Peek() byte {
	return s.buf.Peek()
}

func (s *stringSource) Push(c byte) {
	s.buf.Append(c)
}
