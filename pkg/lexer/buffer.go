package lexer

import "fmt"

// buffer is a growable byte array with an independent append point and
// read cursor, mirroring the original front-end's buffer_write /
// buffer_read / buffer_peek / buffer_ptr family. It backs the
// string-driven character source and the bracket-capture buffer; the
// recognizers accumulate their byte runs in a strings.Builder or a
// byte slice instead.
type buffer struct {
	data []byte
	read int
}

func newBuffer() *buffer {
	return &buffer{}
}

// Append adds a single byte to the end of the buffer.
func (b *buffer) Append(c byte) {
	b.data = append(b.data, c)
}

// AppendString adds s to the end of the buffer.
func (b *buffer) AppendString(s string) {
	b.data = append(b.data, s...)
}

// Appendf is the formatted-append operation (buffer_printf in the
// original front-end).
func (b *buffer) Appendf(format string, args ...interface{}) {
	b.AppendString(fmt.Sprintf(format, args...))
}

// Len returns the number of bytes written so far, irrespective of the
// read cursor.
func (b *buffer) Len() int {
	return len(b.data)
}

// Bytes returns the buffer's full contents.
func (b *buffer) Bytes() []byte {
	return b.data
}

func (b *buffer) String() string {
	return string(b.data)
}

// Read consumes and returns the next unread byte, or eof once the
// cursor reaches the end of the written data.
func (b *buffer) Read() byte {
	if b.read >= len(b.data) {
		return eof
	}
	c := b.data[b.read]
	b.read++
	return c
}

// Peek returns the next unread byte without advancing the cursor.
func (b *buffer) Peek() byte {
	if b.read >= len(b.data) {
		return eof
	}
	return b.data[b.read]
}
