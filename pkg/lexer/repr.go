package lexer

import (
	"strings"

	"github.com/alecthomas/repr"
)

// Dump pretty-prints a token vector, one repr-formatted token per
// line. It backs both the driver's -dump-tokens flag and the
// interactive REPL.
func Dump(toks Tokens) string {
	var out strings.Builder
	for _, t := range toks {
		out.WriteString(repr.String(t))
		out.WriteByte('\n')
	}
	return out.String()
}
