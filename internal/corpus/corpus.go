// Package corpus generates synthetic lexer input for benchmarks,
// adapted from the upstream lexer's internal/test random-token
// generator to this front-end's C-family token grammar.
package corpus

import (
	"math/rand"
	"strings"
)

const validTokens = "int;main;(;);{;};return;\"a string literal\";\"\";123;123L;0x1A;0b101;'a';'\\n';+;-;*;/;==;!=;<=;&&;->;,;;;// a line comment\n;/* a block comment */;\n"

// GetRandomTokens joins size randomly chosen tokens with a single
// space, the way the upstream generator did.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

// GetRandomTokensWithSep joins size randomly chosen tokens with sep.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	toks := make([]string, 0, size)
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
