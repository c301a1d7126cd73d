package lexer

import (
	"testing"

	"github.com/kerycompiler/kcc-lex/internal/corpus"
)

func benchmarkLex(b *testing.B, size int) {
	src := corpus.GetRandomTokens(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = LexString(nil, src)
	}
}

func BenchmarkLexer100(b *testing.B)     { benchmarkLex(b, 100) }
func BenchmarkLexer1000(b *testing.B)    { benchmarkLex(b, 1000) }
func BenchmarkLexer10000(b *testing.B)   { benchmarkLex(b, 10000) }
func BenchmarkLexer100000(b *testing.B)  { benchmarkLex(b, 100000) }
func BenchmarkLexer1000000(b *testing.B) { benchmarkLex(b, 1000000) }
