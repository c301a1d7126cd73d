package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenIsKeyword(t *testing.T) {
	kw := Token{Kind: Keyword, Text: "return"}
	assert.True(t, kw.IsKeyword("return"))
	assert.False(t, kw.IsKeyword("if"))

	id := Token{Kind: Identifier, Text: "return"}
	assert.False(t, id.IsKeyword("return"))
}

func TestTokensPushPopLast(t *testing.T) {
	var toks Tokens
	assert.Nil(t, toks.Last())

	toks.Push(Token{Kind: Number, NumberValue: 1})
	toks.Push(Token{Kind: Number, NumberValue: 2})
	assert.Equal(t, uint64(2), toks.Last().NumberValue)

	toks.Pop()
	assert.Equal(t, uint64(1), toks.Last().NumberValue)

	toks.Pop()
	toks.Pop() // popping an empty vector is a no-op
	assert.Nil(t, toks.Last())
}

func TestKeywordSetMembership(t *testing.T) {
	for s := range keywordSet {
		ctx, err := LexString(nil, s)
		assert.NoError(t, err)
		toks := ctx.Output()
		if assert.Len(t, toks, 1) {
			assert.True(t, toks[0].IsKeyword(s), "expected %q to lex as its own keyword", s)
		}
	}

	ctx, err := LexString(nil, "notAKeyword")
	assert.NoError(t, err)
	toks := ctx.Output()
	if assert.Len(t, toks, 1) {
		assert.Equal(t, Identifier, toks[0].Kind)
	}
}
