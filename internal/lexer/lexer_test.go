package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ing-lang/ingc/internal/token"
)

func TestNextTokenBasic(t *testing.T) {
	src := []byte(`fn main() { let x: Int = 1; }`)
	l := New(src, "main.ing")

	want := []token.Type{
		token.FN, token.IDENT, token.LPAREN, token.RPAREN, token.LBRACE,
		token.LET, token.IDENT, token.COLON, token.TY_INT, token.ASSIGN,
		token.INT, token.SEMI, token.RBRACE, token.EOF,
	}
	for i, w := range want {
		got := l.Next()
		assert.Equalf(t, w, got.Type, "token %d: literal=%q", i, got.Literal)
	}
}

func TestNextTokenOperators(t *testing.T) {
	src := []byte(`++x-- && || == != <= >= -> :: &`)
	l := New(src, "ops.ing")
	want := []token.Type{
		token.INC, token.IDENT, token.DEC, token.AND, token.OR, token.EQ,
		token.NEQ, token.LEQ, token.GEQ, token.ARROW, token.DCOLON, token.AMP, token.EOF,
	}
	for i, w := range want {
		got := l.Next()
		assert.Equalf(t, w, got.Type, "token %d: literal=%q", i, got.Literal)
	}
}

func TestNFCNormalizationMakesIdentifiersEqual(t *testing.T) {
	nfc := []byte("café") // é precomposed
	nfd := []byte("café") // e + combining acute

	l1 := New(nfc, "a.ing")
	l2 := New(nfd, "b.ing")

	tok1 := l1.Next()
	tok2 := l2.Next()
	assert.Equal(t, tok1.Literal, tok2.Literal)
}

func TestStringEscapes(t *testing.T) {
	l := New([]byte(`"a\nb\"c"`), "s.ing")
	tok := l.Next()
	assert.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "a\nb\"c", tok.Literal)
}
