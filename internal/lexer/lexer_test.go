package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhtc27/interpreter/internal/token"
)

type tokenExpectation struct {
	Kind    token.Kind
	Lexeme  string
	Literal interface{}
}

func assertTokens(t *testing.T, input string, expected []tokenExpectation) []token.Token {
	t.Helper()
	l := New(input)
	tokens := l.ScanTokens()

	require.Len(t, tokens, len(expected))

	got := make([]tokenExpectation, len(tokens))
	for i, tok := range tokens {
		got[i] = tokenExpectation{Kind: tok.Kind, Lexeme: tok.Lexeme, Literal: tok.Literal}
	}
	if diff := cmp.Diff(expected, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("token mismatch for %q (-want +got):\n%s", input, diff)
	}
	return tokens
}

func TestScanTokens_Punctuation(t *testing.T) {
	assertTokens(t, "(){};", []tokenExpectation{
		{token.LEFT_PAREN, "(", nil},
		{token.RIGHT_PAREN, ")", nil},
		{token.LEFT_BRACE, "{", nil},
		{token.RIGHT_BRACE, "}", nil},
		{token.SEMICOLON, ";", nil},
		{token.EOF, "", nil},
	})
}

func TestScanTokens_StringAndNumber(t *testing.T) {
	assertTokens(t, `"foo" 12.5`, []tokenExpectation{
		{token.STRING, `"foo"`, "foo"},
		{token.NUMBER, "12.5", 12.5},
		{token.EOF, "", nil},
	})
}

func TestScanTokens_OneOrTwoCharOperators(t *testing.T) {
	assertTokens(t, "= == ! != < <= > >=", []tokenExpectation{
		{token.EQUAL, "=", nil},
		{token.EQUAL_EQUAL, "==", nil},
		{token.BANG, "!", nil},
		{token.BANG_EQUAL, "!=", nil},
		{token.LESS, "<", nil},
		{token.LESS_EQUAL, "<=", nil},
		{token.GREATER, ">", nil},
		{token.GREATER_EQUAL, ">=", nil},
		{token.EOF, "", nil},
	})
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	assertTokens(t, "var answer = not_a_keyword and true", []tokenExpectation{
		{token.VAR, "var", nil},
		{token.IDENTIFIER, "answer", nil},
		{token.EQUAL, "=", nil},
		{token.IDENTIFIER, "not_a_keyword", nil},
		{token.AND, "and", nil},
		{token.TRUE, "true", nil},
		{token.EOF, "", nil},
	})
}

func TestScanTokens_CommentsAndWhitespaceSkipped(t *testing.T) {
	assertTokens(t, "1 // a trailing comment\n+ 2", []tokenExpectation{
		{token.NUMBER, "1", 1.0},
		{token.PLUS, "+", nil},
		{token.NUMBER, "2", 2.0},
		{token.EOF, "", nil},
	})
}

func TestScanTokens_LineNumbersMonotonicallyNonDecreasing(t *testing.T) {
	tokens := assertTokens(t, "1\n2\n\n3", []tokenExpectation{
		{token.NUMBER, "1", 1.0},
		{token.NUMBER, "2", 2.0},
		{token.NUMBER, "3", 3.0},
		{token.EOF, "", nil},
	})
	for i := 1; i < len(tokens); i++ {
		assert.GreaterOrEqual(t, tokens[i].Line, tokens[i-1].Line)
	}
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 4, tokens[len(tokens)-1].Line)
}

func TestScanTokens_UnterminatedStringSetsHadError(t *testing.T) {
	l := New(`"never closed`)
	tokens := l.ScanTokens()
	assert.True(t, l.HadError)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestScanTokens_UnexpectedCharacterContinuesScanning(t *testing.T) {
	l := New("1 @ 2")
	tokens := l.ScanTokens()
	assert.True(t, l.HadError)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.NUMBER, tokens[0].Kind)
	assert.Equal(t, token.NUMBER, tokens[1].Kind)
	assert.Equal(t, token.EOF, tokens[2].Kind)
}

func TestScanTokens_NFCNormalizesIdentifiers(t *testing.T) {
	// "e-with-acute" as a combining sequence (e + U+0301) vs the
	// precomposed form (U+00E9) must scan to the same lexeme so both
	// bind to one variable.
	decomposed := "caf" + "e" + "\u0301"
	precomposed := "caf" + "\u00e9"

	l1 := New(decomposed)
	toks1 := l1.ScanTokens()
	l2 := New(precomposed)
	toks2 := l2.ScanTokens()

	require.Len(t, toks1, 2)
	require.Len(t, toks2, 2)
	assert.Equal(t, toks2[0].Lexeme, toks1[0].Lexeme)
}

func TestScanTokens_EmptyInputIsJustEof(t *testing.T) {
	assertTokens(t, "", []tokenExpectation{
		{token.EOF, "", nil},
	})
}
