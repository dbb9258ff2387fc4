package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinhtc27/interpreter/internal/token"
)

func TestFormatNumberLiteral_AlwaysHasAtLeastOneDecimalDigit(t *testing.T) {
	assert.Equal(t, "42.0", formatNumberLiteral(42))
	assert.Equal(t, "12.5", formatNumberLiteral(12.5))
	assert.Equal(t, "0.0", formatNumberLiteral(0))
}

func TestFormatTokenLine_StringAndNumberCarryLiteral(t *testing.T) {
	str := token.Token{Kind: token.STRING, Lexeme: `"foo"`, Literal: "foo", Line: 1}
	assert.Equal(t, `STRING "foo" foo`, formatTokenLine(str))

	num := token.Token{Kind: token.NUMBER, Lexeme: "12.5", Literal: 12.5, Line: 1}
	assert.Equal(t, "NUMBER 12.5 12.5", formatTokenLine(num))

	paren := token.Token{Kind: token.LEFT_PAREN, Lexeme: "(", Line: 1}
	assert.Equal(t, "LEFT_PAREN ( null", formatTokenLine(paren))

	eof := token.Token{Kind: token.EOF, Lexeme: "", Line: 1}
	assert.Equal(t, "EOF  null", formatTokenLine(eof))
}
