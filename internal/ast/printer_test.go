package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinhtc27/interpreter/internal/token"
)

func numberToken(lexeme string, value float64) token.Token {
	return token.Token{Kind: token.NUMBER, Lexeme: lexeme, Literal: value, Line: 1}
}

func TestPrint_BinaryAndUnary(t *testing.T) {
	expr := &Binary{
		Left:     &Unary{Operator: token.Token{Kind: token.MINUS, Lexeme: "-", Line: 1}, Operand: &Literal{Token: numberToken("123", 123)}},
		Operator: token.Token{Kind: token.STAR, Lexeme: "*", Line: 1},
		Right:    &Grouping{Inner: &Literal{Token: numberToken("45.67", 45.67)}},
	}
	assert.Equal(t, "(* (- 123.0) (group 45.67))", Print(expr))
}

func TestPrint_IntegralNumberGetsDotZeroSuffix(t *testing.T) {
	expr := &Literal{Token: numberToken("42", 42)}
	assert.Equal(t, "42.0", Print(expr))
}

func TestPrint_Logical(t *testing.T) {
	expr := &Logical{
		Left:     &Literal{Token: token.Token{Kind: token.TRUE, Lexeme: "true", Line: 1}},
		Operator: token.Token{Kind: token.OR, Lexeme: "or", Line: 1},
		Right:    &Literal{Token: token.Token{Kind: token.FALSE, Lexeme: "false", Line: 1}},
	}
	assert.Equal(t, "(or true false)", Print(expr))
}

func TestPrint_Assign(t *testing.T) {
	expr := &Assign{Name: "x", Value: &Literal{Token: numberToken("1", 1)}, Ln: 1}
	assert.Equal(t, "(= x 1.0)", Print(expr))
}

func TestPrintStatement_VarDeclWithAndWithoutInitializer(t *testing.T) {
	withInit := &VarDecl{Name: "a", Init: &Literal{Token: numberToken("1", 1)}, Ln: 1}
	assert.Equal(t, "(var a 1.0)", PrintStatement(withInit))

	withoutInit := &VarDecl{Name: "a", Ln: 1}
	assert.Equal(t, "(var a)", PrintStatement(withoutInit))
}

func TestPrintStatement_Block(t *testing.T) {
	block := &Block{
		Statements: []Statement{
			&PrintStmt{Expr: &Literal{Token: numberToken("1", 1)}, Ln: 1},
		},
		Ln: 1,
	}
	assert.Equal(t, "(block (print 1.0))", PrintStatement(block))
}
