package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vinhtc27/interpreter/internal/token"
)

// Print renders expr in a fully-parenthesized prefix form: binary/unary
// operators keep their lexeme, groupings render as "(group ...)", and
// numeric literals always carry a ".0"-or-decimal suffix — distinct from
// the runtime Display formatter, which drops the trailing ".0" for
// integral results. The two are deliberately separate formatters.
func Print(expr Expression) string {
	switch e := expr.(type) {
	case *Literal:
		return printLiteralToken(e.Token)
	case *Grouping:
		return parenthesize("group", e.Inner)
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Operand)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Assign:
		return fmt.Sprintf("(= %s %s)", e.Name, Print(e.Value))
	default:
		return fmt.Sprintf("<unknown expression %T>", expr)
	}
}

// PrintStatement renders a single top-level statement in a Lisp-prefix
// form that extends the expression form of Print to cover var/print/
// block/if/while, following the same parenthesized-prefix convention for
// consistency.
func PrintStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return Print(s.Expr)
	case *PrintStmt:
		return "(print " + Print(s.Expr) + ")"
	case *VarDecl:
		if s.Init == nil {
			return fmt.Sprintf("(var %s)", s.Name)
		}
		return fmt.Sprintf("(var %s %s)", s.Name, Print(s.Init))
	case *Block:
		var b strings.Builder
		b.WriteString("(block")
		for _, inner := range s.Statements {
			b.WriteString(" ")
			b.WriteString(PrintStatement(inner))
		}
		b.WriteString(")")
		return b.String()
	case *If:
		if s.Else == nil {
			return fmt.Sprintf("(if %s %s)", Print(s.Condition), PrintStatement(s.Then))
		}
		return fmt.Sprintf("(if %s %s %s)", Print(s.Condition), PrintStatement(s.Then), PrintStatement(s.Else))
	case *While:
		return fmt.Sprintf("(while %s %s)", Print(s.Condition), PrintStatement(s.Body))
	default:
		return fmt.Sprintf("<unknown statement %T>", stmt)
	}
}

func parenthesize(name string, exprs ...Expression) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(Print(e))
	}
	b.WriteString(")")
	return b.String()
}

func printLiteralToken(tok token.Token) string {
	switch tok.Kind {
	case token.NUMBER:
		return formatNumberWithDecimal(tok.Literal.(float64))
	case token.STRING:
		return tok.Literal.(string)
	case token.TRUE:
		return "true"
	case token.FALSE:
		return "false"
	case token.NIL:
		return "nil"
	case token.IDENTIFIER:
		return tok.Lexeme
	default:
		return tok.Lexeme
	}
}

// formatNumberWithDecimal is the tokenize/parse-dump formatter: it always
// shows at least one decimal digit, e.g. 42 -> "42.0", 12.5 -> "12.5".
func formatNumberWithDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
