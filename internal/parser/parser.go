// Package parser implements the recursive-descent parser that converts a
// token stream into a list of top-level statements. It follows the
// teacher's parser/parser.go shape — a cursor-based recursive-descent
// parser with a dedicated error type and a synchronize step that lets
// scanning continue past a syntax error to surface further diagnostics —
// scaled down to this language's grammar.
package parser

import (
	"github.com/vinhtc27/interpreter/internal/ast"
	"github.com/vinhtc27/interpreter/internal/token"
)

// Parser consumes a fixed token slice left-to-right via an internal
// cursor.
type Parser struct {
	tokens   []token.Token
	current  int
	HadError bool
	Errors   []*ParseError
}

// New creates a Parser over tokens, which must end with a single EOF
// token (the shape Lexer.ScanTokens always produces).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseProgram parses every top-level statement until EOF. Errors are
// accumulated: parsing skips past a bad construct and keeps going so
// multiple diagnostics can be reported in one pass; HadError is set if
// any were. The exit code is the driver's responsibility.
func (p *Parser) ParseProgram() []ast.Statement {
	var statements []ast.Statement
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// ---- statements ----

func (p *Parser) declaration() ast.Statement {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); ok {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()
	return p.statement()
}

func (p *Parser) statement() ast.Statement {
	switch {
	case p.check(token.LEFT_BRACE):
		return p.block()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.VAR):
		return p.varDeclaration()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() ast.Statement {
	openLine := p.peek().Line
	p.advance() // consume '{'
	var statements []ast.Statement
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return &ast.Block{Statements: statements, Ln: openLine}
}

func (p *Parser) printStatement() ast.Statement {
	line := p.previous().Line
	expr := p.expression()
	p.consumeOptionalSemicolon()
	return &ast.PrintStmt{Expr: expr, Ln: line}
}

func (p *Parser) varDeclaration() ast.Statement {
	line := p.previous().Line
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	var init ast.Expression
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.consumeOptionalSemicolon()
	return &ast.VarDecl{Name: name.Lexeme, Init: init, Ln: line}
}

func (p *Parser) ifStatement() ast.Statement {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")
	then := p.statement()
	var elseBranch ast.Statement
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: condition, Then: then, Else: elseBranch, Ln: line}
}

func (p *Parser) whileStatement() ast.Statement {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after while condition.")
	body := p.statement()
	return &ast.While{Condition: condition, Body: body, Ln: line}
}

// forStatement desugars immediately to "{ init; while (cond) { body; incr;
// } }", executed in the surrounding scope plus one nested scope for
// init; there is no dedicated ast.ForStmt node.
func (p *Parser) forStatement() ast.Statement {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Statement
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expression
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expression
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if condition == nil {
		condition = &ast.Literal{Token: token.Token{Kind: token.TRUE, Lexeme: "true", Line: line}}
	}

	innerStatements := []ast.Statement{body}
	if increment != nil {
		innerStatements = append(innerStatements, &ast.ExpressionStmt{Expr: increment, Ln: line})
	}
	whileBody := &ast.Block{Statements: innerStatements, Ln: line}
	whileLoop := ast.Statement(&ast.While{Condition: condition, Body: whileBody, Ln: line})

	if initializer == nil {
		return whileLoop
	}
	return &ast.Block{Statements: []ast.Statement{initializer, whileLoop}, Ln: line}
}

func (p *Parser) expressionStatement() ast.Statement {
	line := p.peek().Line
	expr := p.expression()
	p.consumeOptionalSemicolon()
	return &ast.ExpressionStmt{Expr: expr, Ln: line}
}

// consumeOptionalSemicolon requires ';' after expression/print/var-decl/
// assign statements, except that a trailing EOF with no final ';' is
// still accepted.
func (p *Parser) consumeOptionalSemicolon() {
	if p.isAtEnd() {
		return
	}
	p.consume(token.SEMICOLON, "Expect ';' after statement.")
}

// ---- expressions ----

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

// assignment is the lowest-precedence, right-associative expression
// form: "IDENTIFIER = assignment". Parsing the left side through the
// full "or" chain first and only then checking for '=' lets the target
// be recognized without unbounded lookahead, while still rejecting
// anything other than a bare identifier as an assignment target.
func (p *Parser) assignment() ast.Expression {
	expr := p.or()
	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()
		if lit, ok := expr.(*ast.Literal); ok && lit.Token.Kind == token.IDENTIFIER {
			return &ast.Assign{Name: lit.Token.Lexeme, Value: value, Ln: equals.Line}
		}
		p.fail(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) or() ast.Expression {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expression {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expression {
	expr := p.term()
	for p.match(token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expression {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Operator: op, Operand: operand}
	}
	return p.primary()
}

func (p *Parser) primary() ast.Expression {
	switch {
	case p.match(token.FALSE, token.TRUE, token.NIL, token.NUMBER, token.STRING, token.IDENTIFIER):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.LEFT_PAREN):
		inner := p.expression()
		if !p.check(token.RIGHT_PAREN) {
			p.fail(p.peek(), "Unmatched parentheses.")
		}
		p.advance()
		return &ast.Grouping{Inner: inner}
	case p.check(token.RIGHT_PAREN):
		p.fail(p.peek(), "Unmatched parentheses.")
		return nil
	default:
		p.fail(p.peek(), "Expect expression.")
		return nil
	}
}

// ---- cursor helpers ----

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.peek(), message)
	return p.peek()
}

// fail records a syntax fault as a *ParseError and panics with it to
// unwind to the nearest declaration() recovery point. Diagnostics are
// collected rather than printed here so the caller can print them
// (optionally colored) once parsing finishes.
func (p *Parser) fail(tok token.Token, message string) {
	p.HadError = true
	err := &ParseError{Ln: tok.Line, Lexeme: tok.Lexeme, AtEnd: tok.Kind == token.EOF, Message: message}
	p.Errors = append(p.Errors, err)
	panic(err)
}

// synchronize discards tokens until it finds a likely statement
// boundary: right after a ';', or right before a statement-starting
// keyword.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
