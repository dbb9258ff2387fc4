// Package interp walks the AST against a lexically scoped Environment,
// producing Values and side effects. It plays the same role the
// teacher's runtime/execution package plays for opal programs, minus the
// decorator/plan machinery this language has no equivalent of.
package interp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/vinhtc27/interpreter/internal/ast"
	"github.com/vinhtc27/interpreter/internal/config"
	"github.com/vinhtc27/interpreter/internal/object"
	"github.com/vinhtc27/interpreter/internal/token"
)

// Evaluator threads an Environment through AST evaluation and writes
// Print-statement output to Stdout.
type Evaluator struct {
	Globals *Environment
	Stdout  io.Writer
	Limits  config.Limits

	logger *slog.Logger
}

// New creates an Evaluator with a fresh global scope.
func New(stdout io.Writer, limits config.Limits) *Evaluator {
	level := slog.LevelInfo
	if os.Getenv("LOX_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return &Evaluator{
		Globals: NewEnvironment(nil),
		Stdout:  stdout,
		Limits:  limits,
		logger:  logger,
	}
}

// Run executes every top-level statement in order, for the "run"
// subcommand: only `print` produces output. It returns the first
// RuntimeError encountered; evaluation aborts immediately at the point of
// failure rather than continuing past it.
func (e *Evaluator) Run(statements []ast.Statement) error {
	for _, stmt := range statements {
		if err := e.execStatement(e.Globals, stmt); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateTopLevel is the "evaluate" subcommand's entry point: like Run,
// but every top-level ExpressionStmt also prints its resulting value;
// non-expression statements (var, print, control flow) still run for
// their side effects only, printing nothing beyond what they themselves
// emit.
func (e *Evaluator) EvaluateTopLevel(statements []ast.Statement) error {
	for _, stmt := range statements {
		if exprStmt, ok := stmt.(*ast.ExpressionStmt); ok {
			value, err := e.evalExpression(e.Globals, exprStmt.Expr)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.Stdout, value.Display())
			continue
		}
		if err := e.execStatement(e.Globals, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execStatement(env *Environment, stmt ast.Statement) error {
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		before := snapshotEnv(env)
		err := e.execStatementInner(env, stmt)
		e.logger.Debug("exec statement", "line", stmt.Line(), "form", ast.PrintStatement(stmt))
		if diff := cmp.Diff(before, snapshotEnv(env)); diff != "" {
			e.logger.Debug("environment changed", "diff", diff)
		}
		return err
	}
	return e.execStatementInner(env, stmt)
}

func (e *Evaluator) execStatementInner(env *Environment, stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.evalExpression(env, s.Expr)
		return err

	case *ast.PrintStmt:
		value, err := e.evalExpression(env, s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Stdout, value.Display())
		return nil

	case *ast.VarDecl:
		value := object.Value(object.NilValue)
		if s.Init != nil {
			v, err := e.evalExpression(env, s.Init)
			if err != nil {
				return err
			}
			value = v
		}
		env.Define(s.Name, value)
		return nil

	case *ast.Block:
		return e.execBlock(env, s)

	case *ast.If:
		cond, err := e.evalExpression(env, s.Condition)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return e.execStatement(env, s.Then)
		}
		if s.Else != nil {
			return e.execStatement(env, s.Else)
		}
		return nil

	case *ast.While:
		iterations := 0
		for {
			cond, err := e.evalExpression(env, s.Condition)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if e.Limits.MaxLoopIterations > 0 && iterations >= e.Limits.MaxLoopIterations {
				return newTypeError(s.Ln, fmt.Sprintf("Loop exceeded configured maxLoopIterations (%d).", e.Limits.MaxLoopIterations))
			}
			if err := e.execStatement(env, s.Body); err != nil {
				return err
			}
			iterations++
		}

	default:
		return fmt.Errorf("interp: unknown statement type %T", stmt)
	}
}

func (e *Evaluator) execBlock(parent *Environment, block *ast.Block) error {
	env := NewEnvironment(parent)
	if e.Limits.MaxEnvironmentDepth > 0 && env.Depth() > e.Limits.MaxEnvironmentDepth {
		return newTypeError(block.Ln, fmt.Sprintf("Block nesting exceeded configured maxEnvironmentDepth (%d).", e.Limits.MaxEnvironmentDepth))
	}
	for _, stmt := range block.Statements {
		if err := e.execStatement(env, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalExpression(env *Environment, expr ast.Expression) (object.Value, error) {
	switch ex := expr.(type) {
	case *ast.Literal:
		return e.evalLiteral(env, ex)

	case *ast.Grouping:
		return e.evalExpression(env, ex.Inner)

	case *ast.Unary:
		return e.evalUnary(env, ex)

	case *ast.Binary:
		return e.evalBinary(env, ex)

	case *ast.Logical:
		return e.evalLogical(env, ex)

	case *ast.Assign:
		return e.evalAssign(env, ex)

	default:
		return nil, fmt.Errorf("interp: unknown expression type %T", expr)
	}
}

func (e *Evaluator) evalLiteral(env *Environment, lit *ast.Literal) (object.Value, error) {
	tok := lit.Token
	switch {
	case tok.Kind == token.NUMBER:
		return object.Number(tok.Literal.(float64)), nil
	case tok.Kind == token.STRING:
		return object.String(tok.Literal.(string)), nil
	case tok.Kind == token.TRUE:
		return object.Boolean(true), nil
	case tok.Kind == token.FALSE:
		return object.Boolean(false), nil
	case tok.Kind == token.NIL:
		return object.NilValue, nil
	case tok.Kind == token.IDENTIFIER:
		value, ok := env.Get(tok.Lexeme)
		if !ok {
			return nil, newUndefinedVariableError(tok.Line, tok.Lexeme)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("interp: unhandled literal token kind %v", tok.Kind)
	}
}

func (e *Evaluator) evalUnary(env *Environment, u *ast.Unary) (object.Value, error) {
	operand, err := e.evalExpression(env, u.Operand)
	if err != nil {
		return nil, err
	}
	switch u.Operator.Kind {
	case token.MINUS:
		n, ok := operand.(object.Number)
		if !ok {
			return nil, newTypeError(u.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return object.Boolean(!operand.Truthy()), nil
	default:
		return nil, fmt.Errorf("interp: unhandled unary operator %v", u.Operator.Kind)
	}
}

func (e *Evaluator) evalBinary(env *Environment, b *ast.Binary) (object.Value, error) {
	// Left-to-right evaluation order, no short-circuit: both operands are
	// always evaluated for Binary (and/or are handled separately as
	// Logical, below).
	left, err := e.evalExpression(env, b.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(env, b.Right)
	if err != nil {
		return nil, err
	}
	line := b.Operator.Line

	switch b.Operator.Kind {
	case token.MINUS, token.STAR, token.SLASH:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, newTypeError(line, "Operand must be a number.")
		}
		switch b.Operator.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		default: // token.SLASH
			return ln / rn, nil // IEEE division: ±Inf / NaN on zero divisor, no trap.
		}

	case token.PLUS:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if lok && rok {
			return ln + rn, nil
		}
		ls, lsok := left.(object.String)
		rs, rsok := right.(object.String)
		if lsok && rsok {
			return ls + rs, nil
		}
		return nil, newTypeError(line, "Operands must be two numbers or two strings.")

	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, newTypeError(line, "Operand must be a number.")
		}
		switch b.Operator.Kind {
		case token.LESS:
			return object.Boolean(ln < rn), nil
		case token.LESS_EQUAL:
			return object.Boolean(ln <= rn), nil
		case token.GREATER:
			return object.Boolean(ln > rn), nil
		default: // token.GREATER_EQUAL
			return object.Boolean(ln >= rn), nil
		}

	case token.EQUAL_EQUAL:
		return object.Boolean(object.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return object.Boolean(!object.Equal(left, right)), nil

	default:
		return nil, fmt.Errorf("interp: unhandled binary operator %v", b.Operator.Kind)
	}
}

func (e *Evaluator) evalLogical(env *Environment, lg *ast.Logical) (object.Value, error) {
	left, err := e.evalExpression(env, lg.Left)
	if err != nil {
		return nil, err
	}
	// Short-circuit: "or" returns the left operand unchanged if truthy
	// without evaluating the right; "and" returns it unchanged if falsy.
	// Either way the original operand value is returned, never coerced to
	// Boolean, per the spec's resolved Open Question.
	if lg.Operator.Kind == token.OR {
		if left.Truthy() {
			return left, nil
		}
		return e.evalExpression(env, lg.Right)
	}
	// "and"
	if !left.Truthy() {
		return left, nil
	}
	return e.evalExpression(env, lg.Right)
}

// evalAssign rebinds an existing lexical name, walking outward through
// the scope chain to find it, and evaluates to the value that was
// assigned. Unlike VarDecl, it never creates a new binding.
func (e *Evaluator) evalAssign(env *Environment, a *ast.Assign) (object.Value, error) {
	value, err := e.evalExpression(env, a.Value)
	if err != nil {
		return nil, err
	}
	if !env.Assign(a.Name, value) {
		return nil, newUndefinedVariableError(a.Ln, a.Name)
	}
	return value, nil
}

// snapshotEnv captures the current scope's own bindings (not the
// enclosing chain) for the before/after diff in execStatement, using
// cmp.Diff the same way the teacher leans on go-cmp for structural
// comparisons in its own tests.
func snapshotEnv(env *Environment) map[string]string {
	snap := make(map[string]string, len(env.values))
	for k, v := range env.values {
		snap[k] = v.Display()
	}
	return snap
}
