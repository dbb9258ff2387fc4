package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vinhtc27/interpreter/internal/color"
	"github.com/vinhtc27/interpreter/internal/interp"
	"github.com/vinhtc27/interpreter/internal/lexer"
	"github.com/vinhtc27/interpreter/internal/parser"
	"github.com/vinhtc27/interpreter/internal/suggest"
)

// runEvaluate implements the "evaluate" subcommand: scan, parse, then
// evaluate each top-level construct, printing a value per expression
// statement. Non-expression statements still run for their side effects
// but print nothing extra beyond what they themselves emit.
func runEvaluate(cmd *cobra.Command, filename string, useColor bool) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return exitUsage, err
	}
	defer file.Close()

	l, err := lexer.NewFromReader(file)
	if err != nil {
		return exitUsage, err
	}
	tokens := l.ScanTokens()
	if l.HadError {
		printDiagnostics(l.Errors, useColor)
		return exitLexParse, nil
	}

	p := parser.New(tokens)
	statements := p.ParseProgram()
	if p.HadError {
		printDiagnostics(p.Errors, useColor)
		return exitLexParse, nil
	}

	limits := loadLimits(filename)
	ev := interp.New(os.Stdout, limits)
	if err := ev.EvaluateTopLevel(statements); err != nil {
		fmt.Fprintln(os.Stderr, color.Colorize(err.Error(), color.Red, useColor))
		reportUndefinedVariableHint(ev, err, useColor)
		return exitRuntime, nil
	}
	return exitSuccess, nil
}

// reportUndefinedVariableHint prints a "did you mean" suggestion on a
// separate stderr line when err is an undefined-variable error and a
// similarly-named global exists.
func reportUndefinedVariableHint(ev *interp.Evaluator, err error, useColor bool) {
	undef, ok := err.(*interp.UndefinedVariableError)
	if !ok {
		return
	}
	if match, found := suggest.Closest(undef.Name, ev.Globals.Names()); found {
		fmt.Fprintln(os.Stderr, color.Colorize(fmt.Sprintf("Did you mean '%s'?", match), color.Yellow, useColor))
	}
}
