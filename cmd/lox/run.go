package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vinhtc27/interpreter/internal/color"
	"github.com/vinhtc27/interpreter/internal/interp"
	"github.com/vinhtc27/interpreter/internal/lexer"
	"github.com/vinhtc27/interpreter/internal/parser"
	"github.com/vinhtc27/interpreter/internal/watch"
)

// runRun implements the "run" subcommand: scan, parse, execute; only
// `print` produces stdout output. With --watch it keeps re-running the
// script, starting the environment fresh each time, until interrupted.
func runRun(cmd *cobra.Command, filename string, useColor bool) (int, error) {
	watchFlag, _ := cmd.Flags().GetBool("watch")
	if !watchFlag {
		return executeOnce(filename, useColor)
	}

	ctx, cancel := newSignalContext()
	defer cancel()

	// Run once immediately on startup, then again on every subsequent
	// change, until the watch loop is interrupted.
	lastCode, err := executeOnce(filename, useColor)
	if err != nil {
		return lastCode, err
	}

	watchErr := watch.Run(ctx, filename, func() error {
		code, runErr := executeOnce(filename, useColor)
		lastCode = code
		return runErr
	})
	if watchErr != nil {
		return lastCode, watchErr
	}
	return lastCode, nil
}

func executeOnce(filename string, useColor bool) (int, error) {
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
	if err := ev.Run(statements); err != nil {
		fmt.Fprintln(os.Stderr, color.Colorize(err.Error(), color.Red, useColor))
		reportUndefinedVariableHint(ev, err, useColor)
		return exitRuntime, nil
	}
	return exitSuccess, nil
}
