package main

import (
	"fmt"
	"os"

	"github.com/vinhtc27/interpreter/internal/color"
)

// lineError is anything that behaves like a *lexer.LexError or
// *parser.ParseError: an error tied to a source line.
type lineError interface {
	error
	Line() int
}

// printDiagnostics writes one line per error to stderr, colored red when
// useColor is enabled. Collecting errors in the scanner/parser instead of
// printing them inline is what lets this be the single place coloring is
// applied.
func printDiagnostics[T lineError](errs []T, useColor bool) {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, color.Colorize(e.Error(), color.Red, useColor))
	}
}
