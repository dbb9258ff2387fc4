package main

import (
	"fmt"
	"os"

	"github.com/vinhtc27/interpreter/internal/ast"
	"github.com/vinhtc27/interpreter/internal/lexer"
	"github.com/vinhtc27/interpreter/internal/parser"
)

// runParse implements the "parse" subcommand: scan, then parse, then
// print one statement per line in canonical form. A lex error aborts
// before parsing is attempted.
func runParse(filename string, useColor bool) (int, error) {
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

	for _, stmt := range statements {
		fmt.Println(ast.PrintStatement(stmt))
	}
	return exitSuccess, nil
}
