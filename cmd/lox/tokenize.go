package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vinhtc27/interpreter/internal/cache"
	"github.com/vinhtc27/interpreter/internal/lexer"
	"github.com/vinhtc27/interpreter/internal/token"
)

// runTokenize implements the "tokenize" subcommand: scan only, one
// token per line, tokens are printed even when a lex error occurred
// (only the exit code changes). With --use-cache it tries a CBOR token
// cache first and only re-lexes on a miss; --emit-cache always writes
// the tokens actually produced back out, whichever path made them.
func runTokenize(cmd *cobra.Command, filename string, useColor bool) (int, error) {
	source, err := readSource(filename)
	if err != nil {
		return exitUsage, err
	}

	var tokens []token.Token
	var lexErrors []*lexer.LexError
	hadError := false

	if useCachePath, _ := cmd.Flags().GetString("use-cache"); useCachePath != "" {
		if cached, hit, err := cache.Load(useCachePath, source); err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		} else if hit {
			tokens = cached
		}
	}

	if tokens == nil {
		l := lexer.New(source)
		tokens = l.ScanTokens()
		hadError = l.HadError
		lexErrors = l.Errors
	}

	for _, tok := range tokens {
		fmt.Println(formatTokenLine(tok))
	}

	if cachePath, _ := cmd.Flags().GetString("emit-cache"); cachePath != "" {
		if err := cache.Save(cachePath, source, tokens); err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}
	}

	printDiagnostics(lexErrors, useColor)

	if hadError {
		return exitLexParse, nil
	}
	return exitSuccess, nil
}

// formatTokenLine renders a single token as "<KIND> <lexeme> <literal>",
// where literal is "null" for every token kind except STRING (decoded
// contents) and NUMBER (float64 with at least one decimal digit).
func formatTokenLine(tok token.Token) string {
	var literal string
	switch tok.Kind {
	case token.STRING:
		literal = tok.Literal.(string)
	case token.NUMBER:
		literal = formatNumberLiteral(tok.Literal.(float64))
	default:
		literal = "null"
	}
	return fmt.Sprintf("%s %s %s", tok.Kind, tok.Lexeme, literal)
}

func formatNumberLiteral(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
