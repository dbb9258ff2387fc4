// Package lexer turns source text into a flat token stream.
//
// It follows the same read-ahead-by-one-rune shape as the teacher's
// runtime/lexer package (position/readPosition/ch fields, an explicit
// readChar step) but drops the multi-mode decorator-shell state machine:
// this language has no embedded shell content, so a single scanning mode
// suffices.
package lexer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/vinhtc27/interpreter/internal/token"
)

// Lexer is a single-pass, UTF-8 safe scanner. One rune of lookahead is
// buffered in ch; numeric literals peek a second rune to decide whether a
// '.' introduces a fractional part.
type Lexer struct {
	input string

	position     int // byte offset of ch
	readPosition int // byte offset of the next rune
	ch           rune
	line         int

	HadError bool
	Errors   []*LexError

	logger *slog.Logger
}

// New creates a Lexer over src, matching the file-at-once read the
// teacher's lexer.New does for an io.Reader (runtime/lexer/lexer.go:130).
func New(src string) *Lexer {
	l := &Lexer{input: src, line: 1, logger: newDebugLogger()}
	l.readChar()
	return l
}

// NewFromReader is a convenience constructor for driver code that already
// holds an io.Reader (an open file, stdin, ...).
func NewFromReader(r io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(string(data)), nil
}

func newDebugLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOX_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.position = l.readPosition
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.position = l.readPosition
	l.readPosition += size
	l.ch = r
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// ScanTokens runs the scanner to completion and returns the token list,
// always terminated by a single EOF token. HadError reports whether any
// lexical error was encountered; scanning continues past an error so
// multiple diagnostics (collected in Errors) can surface in one pass
// instead of stopping at the first fault.
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		tok, ok := l.nextToken()
		if ok {
			tokens = append(tokens, tok)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// nextToken scans and returns the next token, skipping whitespace,
// newlines, and comments first. The boolean result is false when the
// scanner consumed the character(s) but produced no token (an unexpected
// character or an unterminated string).
func (l *Lexer) nextToken() (token.Token, bool) {
	l.skipWhitespaceAndComments()

	line := l.line

	if l.ch == 0 {
		return token.Token{Kind: token.EOF, Lexeme: "", Line: line}, true
	}

	switch {
	case l.ch == '(':
		return l.emitRune(token.LEFT_PAREN, line), true
	case l.ch == ')':
		return l.emitRune(token.RIGHT_PAREN, line), true
	case l.ch == '{':
		return l.emitRune(token.LEFT_BRACE, line), true
	case l.ch == '}':
		return l.emitRune(token.RIGHT_BRACE, line), true
	case l.ch == ',':
		return l.emitRune(token.COMMA, line), true
	case l.ch == '.':
		return l.emitRune(token.DOT, line), true
	case l.ch == '-':
		return l.emitRune(token.MINUS, line), true
	case l.ch == '+':
		return l.emitRune(token.PLUS, line), true
	case l.ch == ';':
		return l.emitRune(token.SEMICOLON, line), true
	case l.ch == '*':
		return l.emitRune(token.STAR, line), true
	case l.ch == '/':
		return l.emitRune(token.SLASH, line), true
	case l.ch == '=':
		return l.emitOneOrTwo(line, '=', token.EQUAL, token.EQUAL_EQUAL), true
	case l.ch == '!':
		return l.emitOneOrTwo(line, '=', token.BANG, token.BANG_EQUAL), true
	case l.ch == '<':
		return l.emitOneOrTwo(line, '=', token.LESS, token.LESS_EQUAL), true
	case l.ch == '>':
		return l.emitOneOrTwo(line, '=', token.GREATER, token.GREATER_EQUAL), true
	case l.ch == '"':
		return l.scanString(line)
	case isDigit(l.ch):
		return l.scanNumber(line), true
	case isIdentStart(l.ch):
		return l.scanIdentifier(line), true
	default:
		l.reportError(line, fmt.Sprintf("Unexpected character: %c", l.ch))
		l.readChar()
		return token.Token{}, false
	}
}

func (l *Lexer) emitRune(kind token.Kind, line int) token.Token {
	lexeme := string(l.ch)
	l.readChar()
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// emitOneOrTwo handles the '=', '!', '<', '>' family: it consumes the
// current rune, and if the next rune is follow it also consumes that one
// and returns twoKind instead of oneKind.
func (l *Lexer) emitOneOrTwo(line int, follow rune, oneKind, twoKind token.Kind) token.Token {
	first := l.ch
	l.readChar()
	if l.ch == follow {
		lexeme := string(first) + string(l.ch)
		l.readChar()
		return token.Token{Kind: twoKind, Lexeme: lexeme, Line: line}
	}
	return token.Token{Kind: oneKind, Lexeme: string(first), Line: line}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == '\n':
			l.line++
			l.readChar()
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanString(startLine int) (token.Token, bool) {
	var b strings.Builder
	l.readChar() // consume opening quote

	for l.ch != '"' {
		if l.ch == 0 {
			l.reportError(l.line, "Unterminated string.")
			return token.Token{}, false
		}
		if l.ch == '\n' {
			l.line++
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote

	contents := b.String()
	lexeme := "\"" + contents + "\""
	return token.Token{Kind: token.STRING, Lexeme: lexeme, Literal: contents, Line: startLine}, true
}

func (l *Lexer) scanNumber(startLine int) token.Token {
	var b strings.Builder
	for isDigit(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		b.WriteRune(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			b.WriteRune(l.ch)
			l.readChar()
		}
	}
	lexeme := b.String()
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// Unreachable for input accepted by the loop above, but keep the
		// scanner total rather than panicking on a malformed literal.
		l.reportError(startLine, fmt.Sprintf("Invalid number: %s", lexeme))
	}
	return token.Token{Kind: token.NUMBER, Lexeme: lexeme, Literal: value, Line: startLine}
}

func (l *Lexer) scanIdentifier(startLine int) token.Token {
	var b strings.Builder
	for isIdentPart(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	// Normalize to NFC so visually identical identifiers that arrived in
	// different Unicode normal forms (e.g. combining vs. precomposed
	// accents) bind to the same variable in the environment.
	lexeme := norm.NFC.String(b.String())
	if kind, ok := token.Keywords[lexeme]; ok {
		return token.Token{Kind: kind, Lexeme: lexeme, Line: startLine}
	}
	return token.Token{Kind: token.IDENTIFIER, Lexeme: lexeme, Line: startLine}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r) || unicode.IsMark(r)
}

// reportError records a lexical fault as a *LexError and marks the scan
// as having failed. Diagnostics are collected rather than printed here so
// the caller can print them (optionally colored) once scanning finishes.
func (l *Lexer) reportError(line int, message string) {
	l.Errors = append(l.Errors, &LexError{Ln: line, Message: message})
	l.HadError = true
}
