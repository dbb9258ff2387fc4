package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhtc27/interpreter/internal/token"
)

func sampleTokens() []token.Token {
	return []token.Token{
		{Kind: token.NUMBER, Lexeme: "1", Literal: 1.0, Line: 1},
		{Kind: token.PLUS, Lexeme: "+", Line: 1},
		{Kind: token.NUMBER, Lexeme: "2", Literal: 2.0, Line: 1},
		{Kind: token.EOF, Line: 1},
	}
}

func TestSaveAndLoad_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.cbor")
	source := "1 + 2"
	tokens := sampleTokens()

	require.NoError(t, Save(path, source, tokens))

	loaded, hit, err := Load(path, source)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, tokens, loaded)
}

func TestLoad_MismatchedSourceIsAMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.cbor")
	require.NoError(t, Save(path, "1 + 2", sampleTokens()))

	_, hit, err := Load(path, "1 + 3")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestLoad_MissingFileIsAMissNotAnError(t *testing.T) {
	_, hit, err := Load(filepath.Join(t.TempDir(), "absent.cbor"), "1 + 2")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFingerprint_DifferentSourceDifferentFingerprint(t *testing.T) {
	assert.NotEqual(t, Fingerprint("a"), Fingerprint("b"))
	assert.Equal(t, Fingerprint("a"), Fingerprint("a"))
}
