// Package cache serializes a scanned token stream to disk so repeated
// tokenize invocations of an unchanged script can skip re-lexing; the
// evaluate and run subcommands always scan from source.
// It pairs github.com/fxamacker/cbor/v2 (compact binary encoding, the
// way the teacher serializes its plan/IR data in core/planfmt) with a
// blake2b fingerprint of the source text (golang.org/x/crypto/blake2b,
// also a teacher dependency) that invalidates the cache the moment the
// script changes.
package cache

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/vinhtc27/interpreter/internal/token"
)

// entry is the on-disk cache payload.
type entry struct {
	Fingerprint [32]byte
	Tokens      []token.Token
}

// Fingerprint hashes source with blake2b-256, used both to tag a cache
// entry on write and to validate it on read.
func Fingerprint(source string) [32]byte {
	return blake2b.Sum256([]byte(source))
}

// Save writes tokens to path, tagged with source's fingerprint.
func Save(path string, source string, tokens []token.Token) error {
	e := entry{Fingerprint: Fingerprint(source), Tokens: tokens}
	data, err := cbor.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cache: writing %s: %w", path, err)
	}
	return nil
}

// Load reads a cache entry from path and returns its tokens if, and only
// if, its fingerprint matches source. A missing file, decode failure, or
// fingerprint mismatch all result in (nil, false, nil): the caller's
// recourse is simply to re-lex, never to treat a cache miss as fatal.
func Load(path string, source string) ([]token.Token, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: reading %s: %w", path, err)
	}

	var e entry
	if err := cbor.Unmarshal(data, &e); err != nil {
		return nil, false, nil
	}

	if e.Fingerprint != Fingerprint(source) {
		return nil, false, nil
	}
	return e.Tokens, true, nil
}
