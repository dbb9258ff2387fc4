// Package suggest produces "did you mean" hints for undefined-variable
// and unknown-subcommand diagnostics, using fuzzy string matching rather
// than exact lookups. The teacher ships github.com/lithammer/fuzzysearch
// as a runtime dependency for its own decorator-name suggestions; this
// package is the interpreter's equivalent for variable names and CLI
// subcommands.
package suggest

import "github.com/lithammer/fuzzysearch/fuzzy"

// maxDistance bounds how different a candidate may be from name before it
// is no longer considered a plausible typo.
const maxDistance = 3

// Closest returns the candidate in known that is the closest fuzzy match
// to name, and true if one was found within maxDistance. known with zero
// entries always returns ("", false).
func Closest(name string, known []string) (string, bool) {
	if len(known) == 0 {
		return "", false
	}

	ranks := fuzzy.RankFindNormalizedFold(name, known)
	if len(ranks) == 0 {
		return "", false
	}

	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	if best.Distance > maxDistance {
		return "", false
	}
	return best.Target, true
}
