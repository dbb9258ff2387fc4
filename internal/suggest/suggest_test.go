package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest_FindsNearTypo(t *testing.T) {
	match, ok := Closest("evaluat", []string{"tokenize", "parse", "evaluate", "run"})
	assert.True(t, ok)
	assert.Equal(t, "evaluate", match)
}

func TestClosest_NoCandidatesWithinDistance(t *testing.T) {
	_, ok := Closest("xyz123completelydifferent", []string{"tokenize", "parse", "evaluate", "run"})
	assert.False(t, ok)
}

func TestClosest_EmptyKnownListNeverMatches(t *testing.T) {
	_, ok := Closest("anything", nil)
	assert.False(t, ok)
}
