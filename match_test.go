package fuzzymatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBasic(t *testing.T) {
	haystack := []Candidate[int]{
		{Name: "rust", Value: 0},
		{Name: "java", Value: 1},
		{Name: "lisp", Value: 2},
	}

	v, ok := Match("bust", haystack)
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestMatchExactName(t *testing.T) {
	haystack := []Candidate[string]{
		{Name: "save", Value: "cmd.save"},
		{Name: "saveas", Value: "cmd.saveas"},
		{Name: "load", Value: "cmd.load"},
	}

	v, ok := Match("save", haystack)
	require.True(t, ok)
	assert.Equal(t, "cmd.save", v)
}

// Both candidates share the needle's bigram overlap, so the primary phase
// cannot separate them; edit distance can. "abcdxy" is two substitutions
// away from the needle while "xabcdy" needs three edits.
func TestMatchTieBreak(t *testing.T) {
	sd := NewSorensenDice()
	lev := NewLevenshtein()
	require.Equal(t, sd.Similarity("abcdef", "abcdxy"), sd.Similarity("abcdef", "xabcdy"))
	require.Greater(t, lev.Similarity("abcdef", "abcdxy"), lev.Similarity("abcdef", "xabcdy"))

	haystack := []Candidate[string]{
		{Name: "xabcdy", Value: "shifted"},
		{Name: "abcdxy", Value: "substituted"},
	}

	v, ok := Match("abcdef", haystack)
	require.True(t, ok)
	assert.Equal(t, "substituted", v)
}

// "rusty" and "rusts" tie against "rust" on both algorithms; the matcher
// must stay silent rather than pick one arbitrarily.
func TestMatchUnresolvedTie(t *testing.T) {
	haystack := []Candidate[int]{
		{Name: "rusty", Value: 1},
		{Name: "rusts", Value: 2},
	}

	v, ok := Match("rust", haystack)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestMatchNothingSimilar(t *testing.T) {
	haystack := []Candidate[int]{
		{Name: "rust", Value: 0},
		{Name: "java", Value: 1},
		{Name: "lisp", Value: 2},
	}

	// Every candidate scores 0.0 on both algorithms, so all of them tie.
	_, ok := Match("zz", haystack)
	assert.False(t, ok)
}

// A lone candidate wins even at score 0.0: the winner set collects
// candidates matching the running maximum, which starts at zero.
func TestMatchSingleCandidate(t *testing.T) {
	haystack := []Candidate[int]{{Name: "zzz", Value: 7}}

	v, ok := Match("x", haystack)
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestMatchUTF8(t *testing.T) {
	haystack := []Candidate[int]{
		{Name: "日本語", Value: 1},
		{Name: "中文", Value: 2},
	}

	v, ok := Match("日本", haystack)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestMatchWithSwappedAlgorithms(t *testing.T) {
	haystack := []Candidate[int]{
		{Name: "rust", Value: 0},
		{Name: "java", Value: 1},
		{Name: "lisp", Value: 2},
	}

	v, ok := MatchWith("bust", haystack, NewLevenshtein(), NewSorensenDice())
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestMatchEmptyHaystackPanics(t *testing.T) {
	assert.PanicsWithValue(t, "fuzzymatch: Match called with empty haystack", func() {
		Match[int]("needle", nil)
	})
	assert.PanicsWithValue(t, "fuzzymatch: MatchWith called with empty haystack", func() {
		MatchWith[int]("needle", nil, NewSorensenDice(), NewLevenshtein())
	})
}
