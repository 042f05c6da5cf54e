package fuzzymatch

import (
	"math"
	"unicode/utf8"
)

// Algorithm computes a similarity score for a pair of strings.
//
// Implementations must satisfy three invariants: identical strings score
// exactly 1.0, unequal single-character strings score exactly 0.0, and any
// comparison involving an empty string scores exactly 0.0. Scores fall in
// [0.0, 1.0]. The algorithms in this package round to 5 decimal places;
// external implementations are not required to.
//
// Implementations may keep reusable scratch storage between calls, so a
// single instance must not serve two match operations concurrently.
type Algorithm interface {
	Similarity(a, b string) float32
}

// trivialScore handles the cases every algorithm scores identically: equal
// strings, empty operands, and unequal single-character pairs. The equality
// check runs first so two empty strings score 1.0, not 0.0.
func trivialScore(a, b string) (float32, bool) {
	switch {
	case a == b:
		return 1, true
	case a == "" || b == "":
		return 0, true
	case utf8.RuneCountInString(a) == 1 && utf8.RuneCountInString(b) == 1:
		return 0, true
	}
	return 0, false
}

// roundScore rounds a similarity score to 5 decimal places.
func roundScore(v float32) float32 {
	return float32(math.Round(float64(v)*100000) / 100000)
}
