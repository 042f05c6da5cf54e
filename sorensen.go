package fuzzymatch

import "unicode/utf8"

// space never contributes to a bigram; it marks word-boundary noise.
const space = ' '

// bigram is an ordered pair of adjacent runes.
type bigram [2]rune

// SorensenDice scores string pairs by the Sorensen-Dice coefficient of their
// bigram sets: 2*|intersection| / (|a bigrams| + |b bigrams|).
//
// The instance owns reusable scratch storage for bigram extraction, so
// keeping one instance across many comparisons avoids reallocating it. Not
// safe for concurrent use.
type SorensenDice struct {
	window []rune
	setA   map[bigram]struct{}
	setB   map[bigram]struct{}
}

// NewSorensenDice creates a SorensenDice algorithm with empty scratch
// storage.
func NewSorensenDice() *SorensenDice {
	return &SorensenDice{
		setA: make(map[bigram]struct{}),
		setB: make(map[bigram]struct{}),
	}
}

// Similarity implements the Algorithm interface.
func (s *SorensenDice) Similarity(a, b string) float32 {
	if score, done := trivialScore(a, b); done {
		return score
	}

	as := s.bigramSet(s.setA, a)
	bs := s.bigramSet(s.setB, b)

	// All-space inputs of length >= 2 produce two empty sets; score them
	// 0.0 rather than dividing by zero.
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}

	intersect := 0
	for bg := range as {
		if _, ok := bs[bg]; ok {
			intersect++
		}
	}

	return roundScore(2 * float32(intersect) / float32(len(as)+len(bs)))
}

// bigramSet clears set and fills it with the space-free bigrams of str.
func (s *SorensenDice) bigramSet(set map[bigram]struct{}, str string) map[bigram]struct{} {
	clear(set)

	// The sliding window below needs at least one full rune pair; anything
	// shorter has an empty bigram set by definition.
	if utf8.RuneCountInString(str) < 2 {
		return set
	}

	win := s.window[:0]
	for _, r := range str {
		win = append(win, r)
	}
	s.window = win

	for i := 0; i+1 < len(win); i++ {
		if win[i] == space || win[i+1] == space {
			continue
		}
		set[bigram{win[i], win[i+1]}] = struct{}{}
	}
	return set
}
