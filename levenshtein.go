package fuzzymatch

// Levenshtein scores string pairs by normalized edit distance:
// 1 - distance/max(len), where distance is the minimum number of
// single-character insertions, deletions, and substitutions turning one
// string into the other, and lengths are counted in runes.
//
// The normalization means two strings one edit apart are judged more similar
// the longer they are. Finer-grained than bigram overlap but O(n*m), so the
// default selector runs it only on the candidates that survive the primary
// phase.
//
// The instance owns reusable scratch rows for the dynamic program. Not safe
// for concurrent use.
type Levenshtein struct {
	runesA []rune
	runesB []rune
	prev   []int
	curr   []int
}

// NewLevenshtein creates a Levenshtein algorithm with empty scratch storage.
func NewLevenshtein() *Levenshtein {
	return &Levenshtein{}
}

// Similarity implements the Algorithm interface.
func (l *Levenshtein) Similarity(a, b string) float32 {
	if score, done := trivialScore(a, b); done {
		return score
	}

	l.runesA = appendRunes(l.runesA[:0], a)
	l.runesB = appendRunes(l.runesB[:0], b)
	ar, br := l.runesA, l.runesB
	n, m := len(ar), len(br)

	// Two rows of the (n+1) x (m+1) table suffice: each cell reads only the
	// row above and the cell to its left.
	if cap(l.prev) < m+1 {
		l.prev = make([]int, m+1)
		l.curr = make([]int, m+1)
	}
	prev, curr := l.prev[:m+1], l.curr[:m+1]

	// Base row: cost of building a prefix of b from an empty string.
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	distance := prev[m]
	return roundScore(1 - float32(distance)/float32(max(n, m)))
}

// appendRunes appends the runes of s to buf, reusing its capacity.
func appendRunes(buf []rune, s string) []rune {
	for _, r := range s {
		buf = append(buf, r)
	}
	return buf
}
