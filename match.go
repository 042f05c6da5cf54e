package fuzzymatch

// Candidate pairs a name with an opaque payload. Name is the text compared
// against the needle; Value is returned verbatim when the candidate wins.
type Candidate[T any] struct {
	Name  string
	Value T
}

// Match finds the candidate most similar to needle using the default
// algorithm pair: SorensenDice picks the best-scoring candidates and
// Levenshtein breaks ties among them.
//
// The boolean reports whether a single best candidate was found. A tie that
// survives both algorithms returns false rather than an arbitrary pick.
//
// Match panics if haystack is empty; an empty haystack indicates a caller
// bug upstream, not a legitimate "no match" outcome.
func Match[T any](needle string, haystack []Candidate[T]) (T, bool) {
	if len(haystack) == 0 {
		panic("fuzzymatch: Match called with empty haystack")
	}
	return MatchWith(needle, haystack, NewSorensenDice(), NewLevenshtein())
}

// MatchWith is Match with a caller-chosen algorithm pair, e.g. Levenshtein
// first for short, noisy strings. The primary algorithm scores every
// candidate; the secondary scores only the candidates the primary could not
// separate.
//
// MatchWith panics if haystack is empty.
func MatchWith[T any](needle string, haystack []Candidate[T], primary, secondary Algorithm) (T, bool) {
	var zero T
	if len(haystack) == 0 {
		panic("fuzzymatch: MatchWith called with empty haystack")
	}

	winners := bestCandidates(needle, haystack, primary)
	switch len(winners) {
	case 0:
		return zero, false
	case 1:
		return winners[0].Value, true
	}

	// Rescore only the first-phase winners. The running maximum starts over
	// at zero; the secondary scores are on their own scale.
	winners = bestCandidates(needle, winners, secondary)
	if len(winners) != 1 {
		return zero, false
	}
	return winners[0].Value, true
}

// bestCandidates returns every candidate sharing the highest score against
// needle, in input order. A strictly higher score restarts the winner set; an
// equal score appends, so a scan where nothing beats 0.0 still collects every
// candidate.
func bestCandidates[T any](needle string, cands []Candidate[T], algo Algorithm) []Candidate[T] {
	var highest float32
	winners := make([]Candidate[T], 0, 1)
	for _, c := range cands {
		switch score := algo.Similarity(needle, c.Name); {
		case score > highest:
			highest = score
			winners = append(winners[:0], c)
		case score == highest:
			winners = append(winners, c)
		}
	}
	return winners
}
