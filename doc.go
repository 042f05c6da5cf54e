// Package fuzzymatch finds the candidate string most similar to a query,
// optionally returning an associated payload instead of the string itself.
//
// The package is a library primitive for approximate lookup: matching user
// input against a known vocabulary when exact lookup fails. It implements two
// similarity algorithms and a two-phase selection protocol over them.
//
// # Algorithms
//
// Both algorithms produce a score in [0.0, 1.0], rounded to 5 decimal places:
//
//   - SorensenDice scores the overlap of adjacent character bigrams. Bigrams
//     containing a space are discarded, so word boundaries act as noise
//     rather than content. Coarse but cheap; used as the primary filter.
//   - Levenshtein scores normalized edit distance: 1 - distance/max(len).
//     Finer-grained and more expensive (O(n*m)); used to break ties among
//     candidates the primary algorithm cannot separate.
//
// # Usage
//
// Basic usage with the default algorithm pair:
//
//	haystack := []fuzzymatch.Candidate[int]{
//	    {Name: "rust", Value: 0},
//	    {Name: "java", Value: 1},
//	    {Name: "lisp", Value: 2},
//	}
//	if v, ok := fuzzymatch.Match("bust", haystack); ok {
//	    fmt.Println(v) // 0
//	}
//
// Match returns ok=false when no single candidate wins: either nothing in the
// haystack resembles the needle, or two candidates tie on both algorithms. An
// unresolved tie is deliberately reported as no match rather than an
// arbitrary pick.
//
// MatchWith accepts a custom algorithm pair, e.g. Levenshtein first for
// short, noisy strings. Raw weights are available directly through each
// algorithm's Similarity method.
//
// # Thread Safety
//
// Algorithm instances own reusable scratch storage and are NOT safe for
// concurrent use. Keep one instance per goroutine, or let Match construct
// fresh instances per call.
package fuzzymatch
