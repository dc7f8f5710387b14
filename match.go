package stitch

import (
	"github.com/google/android-wear-stitch-script/internal/parallel"
)

// MatchResult records the outcome of aligning one frame against its
// immediate predecessor.
type MatchResult struct {
	// Score is the number of rows whose hashes agree at the chosen offset.
	Score int
	// Offset is how many rows the frame has scrolled down relative to its
	// predecessor.
	Offset int
}

// MatchOffset finds how far current has scrolled down relative to previous.
//
// Every candidate offset o in [0, H) is scored by counting indices z in
// [0, H−o) with current[z] == previous[z+o]; the (score, offset) pair that
// is lexicographically largest wins, so equal scores prefer the larger
// offset. The search is O(H²) and exhaustive on purpose: screen content
// with large flat regions produces many near-maximal offsets, and anything
// cleverer than counting exact hash matches tends to pick the wrong one.
//
// Both slices must have the same length H. Pure function; candidate
// offsets are scored concurrently and reduced deterministically.
func MatchOffset(previous, current []uint64) MatchResult {
	h := len(previous)
	if h == 0 {
		return MatchResult{}
	}

	scores := make([]int, h)
	parallel.For(h, func(offset int) {
		n := 0
		for z := 0; z < h-offset; z++ {
			if current[z] == previous[z+offset] {
				n++
			}
		}
		scores[offset] = n
	})

	best := MatchResult{Score: -1}
	for offset, score := range scores {
		// >= keeps the later candidate, so ties go to the larger offset.
		if score >= best.Score {
			best = MatchResult{Score: score, Offset: offset}
		}
	}
	return best
}
