package stitch

import (
	"github.com/google/android-wear-stitch-script/internal/parallel"
)

// hashMultiplier is the Horner-scheme polynomial base for row hashes.
const hashMultiplier = 31

// hashBand returns the half-open column range [lo, hi) sampled by the row
// hasher: the central 40% of the row. Left and right edges are excluded
// because a round screen cuts them off, which would otherwise make
// identical rows hash differently between captures.
func hashBand(width int) (lo, hi int) {
	return int(float64(width) * 0.3), int(float64(width) * 0.7)
}

// DegenerateBand reports whether width is too narrow for the row hasher to
// sample any column. Every row of such a frame hashes to the seed value 1,
// which still aligns deterministically but cannot distinguish rows.
func DegenerateBand(width int) bool {
	lo, hi := hashBand(width)
	return lo >= hi
}

// RowHashes returns one content fingerprint per row of f.
//
// Each hash is a Horner-scheme polynomial over the pixels of the central
// column band, seeded with 1: hash = hash*31 + (R<<16 | G<<8 | B), with
// uint64 wraparound supplying the mod 2^64. Alpha is ignored. The result
// depends only on pixels inside the band.
//
// Rows carry no mutual dependency and are hashed concurrently; the output
// is deterministic regardless of scheduling.
func RowHashes(f *Frame) []uint64 {
	lo, hi := hashBand(f.width)
	hashes := make([]uint64, f.height)
	parallel.For(f.height, func(y int) {
		h := uint64(1)
		base := y * f.width * 4
		for x := lo; x < hi; x++ {
			i := base + x*4
			v := uint64(f.data[i])<<16 | uint64(f.data[i+1])<<8 | uint64(f.data[i+2])
			h = h*hashMultiplier + v
		}
		hashes[y] = h
	})
	return hashes
}
