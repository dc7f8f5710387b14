package stitch

// Contribution identifies one source row available to a canvas row.
type Contribution struct {
	// Frame is the index of the source frame in the input sequence.
	Frame int
	// Row is the source row within that frame.
	Row int
}

// aggregate runs the offset matcher over consecutive frame hashes and
// accumulates the results into a contribution map: for every absolute
// canvas row, the (frame, row) pairs that can supply its pixels, ordered
// by frame index then row.
//
// Frames are processed strictly in index order. Each offset is relative
// to the immediately preceding frame, so the absolute offset is a running
// sum; cumulative drift is accepted rather than corrected with a global
// re-alignment pass.
func aggregate(hashes [][]uint64) (rows map[int][]Contribution, matches []MatchResult, absolute []int) {
	rows = make(map[int][]Contribution)
	matches = make([]MatchResult, len(hashes))
	absolute = make([]int, len(hashes))

	offset := 0
	for i, rh := range hashes {
		if i > 0 {
			m := MatchOffset(hashes[i-1], rh)
			Logger().Debug("matched frame against predecessor",
				"frame", i, "score", m.Score, "offset", m.Offset)
			matches[i] = m
			offset += m.Offset
		}
		absolute[i] = offset
		for y := range rh {
			rows[y+offset] = append(rows[y+offset], Contribution{Frame: i, Row: y})
		}
	}
	return rows, matches, absolute
}
