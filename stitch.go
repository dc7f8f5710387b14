package stitch

import "errors"

// Input validation errors.
var (
	// ErrNoFrames is returned when the input sequence is empty.
	ErrNoFrames = errors.New("stitch: no frames supplied")

	// ErrFrameSizeMismatch is returned when frames differ in width or
	// height. The offset search and the circular mask both assume the
	// capture geometry is constant across the sequence.
	ErrFrameSizeMismatch = errors.New("stitch: frames differ in size")
)

// Diagnostics describes how the pipeline aligned and composited a run.
// Informational only; the canvas is the contractual output.
type Diagnostics struct {
	// Matches holds the per-frame alignment results. Matches[0] is the
	// zero value: the first frame has no predecessor to match against.
	Matches []MatchResult

	// AbsoluteOffsets is the cumulative offset of each frame relative to
	// frame 0. AbsoluteOffsets[0] is always 0.
	AbsoluteOffsets []int

	// CanvasHeight is the height of the composited output in rows.
	CanvasHeight int

	// DegenerateHash reports that the frames were too narrow for the row
	// hasher to sample any column. Alignment still ran but is unreliable.
	DegenerateHash bool

	// GapPixels counts canvas cells that had no source sample and no
	// legal fallback; they are left fully transparent.
	GapPixels int
}

// Stitch aligns the captured frames and composites them into one canvas.
//
// Frames must be non-empty, share identical dimensions, and appear in
// capture order. The returned canvas has the frames' width and a height
// determined by the accumulated scroll offsets. Stitch is a pure function
// of its inputs; diagnostics are also reported through the package logger.
func Stitch(frames []*Frame, opts Options) (*Frame, *Diagnostics, error) {
	if len(frames) == 0 {
		return nil, nil, ErrNoFrames
	}
	width, height := frames[0].width, frames[0].height
	for _, f := range frames[1:] {
		if f.width != width || f.height != height {
			return nil, nil, ErrFrameSizeMismatch
		}
	}

	diag := &Diagnostics{}
	if DegenerateBand(width) {
		diag.DegenerateHash = true
		Logger().Warn("frame too narrow for the hash band; alignment may be poor",
			"width", width)
	}

	hashes := make([][]uint64, len(frames))
	for i, f := range frames {
		hashes[i] = RowHashes(f)
	}

	rows, matches, absolute := aggregate(hashes)
	diag.Matches = matches
	diag.AbsoluteOffsets = absolute

	canvas, gaps := composite(frames, rows, opts)
	diag.CanvasHeight = canvas.height
	diag.GapPixels = gaps
	if gaps > 0 {
		Logger().Warn("canvas cells had no source sample; left transparent",
			"count", gaps)
	}
	Logger().Info("composited output",
		"width", width, "height", canvas.height, "frames", len(frames))

	return canvas, diag, nil
}
