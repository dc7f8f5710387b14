package stitch

import "math"

// sample is one candidate pixel for a canvas cell, tagged with the source
// row it came from so the compositor can prefer rows near the capture's
// vertical center.
type sample struct {
	row   int
	pixel Pixel
}

// composite resolves the final canvas from the contribution map. Returns
// the canvas and the number of gap pixels: cells with no source sample and
// no legal fallback, which are left fully transparent.
//
// Rows are composited in strictly increasing y order. The interior
// fallback reads the already-written canvas pixel two rows up, so the
// order is load-bearing, not cosmetic.
func composite(frames []*Frame, rows map[int][]Contribution, opts Options) (*Frame, int) {
	width := frames[0].width
	height := frames[0].height

	outputHeight := 0
	for y := range rows {
		if y+1 > outputHeight {
			outputHeight = y + 1
		}
	}
	canvas := NewFrame(width, outputHeight)

	middle := float64(height-1) / 2
	// The visible area of a round display is the inscribed circle, pulled
	// in by two pixels of bezel slop. For very short frames the radius
	// goes negative; squaring keeps the comparison meaningful either way.
	radius := float64(height)/2 - 2
	radiusSq := radius * radius

	gaps := 0
	onScreen := make([][]sample, width)
	offScreen := make([][]sample, width)

	for y := 0; y < outputHeight; y++ {
		for x := 0; x < width; x++ {
			onScreen[x] = onScreen[x][:0]
			offScreen[x] = offScreen[x][:0]
		}

		for _, c := range rows[y] {
			src := frames[c.Frame]
			dy := float64(c.Row) - middle
			for x := 0; x < width; x++ {
				s := sample{row: c.Row, pixel: src.Pixel(x, c.Row)}
				if !opts.CircularMask || onScreenAt(float64(x)-middle, dy, radiusSq) {
					onScreen[x] = append(onScreen[x], s)
				} else {
					offScreen[x] = append(offScreen[x], s)
				}
			}
		}

		for x := 0; x < width; x++ {
			p, ok := resolvePixel(canvas, onScreen[x], offScreen[x], x, y, height, outputHeight, middle, opts)
			if !ok {
				gaps++
			}
			canvas.SetPixel(x, y, p)
		}
	}
	return canvas, gaps
}

// onScreenAt reports whether a point at (dx, dy) from the display center
// lies within the visible circle of a round screen.
func onScreenAt(dx, dy, radiusSq float64) bool {
	return dx*dx+dy*dy < radiusSq
}

// resolvePixel picks the most suitable color for canvas cell (x, y).
//
// Preference order: the on-screen sample whose source row is closest to
// the capture's vertical middle; failing that, inside the interior band
// the pixel already written at (x, y−2); failing that, transparency if
// enabled, else the nearest-to-middle off-screen sample. The second
// return value is false only when no rule applies at all.
func resolvePixel(canvas *Frame, on, off []sample, x, y, frameHeight, outputHeight int, middle float64, opts Options) (Pixel, bool) {
	if len(on) > 0 {
		return closestToMiddle(on, middle), true
	}

	// Near the very top and bottom of the composite no frame can supply a
	// good corner sample; everywhere else a resolved pixel sits two rows
	// up, on the far side of the masked arc.
	interior := float64(y) >= float64(frameHeight)/2 &&
		float64(y) < float64(outputHeight)-float64(frameHeight)/2
	if interior {
		return canvas.Pixel(x, y-2), true
	}

	if opts.Transparency {
		return Transparent, true
	}
	if len(off) > 0 {
		return closestToMiddle(off, middle), true
	}
	return Transparent, false
}

// closestToMiddle returns the pixel of the sample whose source row is
// nearest the capture's vertical center; the first seen wins ties. Rows
// near the center are least distorted by the rounded screen edge, so
// among overlapping captures the most central sample is preferred.
func closestToMiddle(samples []sample, middle float64) Pixel {
	best := samples[0]
	bestDist := math.Abs(float64(best.row) - middle)
	for _, s := range samples[1:] {
		if d := math.Abs(float64(s.row) - middle); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best.pixel
}
