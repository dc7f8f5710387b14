// Package stitch aligns a sequence of overlapping, vertically-scrolled
// screen captures and composites them into a single seamless image.
//
// # Overview
//
// Wearable screens are too small to show a whole scrolling UI at once.
// Given an ordered sequence of captures taken while scrolling down, the
// package fingerprints each row of each frame, finds the vertical offset
// at which consecutive frames line up, and overlays every frame onto one
// tall output canvas. Round displays are handled by masking away the
// corner pixels that the physical screen chops off.
//
// # Quick Start
//
//	frames := []*stitch.Frame{ ... } // decoded captures, equal dimensions
//	canvas, diag, err := stitch.Stitch(frames, stitch.Options{
//	    CircularMask: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// canvas implements image.Image; diag carries per-frame offsets.
//
// # Pipeline
//
// The pipeline runs in four stages, strictly in frame order:
//   - RowHashes: per-row content fingerprints over the central column band
//   - MatchOffset: exhaustive vertical-shift search between frame pairs
//   - aggregation: cumulative offsets to absolute canvas rows
//   - compositing: per-pixel sample selection with round-mask fallbacks
//
// Frames must be supplied in capture order: each offset is computed
// relative to the immediately preceding frame, not to the first one.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive per-frame
// match diagnostics and compositing warnings via log/slog.
package stitch
