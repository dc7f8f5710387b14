// Command wearstitch takes Wear screenshots using adb and stitches them
// together into one tall image.
//
// By default it captures a new sequence, scrolling between screenshots
// until the screen stops changing, then aligns and composites the
// captures. With -no-capture it stitches an existing numbered sequence
// instead.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	stitch "github.com/google/android-wear-stitch-script"
	"github.com/google/android-wear-stitch-script/capture"
	"github.com/google/android-wear-stitch-script/internal/imageio"
)

// Control codes for coloring terminal status output.
const (
	colorFail = "\033[91m"
	colorInfo = "\033[94m"
	colorOff  = "\033[0m"
)

func main() {
	var (
		outDir     = flag.String("out-dir", ".", "directory to output to")
		filePrefix = flag.String("file-prefix", "stitch", "output file prefix; an auto-incrementing index is appended so previous results are not overwritten")
		fileName   = flag.String("file-name", "", "exact output file name, overwritten if present; overrides -file-prefix")
		adbArgs    = flag.String("adb-args", "", `extra arguments for adb, e.g. "-e" or "-s SERIAL"`)

		noCapture    = flag.Bool("no-capture", false, "do not capture new images, stitch existing ones")
		square       = flag.Bool("square", false, "square display: skip the round-corner masking")
		transparency = flag.Bool("transparency", false, "use alpha transparency for corner pixels a round screen chops off")
		delayMS      = flag.Int("inter-capture-delay", 1000, "pause between captures in ms, letting the scrollbar disappear")
		keepCaptures = flag.Bool("keep-captures", false, "keep the intermediary captured screens")
		maxCaptures  = flag.Int("max-captures", 50, "maximum number of screens to capture")
		fuzzyEnd     = flag.Int("fuzzy-end", -1, "also end capturing when consecutive screens are within this perceptual hash distance; -1 disables")

		scale   = flag.Float64("scale", 1, "resample the stitched output by this factor")
		verbose = flag.Bool("verbose", false, "log per-frame match diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		stitch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	layout, err := capture.SetupFiles(*outDir, *filePrefix, *fileName, !*noCapture, *maxCaptures)
	if err != nil {
		fail(err.Error())
	}

	count := layout.NumFiles
	if !*noCapture {
		// Stale captures from an aborted run would stitch into the new
		// sequence; clear them first.
		if err := capture.RemoveCaptures(layout.Dir, layout.Prefix); err != nil {
			fail(err.Error())
		}
		count, err = capture.Run(&capture.ADB{Args: *adbArgs}, capture.Options{
			Dir:            layout.Dir,
			Prefix:         layout.Prefix,
			Max:            *maxCaptures,
			Delay:          time.Duration(*delayMS) * time.Millisecond,
			FuzzyThreshold: *fuzzyEnd,
		})
		if err != nil {
			fail(err.Error())
		}
	}

	frames := make([]*stitch.Frame, count)
	for i := range frames {
		frames[i], err = imageio.LoadFrame(capture.FilePath(layout.Dir, layout.Prefix, *maxCaptures, i))
		if err != nil {
			fail(err.Error())
		}
	}

	canvas, diag, err := stitch.Stitch(frames, stitch.Options{
		CircularMask: !*square,
		Transparency: *transparency,
	})
	if err != nil {
		fail(err.Error())
	}
	stitch.Logger().Info("stitched", "frames", count, "height", diag.CanvasHeight)

	if canvas, err = imageio.ScaleFrame(canvas, *scale); err != nil {
		fail(err.Error())
	}
	if err := imageio.SaveFramePNG(layout.OutFile, canvas); err != nil {
		fail(err.Error())
	}

	fmt.Printf("\n%sWrote %s%s\n", colorInfo, layout.OutFile, colorOff)

	if !*keepCaptures {
		if err := capture.RemoveCaptures(layout.Dir, layout.Prefix); err != nil {
			fail(err.Error())
		}
	}
}

func fail(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorFail, msg, colorOff)
	os.Exit(1)
}
