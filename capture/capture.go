// Package capture drives a wearable device through adb, pulling one
// screenshot per scroll step until the screen stops changing. The stitch
// package consumes the resulting numbered files; everything here is plain
// process and file plumbing with no alignment logic.
package capture

import (
	"bytes"
	"crypto/md5"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	// adb screencap produces PNGs; decode them for perceptual hashing.
	_ "image/png"

	"github.com/corona10/goimagehash"

	stitch "github.com/google/android-wear-stitch-script"
)

// ErrCaptureFailed is returned when a screenshot never arrives on the
// local filesystem, usually because no device is connected.
var ErrCaptureFailed = errors.New("capture: failed to capture screenshot, is the device connected?")

// Options configures a capture run.
type Options struct {
	// Dir is the local directory receiving the numbered captures.
	Dir string
	// Prefix names the capture files: <Prefix>NN.png.
	Prefix string
	// Max bounds the number of captures when the end of the scrollable
	// content is never detected.
	Max int
	// Delay is the pause between captures, giving the scrollbar time to
	// fade so it does not poison the row hashes.
	Delay time.Duration
	// FuzzyThreshold additionally ends the run when consecutive captures
	// are within this perceptual hash distance, catching screens that
	// stopped scrolling but still differ by a clock tick or scrollbar
	// remnant. Negative disables it; byte-identical captures always end
	// the run.
	FuzzyThreshold int
}

// Run captures screenshots from dev until two consecutive ones match or
// opts.Max is reached, and returns how many distinct captures are on disk.
// The capture that triggered end-of-scroll detection is excluded from the
// count: it shows the same content as its predecessor.
func Run(dev Device, opts Options) (int, error) {
	var lastSum [md5.Size]byte
	var lastHash *goimagehash.ImageHash

	for i := 0; i < opts.Max; i++ {
		remote := fmt.Sprintf("/sdcard/%s.png", PaddedIndex(opts.Max, i))
		local := FilePath(opts.Dir, opts.Prefix, opts.Max, i)
		stitch.Logger().Info("capturing image", "index", i)

		// adb exit codes are unreliable across device generations; the
		// authoritative check is whether the pulled file shows up.
		if err := dev.Screencap(remote); err != nil {
			stitch.Logger().Warn("screencap command failed", "index", i, "error", err)
		}
		if err := dev.Swipe(); err != nil {
			stitch.Logger().Warn("swipe command failed", "index", i, "error", err)
		}
		if err := dev.Pull(remote, local); err != nil {
			stitch.Logger().Warn("pull command failed", "index", i, "error", err)
		}

		data, err := os.ReadFile(local)
		if err != nil {
			return i, ErrCaptureFailed
		}

		sum := md5.Sum(data)
		if i > 0 && sum == lastSum {
			stitch.Logger().Info("capture identical to previous, scroll ended", "index", i)
			return i, nil
		}
		lastSum = sum

		if opts.FuzzyThreshold >= 0 {
			h, err := perceptualHash(data)
			if err != nil {
				stitch.Logger().Warn("perceptual hash failed", "index", i, "error", err)
			} else {
				if lastHash != nil {
					if d, err := h.Distance(lastHash); err == nil && d <= opts.FuzzyThreshold {
						stitch.Logger().Info("capture perceptually identical to previous, scroll ended",
							"index", i, "distance", d)
						return i, nil
					}
				}
				lastHash = h
			}
		}

		time.Sleep(opts.Delay)
	}
	return opts.Max, nil
}

// perceptualHash computes a difference hash over an encoded image.
func perceptualHash(data []byte) (*goimagehash.ImageHash, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return goimagehash.DifferenceHash(img)
}
