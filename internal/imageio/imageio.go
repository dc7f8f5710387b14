// Package imageio loads captured screen images from disk and writes the
// composited result back out.
package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	// Pre-captured sequences from other tools arrive in more formats
	// than adb produces; register the extra decoders for image.Decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	stitch "github.com/google/android-wear-stitch-script"
)

// LoadFrame loads an image file into a stitch.Frame, choosing the decoder
// by extension and falling back to content sniffing for anything else.
// Supported formats: PNG, JPEG, BMP, WebP.
func LoadFrame(path string) (*stitch.Frame, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	default:
		img, err = decodeAny(f)
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", filepath.Base(path), err)
	}
	return stitch.FrameFromImage(img), nil
}

// decodeAny decodes using whichever registered format matches the content.
func decodeAny(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// SaveFramePNG writes a frame to path as a PNG file.
func SaveFramePNG(path string, f *stitch.Frame) error {
	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := png.Encode(out, f.ToImage()); err != nil {
		_ = out.Close()
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return out.Close()
}

// ScaleFrame resamples a frame by the given factor using Catmull-Rom
// interpolation. A factor of 1 returns the input unchanged.
func ScaleFrame(f *stitch.Frame, factor float64) (*stitch.Frame, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("imageio: scale factor must be positive, got %v", factor)
	}
	if factor == 1 {
		return f, nil
	}
	w := int(float64(f.Width()) * factor)
	h := int(float64(f.Height()) * factor)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("imageio: scale factor %v collapses %dx%d to zero size",
			factor, f.Width(), f.Height())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), f, f.Bounds(), draw.Src, nil)
	return stitch.FrameFromImage(dst), nil
}
