package imageio

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	stitch "github.com/google/android-wear-stitch-script"
)

func testFrame(w, h int) *stitch.Frame {
	f := stitch.NewFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.SetPixel(x, y, stitch.Pixel{
				R: uint8(x * 16), G: uint8(y * 16), B: uint8((x + y) * 8), A: 255,
			})
		}
	}
	return f
}

func TestSaveAndLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	want := testFrame(8, 6)

	require.NoError(t, SaveFramePNG(path, want))

	got, err := LoadFrame(path)
	require.NoError(t, err)
	require.Equal(t, 8, got.Width())
	require.Equal(t, 6, got.Height())
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, want.Pixel(x, y), got.Pixel(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestLoadFrame_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.jpg")
	img := image.NewNRGBA(image.Rect(0, 0, 10, 4))
	for i := range img.Pix {
		img.Pix[i] = 180
	}

	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(out, img, nil))
	require.NoError(t, out.Close())

	got, err := LoadFrame(path)
	require.NoError(t, err)
	// JPEG is lossy; only the geometry is exact.
	assert.Equal(t, 10, got.Width())
	assert.Equal(t, 4, got.Height())
}

func TestLoadFrame_BMPBySniffing(t *testing.T) {
	// A BMP with a misleading extension exercises the content-sniffing
	// path and the registered x/image decoder.
	path := filepath.Join(t.TempDir(), "frame.capture")
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(out, img))
	require.NoError(t, out.Close())

	got, err := LoadFrame(path)
	require.NoError(t, err)
	assert.Equal(t, stitch.Pixel{R: 9, G: 8, B: 7, A: 255}, got.Pixel(1, 1))
}

func TestLoadFrame_MissingFile(t *testing.T) {
	_, err := LoadFrame(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestScaleFrame(t *testing.T) {
	f := testFrame(8, 6)

	t.Run("factor 1 is a no-op", func(t *testing.T) {
		got, err := ScaleFrame(f, 1)
		require.NoError(t, err)
		assert.Same(t, f, got)
	})

	t.Run("doubles dimensions", func(t *testing.T) {
		got, err := ScaleFrame(f, 2)
		require.NoError(t, err)
		assert.Equal(t, 16, got.Width())
		assert.Equal(t, 12, got.Height())
	})

	t.Run("halves dimensions", func(t *testing.T) {
		got, err := ScaleFrame(f, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Width())
		assert.Equal(t, 3, got.Height())
	})

	t.Run("rejects non-positive factors", func(t *testing.T) {
		_, err := ScaleFrame(f, 0)
		assert.Error(t, err)
		_, err = ScaleFrame(f, -2)
		assert.Error(t, err)
	})

	t.Run("rejects factors that collapse the frame", func(t *testing.T) {
		_, err := ScaleFrame(f, 0.01)
		assert.Error(t, err)
	})
}
