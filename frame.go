package stitch

import (
	"image"
	"image/color"
)

// Frame represents one captured screen image in the input sequence.
// Pixels are stored as a dense RGBA buffer, 4 bytes per pixel.
type Frame struct {
	width  int
	height int
	data   []uint8
}

// Pixel is a single RGBA sample with 8 bits per channel.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is fully transparent black, used to fill masked corners.
var Transparent = Pixel{}

// NewFrame creates an empty frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FrameFromImage copies a decoded image into a frame.
func FrameFromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	f := NewFrame(bounds.Dx(), bounds.Dy())

	// Fast path: image.NRGBA shares our memory layout.
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == f.width*4 {
		copy(f.data, nrgba.Pix)
		return f
	}

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*f.width + x) * 4
			f.data[i+0] = c.R
			f.data[i+1] = c.G
			f.data[i+2] = c.B
			f.data[i+3] = c.A
		}
	}
	return f
}

// Width returns the width of the frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Pixel returns the sample at (x, y). Out-of-range coordinates
// return fully transparent black.
func (f *Frame) Pixel(x, y int) Pixel {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Transparent
	}
	i := (y*f.width + x) * 4
	return Pixel{
		R: f.data[i+0],
		G: f.data[i+1],
		B: f.data[i+2],
		A: f.data[i+3],
	}
}

// SetPixel sets the sample at (x, y). Out-of-range coordinates are ignored.
func (f *Frame) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.data[i+0] = p.R
	f.data[i+1] = p.G
	f.data[i+2] = p.B
	f.data[i+3] = p.A
}

// Fill sets every pixel of the frame to p.
func (f *Frame) Fill(p Pixel) {
	for i := 0; i < len(f.data); i += 4 {
		f.data[i+0] = p.R
		f.data[i+1] = p.G
		f.data[i+2] = p.B
		f.data[i+3] = p.A
	}
}

// ToImage converts the frame to an image.NRGBA sharing no memory with f.
func (f *Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	p := f.Pixel(x, y)
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}
