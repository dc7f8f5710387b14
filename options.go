package stitch

// Options configures the compositor.
type Options struct {
	// CircularMask models a round display: source pixels outside the
	// inscribed circle of a frame are physically absent from the screen
	// and are demoted to last-resort fallbacks.
	CircularMask bool

	// Transparency fills corner regions near the very top and bottom of
	// the composite with fully transparent black instead of the nearest
	// off-screen sample. Only meaningful together with CircularMask.
	Transparency bool
}
