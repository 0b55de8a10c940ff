package icon565

import "fmt"

// Canvas is an owned width x height grid of colors. It is created with
// explicit dimensions and a background fill, mutated in place by drawing
// operations, and never resized.
//
// Out-of-bounds accesses are deliberately safe: writes are no-ops and reads
// return the background color. Coverage functions routinely probe slightly
// outside the nominal drawing area during anti-aliasing, so bounds overruns
// are normal operation here, not errors.
type Canvas struct {
	width  int
	height int
	bg     Color
	px     []Color
}

// NewCanvas creates a canvas filled with the background color bg.
// Zero or negative dimensions are a construction error; silently producing
// an empty canvas would only surface as a corrupt asset much later.
func NewCanvas(width, height int, bg Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icon565: invalid canvas dimensions %dx%d", width, height)
	}
	cv := &Canvas{
		width:  width,
		height: height,
		bg:     bg,
		px:     make([]Color, width*height),
	}
	for i := range cv.px {
		cv.px[i] = bg
	}
	return cv, nil
}

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int { return cv.width }

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int { return cv.height }

// Background returns the background color the canvas was created with.
func (cv *Canvas) Background() Color { return cv.bg }

// Set writes c at (x, y), discarding the previous pixel.
// No-op if (x, y) is out of bounds.
func (cv *Canvas) Set(x, y int, c Color) {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return
	}
	cv.px[y*cv.width+x] = c
}

// SetAlpha composites c over the current pixel at (x, y) with the given
// alpha. No-op if (x, y) is out of bounds. Anti-aliased edges must always
// go through this path; partial coverage written via Set would produce
// hard fringes.
func (cv *Canvas) SetAlpha(x, y int, c Color, alpha float64) {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return
	}
	i := y*cv.width + x
	cv.px[i] = BlendOver(cv.px[i], c, alpha)
}

// Get returns the pixel at (x, y), or the background color if (x, y) is
// out of bounds.
func (cv *Canvas) Get(x, y int) Color {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return cv.bg
	}
	return cv.px[y*cv.width+x]
}

// Packed returns a row-major RGB565 snapshot of the canvas.
func (cv *Canvas) Packed() []Packed {
	out := make([]Packed, len(cv.px))
	for i, c := range cv.px {
		out[i] = c.Packed()
	}
	return out
}
