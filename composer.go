package icon565

import "fmt"

// IconSpec describes one icon to rasterize. Specs are pure inputs: no state
// is shared between icons, so a set of specs can be composed in any order
// or in parallel.
type IconSpec struct {
	// Name is the logical icon name, used only by downstream serializers.
	Name string

	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int

	// Background is the fill color of the circular badge background.
	// When Gradient is non-nil the badge is a radial gradient from
	// *Gradient at the center to Background at the rim.
	Background Color
	Gradient   *Color

	// Symbol and SymbolColor select the glyph composited over the badge.
	Symbol      Symbol
	SymbolColor Color

	// Transparent is the chroma-key sentinel filling everything outside
	// the badge circle. Downstream compositing treats it as "not drawn";
	// it is not a true alpha channel.
	Transparent Color
}

// IconBuffer is the final artifact: a flat row-major RGB565 pixel array of
// length Width*Height, plus the icon's logical name. Immutable after
// creation; the serializer is its only consumer.
type IconBuffer struct {
	Name   string
	Width  int
	Height int
	Pix    []Packed
}

// Compose rasterizes one icon: the circular badge background is drawn into
// a fresh canvas filled with the transparent sentinel, then the symbol's
// coverage function is composited over it at the symbol's opacity.
func Compose(spec IconSpec, opts ...Option) (*IconBuffer, error) {
	cv, err := NewCanvas(spec.Width, spec.Height, spec.Transparent)
	if err != nil {
		return nil, fmt.Errorf("compose %q: %w", spec.Name, err)
	}
	p := NewPainter(cv, opts...)

	size := spec.Width
	if spec.Height < size {
		size = spec.Height
	}
	cx := float64(spec.Width)/2 - 0.5
	cy := float64(spec.Height)/2 - 0.5
	r := float64(size)/2 - 0.5

	if spec.Gradient != nil {
		p.FillCircleGradient(cx, cy, r, *spec.Gradient, spec.Background)
	} else {
		p.FillCircle(cx, cy, r, spec.Background)
	}

	p.PaintCoverage(spec.Symbol.Coverage(spec.Width, spec.Height), spec.SymbolColor, spec.Symbol.Opacity())

	Logger().Debug("icon composed",
		"name", spec.Name,
		"size", fmt.Sprintf("%dx%d", spec.Width, spec.Height),
		"symbol", spec.Symbol.String())

	return &IconBuffer{
		Name:   spec.Name,
		Width:  spec.Width,
		Height: spec.Height,
		Pix:    cv.Packed(),
	}, nil
}
