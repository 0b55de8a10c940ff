package icon565

// Option configures a Painter during creation.
// Use functional options to customize rasterization quality:
//
//	p := icon565.NewPainter(cv)                          // defaults
//	p := icon565.NewPainter(cv, icon565.WithSamples(8))  // denser AA grid
type Option func(*Painter)

// WithSamples sets the supersampling grid density per axis.
// The default is DefaultSamples (4).
func WithSamples(n int) Option {
	return func(p *Painter) {
		p.sampler = NewSampler(n)
	}
}

// WithEdgeWidth sets the half-width in pixels of the linear anti-aliasing
// ramp applied at primitive boundaries. The default is 0.5 (a one-pixel
// ramp band). Symbols always use the default ramp regardless of this
// setting, so the icon set stays visually uniform.
func WithEdgeWidth(w float64) Option {
	return func(p *Painter) {
		if w > 0 {
			p.edge = w
		}
	}
}

// WithMinCoverage sets the coverage threshold below which a pixel is
// skipped entirely instead of composited. The default is 0.01: sub-1%
// contributions are invisible at RGB565 depth and skipping them is a pure
// speed win.
func WithMinCoverage(c float64) Option {
	return func(p *Painter) {
		if c >= 0 {
			p.minCov = c
		}
	}
}
