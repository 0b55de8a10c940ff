package icon565

import "math"

// Painter draws anti-aliased primitives onto a Canvas. Each primitive
// iterates only the pixels of its own bounding box, estimates coverage
// through the Sampler, and composites: full coverage goes through Set,
// partial coverage through SetAlpha, and coverage at or below the minimum
// threshold is skipped.
type Painter struct {
	cv      *Canvas
	sampler Sampler
	edge    float64
	minCov  float64
}

// defaultMinCoverage skips pixels whose coverage is visually negligible
// at RGB565 depth.
const defaultMinCoverage = 0.01

// NewPainter creates a painter over cv with default quality settings
// (4x4 supersampling, half-pixel edge ramp, 1% coverage cutoff).
func NewPainter(cv *Canvas, opts ...Option) *Painter {
	p := &Painter{
		cv:      cv,
		sampler: NewSampler(DefaultSamples),
		edge:    edgeRamp,
		minCov:  defaultMinCoverage,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Canvas returns the canvas the painter draws onto.
func (p *Painter) Canvas() *Canvas { return p.cv }

// fillRegion rasterizes f over the pixel rectangle [x0,x1] x [y0,y1],
// shading each composited pixel with shade(x, y) at opacity alpha*coverage.
// This is the single compositing loop behind every primitive.
func (p *Painter) fillRegion(x0, y0, x1, y1 int, f Coverage, shade func(x, y int) Color, opacity float64) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cov := p.sampler.Pixel(x, y, f)
			if cov <= p.minCov {
				continue
			}
			a := cov * opacity
			if a >= 1 {
				p.cv.Set(x, y, shade(x, y))
			} else {
				p.cv.SetAlpha(x, y, shade(x, y), a)
			}
		}
	}
}

// circleBounds returns the pixel bounding box of a circle plus the AA
// probe margin, so coverage functions are never evaluated where they are
// guaranteed zero.
func circleBounds(cx, cy, r, edge float64) (x0, y0, x1, y1 int) {
	m := r + edge + 1
	x0 = int(math.Floor(cx - m))
	y0 = int(math.Floor(cy - m))
	x1 = int(math.Ceil(cx + m))
	y1 = int(math.Ceil(cy + m))
	return
}

// FillCircle draws an anti-aliased filled circle. Coverage is 1 inside
// radius-0.5, 0 outside radius+0.5, linearly ramped in between; this
// half-pixel band is the edge policy shared by every circular shape.
func (p *Painter) FillCircle(cx, cy, r float64, c Color) {
	f := func(x, y float64) float64 {
		return discCoverage(dist(x, y, cx, cy), r, p.edge)
	}
	x0, y0, x1, y1 := circleBounds(cx, cy, r, p.edge)
	p.fillRegion(x0, y0, x1, y1, f, func(int, int) Color { return c }, 1)
}

// FillCircleGradient draws a filled circle with a radial gradient from
// inner (center) to outer (rim). The edge treatment matches FillCircle.
func (p *Painter) FillCircleGradient(cx, cy, r float64, inner, outer Color) {
	f := func(x, y float64) float64 {
		return discCoverage(dist(x, y, cx, cy), r, p.edge)
	}
	shade := func(x, y int) Color {
		d := dist(float64(x)+0.5, float64(y)+0.5, cx, cy)
		return inner.Lerp(outer, d/r)
	}
	x0, y0, x1, y1 := circleBounds(cx, cy, r, p.edge)
	p.fillRegion(x0, y0, x1, y1, f, shade, 1)
}

// Ring draws an anti-aliased annulus centered on radius r with the given
// stroke thickness. Both boundaries carry the half-pixel ramp; coverage is
// the minimum of the two partial coverages.
func (p *Painter) Ring(cx, cy, r, thickness float64, c Color) {
	f := func(x, y float64) float64 {
		return ringCoverage(dist(x, y, cx, cy), r, thickness, p.edge)
	}
	x0, y0, x1, y1 := circleBounds(cx, cy, r+thickness/2, p.edge)
	p.fillRegion(x0, y0, x1, y1, f, func(int, int) Color { return c }, 1)
}

// LineAA draws an anti-aliased line of the given width as a sequence of
// overlapping soft discs stepped along the segment, two steps per unit
// length. Heavily overlapping discs can double-composite alpha near the
// endpoints of short, wide segments; the icon set was tuned against that
// output, so the stepping approach is kept rather than replaced with an
// exact capsule-distance stroke.
func (p *Painter) LineAA(x0, y0, x1, y1 float64, c Color, width float64) {
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length < 0.01 {
		return
	}

	steps := int(length*2) + 1
	hw := width / 2

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := x0 + dx*t
		py := y0 + dy*t

		for iy := int(py - hw - 1); iy <= int(py+hw+2); iy++ {
			for ix := int(px - hw - 1); ix <= int(px+hw+2); ix++ {
				d := dist(float64(ix), float64(iy), px, py)
				if d <= hw+1 {
					p.cv.SetAlpha(ix, iy, c, clamp01(hw+1-d))
				}
			}
		}
	}
}

// Line draws a hard one-pixel line with integer Bresenham stepping.
// Debug and reference outlines only; production icons use LineAA.
func (p *Painter) Line(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		p.cv.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// PaintCoverage rasterizes an arbitrary coverage function over the whole
// canvas at the given opacity. This is the symbol path: symbols composite
// over an already-rasterized background, always through SetAlpha, at a
// per-symbol opacity deliberately short of 1.
func (p *Painter) PaintCoverage(f Coverage, c Color, opacity float64) {
	for y := 0; y < p.cv.Height(); y++ {
		for x := 0; x < p.cv.Width(); x++ {
			cov := p.sampler.Pixel(x, y, f)
			if cov <= p.minCov {
				continue
			}
			p.cv.SetAlpha(x, y, c, cov*opacity)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
