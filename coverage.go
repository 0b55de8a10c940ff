package icon565

import "math"

// Coverage maps a continuous 2D point to a value in [0, 1]: how much of an
// infinitesimal area at that point belongs to the shape being drawn.
//
// Coverage functions are stateless. They may close over shape parameters
// (center, radii, angles) but must not depend on previously rasterized
// pixels — every shape from a plain disc to a gear is one of these, and the
// Sampler may probe them in any order at any density.
type Coverage func(x, y float64) float64

// edgeRamp is the half-pixel linear anti-aliasing band applied to every
// feature's outer edge. All shapes share the same width so the icon set
// reads as one visual language.
const edgeRamp = 0.5

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// discCoverage is the standard edge policy for circular features: 1 inside
// radius-edge, 0 outside radius+edge, linearly ramped in between.
func discCoverage(dist, radius, edge float64) float64 {
	if dist <= radius-edge {
		return 1
	}
	if dist >= radius+edge {
		return 0
	}
	return clamp01((radius + edge - dist) / (2 * edge))
}

// ringCoverage applies the edge policy on both boundaries of an annulus
// centered on radius with the given thickness. A pixel is only fully
// covered between both ramps, so the result is the minimum of the two
// partial coverages.
func ringCoverage(dist, radius, thickness, edge float64) float64 {
	inner := radius - thickness/2
	outer := radius + thickness/2
	if dist < inner-edge || dist > outer+edge {
		return 0
	}
	aOuter := clamp01((outer + edge - dist) / (2 * edge))
	aInner := clamp01((dist - inner + edge) / (2 * edge))
	return math.Min(aOuter, aInner)
}

// angularDistance returns the absolute angular distance from angle to the
// nearest feature center, where features repeat every period radians with
// centers at the given phase. This is the one helper behind every repeating
// radial feature (gear teeth, sun rays); reimplementing the reduction per
// symbol is how the seams creep in.
//
// The reduction uses floor-mod semantics: math.Mod on a negative angle
// (atan2 returns (-pi, pi]) yields a negative remainder, which would wrap
// incorrectly at the 0/2pi boundary. The result here is continuous across
// that seam.
func angularDistance(angle, period, phase float64) float64 {
	m := math.Mod(angle-phase, period)
	if m < 0 {
		m += period
	}
	if m > period/2 {
		m = period - m
	}
	return m
}

func dist(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}
