package icon565

import (
	"fmt"
	"math"
)

// Symbol selects one of the built-in symbol coverage functions.
type Symbol int

// Symbol kinds. Each is a closed-form geometric predicate evaluated in
// canvas space; none of them go through the primitive drawing library.
const (
	SymbolGear Symbol = iota
	SymbolTarget
	SymbolPlay
	SymbolTerminal
	SymbolSun
	SymbolWifi
	SymbolDots
)

var symbolNames = map[Symbol]string{
	SymbolGear:     "gear",
	SymbolTarget:   "target",
	SymbolPlay:     "play",
	SymbolTerminal: "terminal",
	SymbolSun:      "sun",
	SymbolWifi:     "wifi",
	SymbolDots:     "dots",
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// ParseSymbol resolves a symbol name as used in icon manifests.
// Legacy aliases from the firmware asset tables are accepted.
func ParseSymbol(name string) (Symbol, error) {
	switch name {
	case "gear", "settings":
		return SymbolGear, nil
	case "target", "crosshair", "bounds":
		return SymbolTarget, nil
	case "play", "live":
		return SymbolPlay, nil
	case "terminal", "console":
		return SymbolTerminal, nil
	case "sun", "brightness":
		return SymbolSun, nil
	case "wifi":
		return SymbolWifi, nil
	case "dots", "more":
		return SymbolDots, nil
	}
	return 0, fmt.Errorf("icon565: unknown symbol %q", name)
}

// Per-symbol compositing opacity. Every symbol is painted over its
// background at slightly less than full opacity, which softens it against
// the backdrop. The values were tuned per symbol; they are not one shared
// constant.
const (
	gearOpacity     = 0.95
	targetOpacity   = 0.92
	playOpacity     = 0.95
	terminalOpacity = 0.92
	sunOpacity      = 0.93
	wifiOpacity     = 0.92
	dotsOpacity     = 0.93
)

// Opacity returns the compositing opacity the symbol is painted with.
func (s Symbol) Opacity() float64 {
	switch s {
	case SymbolGear:
		return gearOpacity
	case SymbolTarget:
		return targetOpacity
	case SymbolPlay:
		return playOpacity
	case SymbolTerminal:
		return terminalOpacity
	case SymbolSun:
		return sunOpacity
	case SymbolWifi:
		return wifiOpacity
	case SymbolDots:
		return dotsOpacity
	}
	return 1
}

// Coverage builds the symbol's coverage function for a canvas of the given
// dimensions. Symbol geometry is sized against min(width, height), so
// non-square canvases center the symbol in the shorter span.
func (s Symbol) Coverage(width, height int) Coverage {
	size := float64(width)
	if height < width {
		size = float64(height)
	}
	cx := float64(width)/2 - 0.5
	cy := float64(height)/2 - 0.5

	switch s {
	case SymbolGear:
		return gearCoverage(cx, cy, size)
	case SymbolTarget:
		return targetCoverage(cx, cy, size)
	case SymbolPlay:
		return playCoverage(cx, cy, size)
	case SymbolTerminal:
		return terminalCoverage(cx, cy)
	case SymbolSun:
		return sunCoverage(cx, cy, size)
	case SymbolWifi:
		return wifiCoverage(cx, cy)
	case SymbolDots:
		return dotsCoverage(cx, cy)
	}
	return func(x, y float64) float64 { return 0 }
}

// gearCoverage draws a gear outline: an annular body with eight teeth and
// a punched center hole. Teeth are generated from one angular-period
// reduction rather than enumerated.
func gearCoverage(cx, cy, size float64) Coverage {
	outerR := size/2 - 7.5
	innerR := outerR * 0.6
	holeR := outerR * 0.28
	const (
		numTeeth    = 8
		toothWidth  = 0.35 // fraction of the tooth period
		toothHeight = 3.5
	)
	period := 2 * math.Pi / numTeeth

	return func(x, y float64) float64 {
		d := dist(x, y, cx, cy)

		// Center hole is an exclusion zone, including its own edge ramp.
		if d <= holeR-edgeRamp {
			return 0
		}
		if d < holeR+edgeRamp {
			return clamp01(d - holeR + edgeRamp)
		}

		angle := math.Atan2(y-cy, x-cx)
		fromToothCenter := angularDistance(angle, period, period/2)

		effectiveOuter := outerR
		toothEdge := 1.0
		if fromToothCenter < toothWidth*period/2 {
			effectiveOuter = outerR + toothHeight
			// Sharp angular falloff on the tooth flanks.
			toothEdge = clamp01((toothWidth*period/2 - fromToothCenter) * 15)
		}

		if d < innerR-edgeRamp || d > effectiveOuter+edgeRamp {
			return 0
		}
		innerF := 1.0
		if d < innerR+edgeRamp {
			innerF = clamp01(d - innerR + edgeRamp)
		}
		outerF := 1.0
		if d > effectiveOuter-edgeRamp {
			outerF = clamp01(effectiveOuter + edgeRamp - d)
		}
		return innerF * outerF * toothEdge
	}
}

// targetCoverage draws two concentric rings, a center dot, and crosshair
// spokes confined to the gap between the rings. Overlapping features take
// the elementwise maximum, never a sum.
func targetCoverage(cx, cy, size float64) Coverage {
	outerR := size/2 - 8
	innerR := outerR * 0.42
	const (
		ringWidth      = 2.0
		centerR        = 2.5
		crosshairWidth = 1.8
	)

	return func(x, y float64) float64 {
		d := dist(x, y, cx, cy)
		cov := 0.0

		if od := math.Abs(d - outerR); od < ringWidth {
			cov = math.Max(cov, clamp01(1-od/(ringWidth*0.5)))
		}
		if id := math.Abs(d - innerR); id < ringWidth*0.7 {
			cov = math.Max(cov, clamp01(1-id/(ringWidth*0.35)))
		}
		if d < centerR {
			cov = math.Max(cov, clamp01(1-d/centerR*0.7))
		}

		// Crosshair spokes live only between the rings.
		gapInner := innerR + ringWidth + 1
		gapOuter := outerR - ringWidth - 1
		if gapInner < d && d < gapOuter {
			if xd := math.Abs(x - cx); xd < crosshairWidth {
				cov = math.Max(cov, clamp01(1-xd/crosshairWidth))
			}
			if yd := math.Abs(y - cy); yd < crosshairWidth {
				cov = math.Max(cov, clamp01(1-yd/crosshairWidth))
			}
		}
		return cov
	}
}

// playCoverage draws a right-pointing filled triangle, offset slightly
// right of center for visual balance. Interior coverage ramps by distance
// to the nearest edge so the outline carries the standard half-pixel band.
func playCoverage(cx, cy, size float64) Coverage {
	const (
		offset = 1.5
		scale  = 0.42
	)
	leftX := cx - size*scale*0.35 + offset
	rightX := cx + size*scale*0.45 + offset
	topY := cy - size*scale*0.4
	bottomY := cy + size*scale*0.4

	return func(x, y float64) float64 {
		return triangleCoverage(x, y, leftX, topY, leftX, bottomY, rightX, cy)
	}
}

// triangleCoverage reports coverage for a point against a filled triangle:
// 0 outside, ramping to 1 within half a pixel of the interior side of the
// nearest edge.
func triangleCoverage(px, py, x1, y1, x2, y2, x3, y3 float64) float64 {
	sign := func(ax, ay, bx, by, cx, cy float64) float64 {
		return (ax-cx)*(by-cy) - (bx-cx)*(ay-cy)
	}
	d1 := sign(px, py, x1, y1, x2, y2)
	d2 := sign(px, py, x2, y2, x3, y3)
	d3 := sign(px, py, x3, y3, x1, y1)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	if hasNeg && hasPos {
		return 0
	}

	toEdge := math.Min(
		pointLineDistance(px, py, x1, y1, x2, y2),
		math.Min(
			pointLineDistance(px, py, x2, y2, x3, y3),
			pointLineDistance(px, py, x3, y3, x1, y1),
		),
	)
	return clamp01(toEdge + edgeRamp)
}

// pointLineDistance is the perpendicular distance from (px, py) to the
// infinite line through (x1, y1) and (x2, y2). Degenerate segments fall
// back to point distance.
func pointLineDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length < 0.001 {
		return dist(px, py, x1, y1)
	}
	return math.Abs(dy*px-dx*py+x2*y1-y2*x1) / length
}

// terminalCoverage draws a console prompt: a ">" chevron with two diagonal
// arms and a trailing underscore.
func terminalCoverage(cx, cy float64) Coverage {
	const (
		lineWidth     = 2.2
		chevronSize   = 6.5
		underscoreLen = 9.0
	)
	chevronX := cx - 6
	chevronY := cy - 1
	underscoreX := cx + 1
	underscoreY := cy + 6

	return func(x, y float64) float64 {
		cov := 0.0

		// Upper chevron arm, sloping down-right toward the vertex.
		if y >= chevronY-chevronSize && y <= chevronY {
			expectedX := chevronX + (chevronY - y)
			if d := math.Abs(x - expectedX); d < lineWidth {
				cov = math.Max(cov, clamp01(1-d/lineWidth))
			}
		}
		// Lower arm, mirroring back up-left.
		if y >= chevronY && y <= chevronY+chevronSize {
			expectedX := chevronX + (y - chevronY)
			if d := math.Abs(x - expectedX); d < lineWidth {
				cov = math.Max(cov, clamp01(1-d/lineWidth))
			}
		}
		// Underscore with ramped horizontal end caps.
		if x >= underscoreX && x <= underscoreX+underscoreLen {
			d := math.Abs(y - underscoreY)
			if d < lineWidth*0.9 {
				h := 1.0
				if x < underscoreX+1 {
					h = clamp01(x - underscoreX + edgeRamp)
				} else if x > underscoreX+underscoreLen-1 {
					h = clamp01(underscoreX + underscoreLen - x + edgeRamp)
				}
				cov = math.Max(cov, clamp01(1-d/(lineWidth*0.9))*h)
			}
		}
		return cov
	}
}

// sunCoverage draws a brightness symbol: a solid sun disc with eight rays
// generated from one angular-period reduction, tapered at both radial ends.
func sunCoverage(cx, cy, size float64) Coverage {
	const (
		sunR         = 5.0
		numRays      = 8
		rayWidth     = 0.28 // radians
		rayThickness = 2.0
	)
	rayInner := sunR + 3.0
	rayOuter := size/2 - 8
	period := 2 * math.Pi / numRays

	return func(x, y float64) float64 {
		d := dist(x, y, cx, cy)
		cov := 0.0

		if d < sunR+edgeRamp {
			cov = discCoverage(d, sunR, edgeRamp)
		}

		if d >= rayInner-edgeRamp && d <= rayOuter+edgeRamp {
			angle := math.Atan2(y-cy, x-cx)
			toRay := angularDistance(angle, period, 0)
			if toRay < rayWidth {
				angular := clamp01(1 - toRay/(rayWidth*0.6))

				radial := 1.0
				if d < rayInner+1 {
					radial = clamp01(d - rayInner + edgeRamp)
				} else if d > rayOuter-1 {
					radial = clamp01(rayOuter + edgeRamp - d)
				}

				// Perpendicular distance from the ray centerline caps the
				// ray's pixel thickness far from center.
				perp := d * math.Sin(toRay)
				thickness := clamp01(1 - perp/rayThickness)

				cov = math.Max(cov, angular*radial*thickness)
			}
		}
		return cov
	}
}

// wifiCoverage draws three upward-facing signal arcs over a base dot. The
// arc span is 135 degrees centered on straight up; arc ends fade out
// angularly instead of cutting hard.
func wifiCoverage(cx, cy float64) Coverage {
	const (
		arcWidth = 2.2
		dotR     = 2.8
		arcSpan  = math.Pi * 0.75
	)
	radii := [3]float64{6.5, 11.0, 15.5}
	// Arcs radiate from a center shifted toward the bottom of the canvas.
	acy := cy + 4.5

	return func(x, y float64) float64 {
		d := dist(x, y, cx, acy)
		cov := 0.0

		angle := math.Atan2(y-acy, x-cx)
		fromUp := math.Abs(angle + math.Pi/2)
		if fromUp < arcSpan/2 {
			for _, r := range radii {
				rd := math.Abs(d - r)
				if rd >= arcWidth {
					continue
				}
				ring := clamp01(1 - rd/(arcWidth*0.55))
				if edge := arcSpan/2 - fromUp; edge < 0.2 {
					ring *= clamp01(edge / 0.2)
				}
				cov = math.Max(cov, ring)
			}
		}

		if dd := dist(x, y, cx, acy+1); dd < dotR+edgeRamp {
			cov = math.Max(cov, discCoverage(dd, dotR, edgeRamp))
		}
		return cov
	}
}

// dotsCoverage draws three discs of radius 3.2 spaced 10 units apart on the
// center row.
func dotsCoverage(cx, cy float64) Coverage {
	const (
		dotR    = 3.2
		spacing = 10.0
	)
	centers := [3]float64{cx - spacing, cx, cx + spacing}

	return func(x, y float64) float64 {
		cov := 0.0
		for _, dx := range centers {
			d := dist(x, y, dx, cy)
			if d < dotR+edgeRamp {
				cov = math.Max(cov, discCoverage(d, dotR, edgeRamp))
			}
		}
		return cov
	}
}
