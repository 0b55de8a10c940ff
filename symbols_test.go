package icon565

import (
	"math"
	"testing"
)

// TestAngularDistance_SeamContinuity: the same physical angle expressed as
// a small negative value and as its 2pi-wrapped equivalent must reduce to
// the same feature distance. Direct language modulo on negative angles
// breaks this at the 0/2pi boundary; the floor-mod reduction must not.
func TestAngularDistance_SeamContinuity(t *testing.T) {
	period := 2 * math.Pi / 8
	for _, phase := range []float64{0, period / 2} {
		a := angularDistance(-0.001, period, phase)
		b := angularDistance(2*math.Pi-0.001, period, phase)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("phase %v: angularDistance(-0.001) = %v, angularDistance(2pi-0.001) = %v", phase, a, b)
		}
	}
}

func TestAngularDistance_Reduction(t *testing.T) {
	period := math.Pi / 2
	tests := []struct {
		name  string
		angle float64
		phase float64
		want  float64
	}{
		{"on feature center", period / 2, period / 2, 0},
		{"one period later", period / 2 * 5, period / 2, 0},
		{"at period boundary", 0, period / 2, period / 2},
		{"phase zero center", 0, 0, 0},
		{"negative angle near zero-phase center", -0.1, 0, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := angularDistance(tt.angle, period, tt.phase)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("angularDistance(%v, %v, %v) = %v, want %v", tt.angle, period, tt.phase, got, tt.want)
			}
		})
	}
}

// TestSymbols_ZeroOutsideBounds: every symbol's coverage is exactly 0 at
// points well outside its outer boundary (the canvas corners).
func TestSymbols_ZeroOutsideBounds(t *testing.T) {
	symbols := []Symbol{
		SymbolGear, SymbolTarget, SymbolPlay, SymbolTerminal,
		SymbolSun, SymbolWifi, SymbolDots,
	}
	corners := []struct{ x, y float64 }{
		{0, 0}, {41, 0}, {0, 41}, {41, 41},
	}
	for _, s := range symbols {
		f := s.Coverage(42, 42)
		for _, c := range corners {
			if got := f(c.x, c.y); got != 0 {
				t.Errorf("%s coverage at corner (%v, %v) = %v, want 0", s, c.x, c.y, got)
			}
		}
	}
}

// TestGearCoverage_Regions probes the gear's radial zones on a 42x42
// canvas: hole (exclusion), body (full), tooth (full), outside (zero).
func TestGearCoverage_Regions(t *testing.T) {
	f := SymbolGear.Coverage(42, 42)
	const cx, cy = 20.5, 20.5
	// 42/2 - 7.5 = 13.5 outer body radius; teeth reach 17.0.
	toothCenter := 2 * math.Pi / 8 / 2

	if got := f(cx, cy); got != 0 {
		t.Errorf("center hole coverage = %v, want 0 (exclusion zone)", got)
	}

	// Body point at distance 11 along a tooth centerline: fully covered.
	bx := cx + 11*math.Cos(toothCenter)
	by := cy + 11*math.Sin(toothCenter)
	if got := f(bx, by); got != 1 {
		t.Errorf("gear body coverage = %v, want 1", got)
	}

	// Tooth tip region at distance 15.5 along the same centerline.
	tx := cx + 15.5*math.Cos(toothCenter)
	ty := cy + 15.5*math.Sin(toothCenter)
	if got := f(tx, ty); got != 1 {
		t.Errorf("gear tooth coverage = %v, want 1", got)
	}

	// Between teeth at the same radius: outside the body's outer edge.
	gapAngle := toothCenter + 2*math.Pi/8/2
	gx := cx + 15.5*math.Cos(gapAngle)
	gy := cy + 15.5*math.Sin(gapAngle)
	if got := f(gx, gy); got != 0 {
		t.Errorf("between-teeth coverage at tooth radius = %v, want 0", got)
	}
}

// TestGearCoverage_AxisSymmetry: points mirrored across the +x axis see
// the same tooth geometry. atan2 flips sign across the axis, so this only
// holds when the angular reduction wraps negative angles correctly.
func TestGearCoverage_AxisSymmetry(t *testing.T) {
	f := SymbolGear.Coverage(42, 42)
	const cx, cy = 20.5, 20.5
	for _, r := range []float64{9, 11, 13, 15, 16.5} {
		above := f(cx+r*math.Cos(0.01), cy+r*math.Sin(0.01))
		below := f(cx+r*math.Cos(-0.01), cy+r*math.Sin(-0.01))
		if math.Abs(above-below) > 1e-9 {
			t.Errorf("r=%v: coverage above axis %v != below axis %v", r, above, below)
		}
	}
}

// TestSunCoverage_Regions: the sun disc is full at center, rays exist on
// the +x axis (a ray centerline), and the gap between rays is empty at ray
// radius.
func TestSunCoverage_Regions(t *testing.T) {
	f := SymbolSun.Coverage(42, 42)
	const cx, cy = 20.5, 20.5

	if got := f(cx, cy); got != 1 {
		t.Errorf("sun disc center coverage = %v, want 1", got)
	}
	// Ray centerline: rays sit at phase 0, so straight right at mid ray
	// span (rays run from 8 to 13).
	if got := f(cx+10.5, cy); got != 1 {
		t.Errorf("ray centerline coverage = %v, want 1", got)
	}
	// Halfway between two rays at the same radius.
	half := 2 * math.Pi / 8 / 2
	if got := f(cx+10.5*math.Cos(half), cy+10.5*math.Sin(half)); got != 0 {
		t.Errorf("between-rays coverage = %v, want 0", got)
	}
}

func TestDotsCoverage_Layout(t *testing.T) {
	f := SymbolDots.Coverage(42, 42)
	const cx, cy = 20.5, 20.5

	// All three dot centers fully covered.
	for _, dx := range []float64{cx - 10, cx, cx + 10} {
		if got := f(dx, cy); got != 1 {
			t.Errorf("dot center (%v, %v) coverage = %v, want 1", dx, cy, got)
		}
	}
	// Midway between adjacent dots: 5 units from each center, well past
	// radius 3.2 plus the ramp.
	if got := f(cx-5, cy); got != 0 {
		t.Errorf("between-dots coverage = %v, want 0", got)
	}
}

func TestPlayCoverage_InsideOutside(t *testing.T) {
	f := SymbolPlay.Coverage(42, 42)
	// Deep inside the triangle, near its centroid.
	if got := f(20.5, 20.5); got != 1 {
		t.Errorf("triangle interior coverage = %v, want 1", got)
	}
	// Above the apex row, outside.
	if got := f(20.5, 10); got != 0 {
		t.Errorf("above triangle coverage = %v, want 0", got)
	}
}

func TestTargetCoverage_RingsAndDot(t *testing.T) {
	f := SymbolTarget.Coverage(42, 42)
	const cx, cy = 20.5, 20.5

	if got := f(cx, cy); got != 1 {
		t.Errorf("target center dot coverage = %v, want 1", got)
	}
	// On the outer ring (radius 13).
	if got := f(cx+13, cy); got != 1 {
		t.Errorf("outer ring coverage = %v, want 1", got)
	}
	// Crosshair spoke between the rings, on the vertical axis.
	if got := f(cx, cy-9.5); got != 1 {
		t.Errorf("crosshair spoke coverage = %v, want 1", got)
	}
}

func TestSymbol_Opacities(t *testing.T) {
	symbols := []Symbol{
		SymbolGear, SymbolTarget, SymbolPlay, SymbolTerminal,
		SymbolSun, SymbolWifi, SymbolDots,
	}
	for _, s := range symbols {
		op := s.Opacity()
		if op < 0.9 || op > 0.95 {
			t.Errorf("%s opacity = %v, want within [0.9, 0.95]", s, op)
		}
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		in      string
		want    Symbol
		wantErr bool
	}{
		{"gear", SymbolGear, false},
		{"settings", SymbolGear, false},
		{"target", SymbolTarget, false},
		{"bounds", SymbolTarget, false},
		{"play", SymbolPlay, false},
		{"terminal", SymbolTerminal, false},
		{"brightness", SymbolSun, false},
		{"wifi", SymbolWifi, false},
		{"more", SymbolDots, false},
		{"bogus", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSymbol(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSymbol(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSymbol(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSymbol(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
