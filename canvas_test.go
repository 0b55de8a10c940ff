package icon565

import "testing"

func TestNewCanvas_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCanvas(tt.w, tt.h, Black); err == nil {
				t.Errorf("NewCanvas(%d, %d) succeeded, want error", tt.w, tt.h)
			}
		})
	}
}

func TestNewCanvas_FilledWithBackground(t *testing.T) {
	bg := Color{10, 20, 30}
	cv, err := NewCanvas(4, 3, bg)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	if cv.Width() != 4 || cv.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", cv.Width(), cv.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := cv.Get(x, y); got != bg {
				t.Fatalf("Get(%d, %d) = %v, want background %v", x, y, got, bg)
			}
		}
	}
}

func TestCanvas_OutOfBounds(t *testing.T) {
	bg := Color{1, 2, 3}
	cv, err := NewCanvas(5, 5, bg)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}

	oob := []struct{ x, y int }{
		{-1, 2}, {5, 2}, {2, -1}, {2, 5}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		// Writes must be silent no-ops; reads must degrade to background.
		cv.Set(c.x, c.y, White)
		cv.SetAlpha(c.x, c.y, White, 0.5)
		if got := cv.Get(c.x, c.y); got != bg {
			t.Errorf("Get(%d, %d) = %v, want background %v", c.x, c.y, got, bg)
		}
	}

	// In-bounds pixels untouched by the out-of-bounds writes.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := cv.Get(x, y); got != bg {
				t.Fatalf("pixel (%d, %d) modified by out-of-bounds write: %v", x, y, got)
			}
		}
	}
}

func TestCanvas_SetAlpha_Identities(t *testing.T) {
	cv, err := NewCanvas(3, 3, Color{40, 50, 60})
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}

	before := cv.Get(1, 1)
	cv.SetAlpha(1, 1, White, 0)
	if got := cv.Get(1, 1); got != before {
		t.Errorf("SetAlpha with alpha 0 changed pixel: %v -> %v", before, got)
	}

	cv.SetAlpha(1, 1, Color{200, 100, 50}, 1)
	if got := cv.Get(1, 1); got != (Color{200, 100, 50}) {
		t.Errorf("SetAlpha with alpha 1 = %v, want exact source color", got)
	}
}

func TestCanvas_SetAlpha_Blends(t *testing.T) {
	cv, err := NewCanvas(2, 2, Black)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	cv.SetAlpha(0, 0, White, 0.5)
	want := BlendOver(Black, White, 0.5)
	if got := cv.Get(0, 0); got != want {
		t.Errorf("SetAlpha blend = %v, want %v", got, want)
	}
}

func TestCanvas_Packed(t *testing.T) {
	cv, err := NewCanvas(2, 2, Black)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	cv.Set(1, 0, White)

	pix := cv.Packed()
	if len(pix) != 4 {
		t.Fatalf("Packed() length = %d, want 4", len(pix))
	}
	if pix[1] != 0xFFFF {
		t.Errorf("pix[1] = 0x%04X, want 0xFFFF", uint16(pix[1]))
	}
	if pix[0] != 0x0000 || pix[2] != 0x0000 || pix[3] != 0x0000 {
		t.Errorf("background pixels = %v, want all 0x0000", pix)
	}
}
