package icon565

import "image/color"

// Color is a color in linear 8-bit-per-channel RGB space. Channels are held
// as ints so that arithmetic intermediates may leave [0, 255]; Clamp (or any
// conversion, which clamps defensively) brings them back into range.
//
// Color is an immutable value type: every operation returns a new value.
type Color struct {
	R, G, B int
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB creates a Color from 8-bit channel values.
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// Clamp clips each channel into [0, 255].
func (c Color) Clamp() Color {
	return Color{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
	}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Packed is a 16-bit RGB565 color: bits [15:11] red (5 bits),
// [10:5] green (6 bits), [4:0] blue (5 bits). This is the layout expected
// by the target display hardware.
type Packed uint16

// Packed compresses the color to RGB565. Each channel is rounded, not
// truncated, when reduced to 5/6/5 bits; truncation causes visible banding
// at this bit depth. The round trip through Packed loses at most 4 levels
// per channel after expansion.
func (c Color) Packed() Packed {
	cc := c.Clamp()
	r5 := (cc.R*31 + 127) / 255
	g6 := (cc.G*63 + 127) / 255
	b5 := (cc.B*31 + 127) / 255
	return Packed(r5<<11 | g6<<5 | b5)
}

// Color expands the packed value back into 8-bit channels. Each field is
// shifted left by (8 - fieldBits) with its high bits replicated into the
// vacated low bits, so full-scale packed values expand to full-scale 8-bit
// values. Combined with rounding on the packing side this bounds the
// round-trip error to 4 levels per channel.
func (p Packed) Color() Color {
	r5 := int(p >> 11 & 0x1F)
	g6 := int(p >> 5 & 0x3F)
	b5 := int(p & 0x1F)
	return Color{
		R: r5<<3 | r5>>2,
		G: g6<<2 | g6>>4,
		B: b5<<3 | b5>>2,
	}
}

// Lerp linearly interpolates between c and other per channel. t is clamped
// to [0, 1] internally, so callers may pass raw distance ratios.
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: c.R + int(float64(other.R-c.R)*t),
		G: c.G + int(float64(other.G-c.G)*t),
		B: c.B + int(float64(other.B-c.B)*t),
	}
}

// BlendOver alpha-composites src over dst: dst*(1-alpha) + src*alpha per
// channel. alpha is clamped to [0, 1]. Channel results are truncated, not
// rounded, to match the integer pixel semantics used throughout the
// rasterizer.
func BlendOver(dst, src Color, alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	inv := 1 - alpha
	return Color{
		R: int(float64(dst.R)*inv + float64(src.R)*alpha),
		G: int(float64(dst.G)*inv + float64(src.G)*alpha),
		B: int(float64(dst.B)*inv + float64(src.B)*alpha),
	}
}

// RGBA implements the image/color.Color interface. The color is always
// opaque; transparency in icons is chroma-keyed, not alpha-carried.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamp()
	r = uint32(cc.R) * 257
	g = uint32(cc.G) * 257
	b = uint32(cc.B) * 257
	a = 65535
	return
}

// FromColor converts a standard color.Color to a Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: int(r >> 8),
		G: int(g >> 8),
		B: int(b >> 8),
	}
}
