// Package icon565 procedurally rasterizes small anti-aliased icon bitmaps
// into packed RGB565 pixel arrays for embedding in display firmware.
//
// # Overview
//
// icon565 is an offline asset generator, not a runtime renderer. Every shape
// is expressed as a Coverage function: a pure mapping from a continuous 2D
// point to a coverage value in [0, 1]. A supersampling Sampler evaluates the
// coverage function at a grid of sub-pixel offsets and averages, and the
// resulting per-pixel coverage is alpha-composited onto a Canvas. The filled
// canvas is packed into a flat row-major RGB565 IconBuffer.
//
// # Quick Start
//
//	import "github.com/fwgen/icon565"
//
//	buf, err := icon565.Compose(icon565.IconSpec{
//		Name:        "settings",
//		Width:       42,
//		Height:      42,
//		Background:  icon565.Packed(0xFD5C).Color(),
//		Symbol:      icon565.SymbolGear,
//		SymbolColor: icon565.White,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = buf.SavePNG("settings.png")
//
// # Architecture
//
// The library is organized into:
//   - Core: Color, Canvas, Sampler, Painter (drawing primitives)
//   - Symbols: closed-form coverage functions (gear, target, play, ...)
//   - Composer: IconSpec -> IconBuffer
//   - internal/header: C++ header serializer for firmware embedding
//   - internal/manifest: YAML icon-set definitions
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles in
// radians via math.Atan2. Pixel (x, y) covers the unit square
// [x, x+1) x [y, y+1); its center is at (x+0.5, y+0.5).
package icon565
