package icon565

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// Image expands the packed pixels into an image.RGBA for previewing.
// The chroma-key sentinel is not special-cased; previews show it as the
// literal color it packs to.
func (b *IconBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.Pix[y*b.Width+x].Color()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(c.R)
			img.Pix[i+1] = uint8(c.G)
			img.Pix[i+2] = uint8(c.B)
			img.Pix[i+3] = 255
		}
	}
	return img
}

// SavePNG writes a PNG preview of the icon.
func (b *IconBuffer) SavePNG(path string) error {
	return b.save(path, func(f *os.File) error {
		return png.Encode(f, b.Image())
	})
}

// SaveBMP writes a BMP preview of the icon, for viewers that predate PNG
// on the firmware side of the toolchain.
func (b *IconBuffer) SaveBMP(path string) error {
	return b.save(path, func(f *os.File) error {
		return bmp.Encode(f, b.Image())
	})
}

func (b *IconBuffer) save(path string, encode func(*os.File) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("save %q: %w", b.Name, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := encode(f); err != nil {
		return fmt.Errorf("save %q: %w", b.Name, err)
	}
	return nil
}
