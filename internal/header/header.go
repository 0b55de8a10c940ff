// Package header serializes icon buffers into a C++ header suitable for
// embedding in display firmware. Output is byte-for-byte deterministic for
// a given input: every packed value round-trips unchanged through the
// emitted text.
package header

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fwgen/icon565"
)

// PaletteEntry is one named color in the emitted palette block. Palette
// order is preserved in the output; a map here would make the header
// non-deterministic.
type PaletteEntry struct {
	Name  string
	Value icon565.Packed
}

// Options controls the shape of the emitted header.
type Options struct {
	// Namespace wraps all declarations. Defaults to "ui::assets".
	Namespace string

	// Prefix is prepended to every icon identifier. Defaults to "kIcon".
	Prefix string

	// Transparent is the chroma-key sentinel, emitted as a shared constant.
	Transparent icon565.Packed

	// Palette, if non-empty, is emitted as a struct of named constants.
	Palette []PaletteEntry

	// Tool names the generator in the banner comment.
	Tool string

	// PerRow is the number of pixel values per source line. Defaults to 16.
	PerRow int
}

func (o *Options) fill() {
	if o.Namespace == "" {
		o.Namespace = "ui::assets"
	}
	if o.Prefix == "" {
		o.Prefix = "kIcon"
	}
	if o.Tool == "" {
		o.Tool = "icon565"
	}
	if o.PerRow <= 0 {
		o.PerRow = 16
	}
}

var titler = cases.Title(language.English, cases.NoLower)

// Identifier converts an icon name to a C identifier segment:
// "wifi" -> "Wifi", "live-counter" -> "LiveCounter".
func Identifier(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(titler.String(p))
	}
	return b.String()
}

// Write emits the complete header for the given icons.
func Write(w io.Writer, opts Options, icons []*icon565.IconBuffer) error {
	opts.fill()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#pragma once\n\n")
	fmt.Fprintf(bw, "// Auto-generated by %s. Do not edit.\n", opts.Tool)
	fmt.Fprintf(bw, "// RGB565 icons with anti-aliasing; chroma-key transparent background.\n\n")
	fmt.Fprintf(bw, "#include <cstdint>\n\n")
	fmt.Fprintf(bw, "namespace %s {\n\n", opts.Namespace)
	fmt.Fprintf(bw, "static constexpr uint16_t %sTransparent = 0x%04X;\n\n", opts.Prefix, uint16(opts.Transparent))

	if len(opts.Palette) > 0 {
		fmt.Fprintf(bw, "// Icon background colors (RGB565)\n")
		fmt.Fprintf(bw, "struct %sColors {\n", opts.Prefix)
		for _, p := range opts.Palette {
			fmt.Fprintf(bw, "    static constexpr uint16_t %s = 0x%04X;\n", p.Name, uint16(p.Value))
		}
		fmt.Fprintf(bw, "};\n\n")
	}

	for _, icon := range icons {
		if err := writeIcon(bw, opts, icon); err != nil {
			return err
		}
	}

	fmt.Fprintf(bw, "} // namespace %s\n", opts.Namespace)
	return bw.Flush()
}

func writeIcon(bw *bufio.Writer, opts Options, icon *icon565.IconBuffer) error {
	if len(icon.Pix) != icon.Width*icon.Height {
		return fmt.Errorf("header: icon %q has %d pixels, want %d", icon.Name, len(icon.Pix), icon.Width*icon.Height)
	}
	id := opts.Prefix + "_" + Identifier(icon.Name)

	fmt.Fprintf(bw, "static constexpr int %s_W = %d;\n", id, icon.Width)
	fmt.Fprintf(bw, "static constexpr int %s_H = %d;\n", id, icon.Height)
	fmt.Fprintf(bw, "static const uint16_t %s[%d] = {\n", id, len(icon.Pix))

	for i := 0; i < len(icon.Pix); i += opts.PerRow {
		end := i + opts.PerRow
		if end > len(icon.Pix) {
			end = len(icon.Pix)
		}
		vals := make([]string, 0, opts.PerRow)
		for _, p := range icon.Pix[i:end] {
			vals = append(vals, fmt.Sprintf("0x%04X", uint16(p)))
		}
		fmt.Fprintf(bw, "  %s,\n", strings.Join(vals, ", "))
	}

	fmt.Fprintf(bw, "};\n\n")
	return nil
}
