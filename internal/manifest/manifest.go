// Package manifest loads YAML icon-set definitions: canvas size, the
// chroma-key sentinel, a named RGB565 palette, and the list of icons to
// rasterize. A builtin default mirrors the launcher icon set shipped in
// the firmware.
package manifest

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fwgen/icon565"
)

// File is the root of an icon-set manifest.
type File struct {
	// Size is the default canvas size (square) for icons that do not
	// override it.
	Size int `yaml:"size"`

	// Transparent is the chroma-key sentinel as an RGB565 literal
	// ("0x0000").
	Transparent string `yaml:"transparent"`

	// Palette holds named background colors, in output order.
	Palette []PaletteEntry `yaml:"palette"`

	// Icons lists the icons to generate, in output order.
	Icons []IconDef `yaml:"icons"`
}

// PaletteEntry names one RGB565 color.
type PaletteEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// IconDef defines one icon.
type IconDef struct {
	Name string `yaml:"name"`

	// Color is a palette name or an RGB565 literal.
	Color string `yaml:"color"`

	// Symbol is a symbol kind name ("gear", "target", ...).
	Symbol string `yaml:"symbol"`

	// Gradient, if set, is the gradient inner color (palette name or
	// literal); the badge then fades from it to Color at the rim.
	Gradient string `yaml:"gradient,omitempty"`

	// Size overrides the manifest-level canvas size.
	Size int `yaml:"size,omitempty"`
}

// Load reads and parses a manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if f.Size <= 0 {
		return nil, fmt.Errorf("manifest: size must be positive, got %d", f.Size)
	}
	if len(f.Icons) == 0 {
		return nil, fmt.Errorf("manifest: no icons defined")
	}
	return &f, nil
}

// ParsePacked parses an RGB565 literal like "0xFD5C".
func ParsePacked(s string) (icon565.Packed, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("manifest: bad RGB565 literal %q: %w", s, err)
	}
	return icon565.Packed(v), nil
}

// resolve maps a palette name or RGB565 literal to a color.
func (f *File) resolve(s string) (icon565.Color, error) {
	for _, p := range f.Palette {
		if p.Name == s {
			v, err := ParsePacked(p.Value)
			if err != nil {
				return icon565.Color{}, err
			}
			return v.Color(), nil
		}
	}
	v, err := ParsePacked(s)
	if err != nil {
		return icon565.Color{}, fmt.Errorf("manifest: %q is neither a palette name nor an RGB565 literal", s)
	}
	return v.Color(), nil
}

// PaletteColors returns the palette as (name, packed) pairs in manifest
// order, for serializers that emit a palette block.
func (f *File) PaletteColors() ([]string, []icon565.Packed, error) {
	names := make([]string, 0, len(f.Palette))
	values := make([]icon565.Packed, 0, len(f.Palette))
	for _, p := range f.Palette {
		v, err := ParsePacked(p.Value)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, p.Name)
		values = append(values, v)
	}
	return names, values, nil
}

// Specs resolves the manifest into composable icon specs.
func (f *File) Specs() ([]icon565.IconSpec, error) {
	transparent := icon565.Black
	if f.Transparent != "" {
		v, err := ParsePacked(f.Transparent)
		if err != nil {
			return nil, err
		}
		transparent = v.Color()
	}

	specs := make([]icon565.IconSpec, 0, len(f.Icons))
	for _, def := range f.Icons {
		if def.Name == "" {
			return nil, fmt.Errorf("manifest: icon with empty name")
		}
		sym, err := icon565.ParseSymbol(def.Symbol)
		if err != nil {
			return nil, fmt.Errorf("manifest: icon %q: %w", def.Name, err)
		}
		bg, err := f.resolve(def.Color)
		if err != nil {
			return nil, fmt.Errorf("manifest: icon %q: %w", def.Name, err)
		}

		size := f.Size
		if def.Size > 0 {
			size = def.Size
		}

		spec := icon565.IconSpec{
			Name:        def.Name,
			Width:       size,
			Height:      size,
			Background:  bg,
			Symbol:      sym,
			SymbolColor: icon565.White,
			Transparent: transparent,
		}
		if def.Gradient != "" {
			g, err := f.resolve(def.Gradient)
			if err != nil {
				return nil, fmt.Errorf("manifest: icon %q: %w", def.Name, err)
			}
			spec.Gradient = &g
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Default returns the builtin launcher icon set: seven 42x42 circular
// badges on the factory palette.
func Default() *File {
	return &File{
		Size:        42,
		Transparent: "0x0000",
		Palette: []PaletteEntry{
			{Name: "red", Value: "0xFD5C"},
			{Name: "blue", Value: "0x577E"},
			{Name: "green", Value: "0x03A9"},
			{Name: "teal", Value: "0x1AA1"},
			{Name: "orange", Value: "0xEB84"},
			{Name: "mint", Value: "0x04A2"},
			{Name: "cyan", Value: "0x008C"},
			{Name: "gray", Value: "0x5D7B"},
		},
		Icons: []IconDef{
			{Name: "settings", Color: "red", Symbol: "gear"},
			{Name: "bounds", Color: "blue", Symbol: "target"},
			{Name: "live", Color: "green", Symbol: "play"},
			{Name: "terminal", Color: "teal", Symbol: "terminal"},
			{Name: "brightness", Color: "orange", Symbol: "sun"},
			{Name: "wifi", Color: "mint", Symbol: "wifi"},
			{Name: "more", Color: "gray", Symbol: "dots"},
		},
	}
}
