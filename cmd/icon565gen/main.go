// Command icon565gen rasterizes an icon set into a firmware-embeddable
// C++ header, with optional PNG/BMP previews.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwgen/icon565"
	"github.com/fwgen/icon565/internal/header"
	"github.com/fwgen/icon565/internal/manifest"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "", "YAML icon-set manifest (builtin launcher set if empty)")
		output       = flag.String("o", "-", "output header file, - for stdout")
		previewDir   = flag.String("preview", "", "directory for per-icon preview images (none if empty)")
		previewFmt   = flag.String("preview-format", "png", "preview image format: png or bmp")
		namespace    = flag.String("namespace", "ui::assets", "C++ namespace for the header")
		prefix       = flag.String("prefix", "kIcon", "identifier prefix for the header")
		samples      = flag.Int("samples", icon565.DefaultSamples, "anti-aliasing grid density per axis")
		verbose      = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Parse()

	if *verbose {
		icon565.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	set := manifest.Default()
	if *manifestPath != "" {
		var err error
		set, err = manifest.Load(*manifestPath)
		if err != nil {
			log.Fatalf("Failed to load manifest: %v", err)
		}
	}

	specs, err := set.Specs()
	if err != nil {
		log.Fatalf("Invalid manifest: %v", err)
	}

	icons := make([]*icon565.IconBuffer, 0, len(specs))
	for _, spec := range specs {
		buf, err := icon565.Compose(spec, icon565.WithSamples(*samples))
		if err != nil {
			log.Fatalf("Failed to compose %q: %v", spec.Name, err)
		}
		icons = append(icons, buf)
	}
	icon565.Logger().Info("icons composed", "count", len(icons))

	if *previewDir != "" {
		if err := writePreviews(*previewDir, *previewFmt, icons); err != nil {
			log.Fatalf("Failed to write previews: %v", err)
		}
	}

	opts := header.Options{
		Namespace: *namespace,
		Prefix:    *prefix,
		Tool:      "icon565gen",
	}
	if set.Transparent != "" {
		t, err := manifest.ParsePacked(set.Transparent)
		if err != nil {
			log.Fatalf("Invalid transparent color: %v", err)
		}
		opts.Transparent = t
	}
	names, values, err := set.PaletteColors()
	if err != nil {
		log.Fatalf("Invalid palette: %v", err)
	}
	for i, name := range names {
		opts.Palette = append(opts.Palette, header.PaletteEntry{Name: name, Value: values[i]})
	}

	out := os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *output, err)
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}
	if err := header.Write(out, opts, icons); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}
	if *output != "-" {
		icon565.Logger().Info("header written", "path", *output)
	}
}

func writePreviews(dir, format string, icons []*icon565.IconBuffer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, buf := range icons {
		path := filepath.Join(dir, buf.Name+"."+format)
		var err error
		switch format {
		case "png":
			err = buf.SavePNG(path)
		case "bmp":
			err = buf.SaveBMP(path)
		default:
			return fmt.Errorf("unknown preview format %q", format)
		}
		if err != nil {
			return err
		}
		icon565.Logger().Debug("preview written", "path", path)
	}
	return nil
}
