// Command forgedemo generates one asset of every kind into an output
// directory: a noise texture, a gradient swatch, an SVG pattern, a
// shadow stylesheet, a contrast report, a type scale, an animation
// timeline, a regex report, an icon bundle and a synthetic dataset.
//
// Defaults can come from a .env file in the working directory:
// FORGE_SEED, FORGE_OUT and FORGE_SIZE are read when the matching flag
// is left at its default.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/designforge/forge"
	"github.com/designforge/forge/contrast"
	"github.com/designforge/forge/dataset"
	"github.com/designforge/forge/gradient"
	"github.com/designforge/forge/icons"
	"github.com/designforge/forge/noise"
	"github.com/designforge/forge/pattern"
	"github.com/designforge/forge/regexlab"
	"github.com/designforge/forge/shadow"
	"github.com/designforge/forge/timeline"
	"github.com/designforge/forge/typescale"
)

func main() {
	// A missing .env is fine; flags and built-in defaults take over.
	_ = godotenv.Load()

	var (
		outDir = flag.String("out", envOr("FORGE_OUT", "forge-out"), "output directory")
		seed   = flag.Int64("seed", envInt("FORGE_SEED", 1), "generation seed")
		size   = flag.Int("size", envInt64AsInt("FORGE_SIZE", 512), "texture size in pixels")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", *outDir, err)
	}

	if err := run(*outDir, *seed, *size); err != nil {
		log.Fatal(err)
	}
	log.Printf("assets written to %s", *outDir)
}

func run(dir string, seed int64, size int) error {
	if err := writeNoise(dir, seed, size); err != nil {
		return err
	}
	if err := writeGradient(dir, size); err != nil {
		return err
	}
	if err := writePattern(dir); err != nil {
		return err
	}
	if err := writeShadow(dir); err != nil {
		return err
	}
	if err := writeContrast(dir); err != nil {
		return err
	}
	if err := writeTypeScale(dir); err != nil {
		return err
	}
	if err := writeTimeline(dir); err != nil {
		return err
	}
	if err := writeRegexReport(dir); err != nil {
		return err
	}
	if err := writeIcons(dir); err != nil {
		return err
	}
	return writeDataset(dir, seed)
}

func writeNoise(dir string, seed int64, size int) error {
	opts := noise.DefaultOptions()
	opts.Seed = seed
	opts.Width = size
	opts.Height = size
	opts.Variant = noise.Grain
	opts.Tint = forge.Hex("#8899AA")
	opts.TintStrength = 0.3

	pm, err := noise.Generate(opts)
	if err != nil {
		return fmt.Errorf("noise: %w", err)
	}
	return pm.SavePNG(filepath.Join(dir, "noise-grain.png"))
}

func writeGradient(dir string, size int) error {
	g := gradient.Gradient{
		Type:  gradient.Linear,
		Angle: 135,
		Stops: []gradient.Stop{
			{Offset: 0, Color: forge.Hex("#FF512F")},
			{Offset: 1, Color: forge.Hex("#DD2476")},
		},
	}
	pm, err := g.Render(size, size)
	if err != nil {
		return fmt.Errorf("gradient: %w", err)
	}
	if err := pm.SavePNG(filepath.Join(dir, "gradient.png")); err != nil {
		return err
	}
	css, err := g.CSS()
	if err != nil {
		return err
	}
	return writeText(dir, "gradient.css", "background: "+css+";\n")
}

func writePattern(dir string) error {
	o := pattern.DefaultOptions()
	o.Kind = pattern.Dots
	o.Foreground = forge.Hex("#1F2937")
	svg, err := pattern.SVG(o)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	return writeText(dir, "pattern.svg", svg)
}

func writeShadow(dir string) error {
	layers := shadow.Elevation(3, forge.RGBA{A: 1})
	return writeText(dir, "shadow.css",
		".card { box-shadow: "+shadow.CSS(layers)+"; }\n")
}

func writeContrast(dir string) error {
	pairs := []contrast.Pair{
		{Name: "body", Foreground: forge.Hex("#1F2937"), Background: forge.Hex("#FFFFFF")},
		{Name: "muted", Foreground: forge.Hex("#9CA3AF"), Background: forge.Hex("#FFFFFF")},
		{Name: "inverse", Foreground: forge.Hex("#F9FAFB"), Background: forge.Hex("#111827")},
	}
	return writeText(dir, "contrast.md", contrast.Report("Palette contrast", pairs))
}

func writeTypeScale(dir string) error {
	o := typescale.Options{Base: 16, StepsUp: 5, StepsDown: 2}
	ratio, err := typescale.Ratio("major-third")
	if err != nil {
		return err
	}
	o.Ratio = ratio
	steps, err := typescale.Generate(o)
	if err != nil {
		return fmt.Errorf("typescale: %w", err)
	}
	return writeText(dir, "typescale.css", typescale.CSS(steps))
}

func writeTimeline(dir string) error {
	tl := timeline.Timeline{Tracks: []timeline.Track{{
		Name:       "fade-up",
		DurationMS: 400,
		Easing:     "ease-out",
		Iterations: 1,
		Keyframes: []timeline.Keyframe{
			{At: 0, Props: map[string]string{"opacity": "0", "transform": "translateY(8px)"}},
			{At: 100, Props: map[string]string{"opacity": "1", "transform": "none"}},
		},
	}}}
	css, err := tl.CSS()
	if err != nil {
		return fmt.Errorf("timeline: %w", err)
	}
	return writeText(dir, "timeline.css", css)
}

func writeRegexReport(dir string) error {
	rep, err := regexlab.Run(`(?P<key>[A-Z_]+)=(?P<value>\S+)`, "", []string{
		"FORGE_SEED=42",
		"no assignments here",
	})
	if err != nil {
		return fmt.Errorf("regexlab: %w", err)
	}
	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return writeText(dir, "regex-report.json", string(raw))
}

func writeIcons(dir string) error {
	o := icons.DefaultOptions()
	o.Shape = icons.Squircle
	assets, err := icons.Bundle(context.Background(), o)
	if err != nil {
		return fmt.Errorf("icons: %w", err)
	}
	for _, a := range assets {
		if err := os.WriteFile(filepath.Join(dir, a.Name), a.PNG, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func writeDataset(dir string, seed int64) error {
	o := dataset.DefaultOptions()
	o.Seed = seed
	ds, err := dataset.Generate(o)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	csv, err := ds.CSV()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "users.csv"), csv, 0o644); err != nil {
		return err
	}
	xlsx, err := ds.XLSX()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "users.xlsx"), xlsx, 0o644)
}

func writeText(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64AsInt(key string, fallback int) int {
	return int(envInt(key, int64(fallback)))
}
