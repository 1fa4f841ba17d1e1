package cli

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andreaperaltro/camo/pkg/errors"
	"github.com/andreaperaltro/camo/pkg/gallery"
	"github.com/andreaperaltro/camo/pkg/pattern"
	"github.com/andreaperaltro/camo/pkg/pipeline"
	"github.com/andreaperaltro/camo/pkg/raster"
)

// generateFlags collects every flag of the generate command.
type generateFlags struct {
	width      int
	height     int
	seed       int64
	scale      float64
	complexity float64
	contrast   float64
	sharpness  float64
	blockSize  int
	orient     float64
	blockiness float64
	colors     []string
	palette    string
	formatsStr string
	output     string
	noCache    bool
	refresh    bool
	save       bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate [family]",
		Short: "Generate a camouflage texture",
		Long: `Generate a seamless camouflage texture.

Available families: woodland, desert, urban, digital, flecktarn, tigerstripe.
When no family is given and the terminal is interactive, a picker is shown.

All sliders default to the family preset; pass --seed to reproduce a texture
exactly. The output tiles without visible seams and a verification result is
reported after generation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := ""
			if len(args) > 0 {
				family = args[0]
			} else {
				picked, err := pickFamily()
				if err != nil {
					return err
				}
				if picked == "" {
					return nil // user quit the picker
				}
				family = picked
			}
			return c.runGenerate(cmd.Context(), family, f)
		},
	}

	cmd.Flags().IntVar(&f.width, "width", pipeline.DefaultWidth, "texture width in pixels")
	cmd.Flags().IntVar(&f.height, "height", pipeline.DefaultHeight, "texture height in pixels")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "feature size (10-100, 0 uses preset)")
	cmd.Flags().Float64Var(&f.complexity, "complexity", 0, "feature density (1-100, 0 uses preset)")
	cmd.Flags().Float64Var(&f.contrast, "contrast", 0, "contrast (0-100, 50 neutral, 0 uses preset)")
	cmd.Flags().Float64Var(&f.sharpness, "sharpness", 0, "sharpening (0-100, engaged above 50, 0 uses preset)")
	cmd.Flags().IntVar(&f.blockSize, "block-size", 0, "digital: block size in pixels (0 uses preset)")
	cmd.Flags().Float64Var(&f.orient, "orientation", 0, "tigerstripe: stripe direction in degrees")
	cmd.Flags().Float64Var(&f.blockiness, "blockiness", 0, "digital: smoothing multiplier (0 uses preset)")
	cmd.Flags().StringSliceVar(&f.colors, "colors", nil, "palette as hex colors (e.g. #445C2B,#79573E)")
	cmd.Flags().StringVar(&f.palette, "palette", "", "named palette from the config profile")
	cmd.Flags().StringVarP(&f.formatsStr, "format", "f", "", "output format(s): png (default), svg (comma-separated)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable artifact caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "bypass the cache and re-render")
	cmd.Flags().BoolVar(&f.save, "save", false, "save the result to the gallery")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, family string, f generateFlags) error {
	palette, err := c.resolvePalette(f)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Family:  family,
		Width:   f.width,
		Height:  f.height,
		Formats: parseFormats(f.formatsStr),
		Refresh: f.refresh,
		Logger:  loggerFromContext(ctx),
		Pattern: pattern.Options{
			Scale:          f.scale,
			Complexity:     f.complexity,
			Contrast:       f.contrast,
			Sharpness:      f.sharpness,
			Colors:         palette,
			BlockSize:      f.blockSize,
			OrientationDeg: f.orient,
			Blockiness:     f.blockiness,
			Seed:           f.seed,
		},
	}
	if f.save && !containsFormat(opts.Formats, pipeline.FormatPNG) {
		// The gallery keeps PNG bytes, so make sure one gets rendered.
		opts.Formats = append(opts.Formats, pipeline.FormatPNG)
	}

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spin := newSpinner(ctx, fmt.Sprintf("Generating %s texture...", family))

	result, err := runner.Generate(ctx, opts)
	if err != nil {
		spin.fail("Generation failed")
		return err
	}
	spin.stop()

	for _, w := range result.Warnings {
		printWarning("%s", w)
	}
	printSuccess("Generated %s texture (%dx%d)", result.Family, f.width, f.height)
	printTextureStats(result.Options.Seed, result.Seamless, result.CacheInfo.RenderHit)

	if err := writeArtifacts(result, opts.Formats, f.output); err != nil {
		return err
	}

	if f.save {
		entry, err := c.saveToGallery(ctx, result)
		if err != nil {
			return err
		}
		printDetail("Saved to gallery as %s", entry.ID)
		printNextStep("Re-render it later", fmt.Sprintf("camo gallery show %s", entry.ID))
	}
	return nil
}

// resolvePalette builds the palette from --palette or --colors. Both empty
// means the family preset applies.
func (c *CLI) resolvePalette(f generateFlags) ([]color.RGBA, error) {
	if f.palette != "" {
		cfg, err := c.loadConfig()
		if err != nil {
			return nil, err
		}
		p, ok := cfg.Palettes[f.palette]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "palette %q not found in config profile", f.palette)
		}
		return parseColorList(p.Colors)
	}
	if len(f.colors) > 0 {
		return parseColorList(f.colors)
	}
	return nil, nil
}

func parseColorList(ss []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(ss))
	for _, s := range ss {
		c, err := raster.ParseHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (c *CLI) saveToGallery(ctx context.Context, result *pipeline.Result) (*gallery.Entry, error) {
	p := newProgress(loggerFromContext(ctx))
	store, err := c.newGallery(ctx)
	if err != nil {
		return nil, err
	}
	defer store.Close(ctx)

	entry := gallery.NewEntry(string(result.Family), result.Options, result.Seamless, result.Artifacts[pipeline.FormatPNG])
	if err := store.Put(ctx, entry); err != nil {
		return nil, err
	}
	p.done("Saved to gallery")
	return entry, nil
}

// writeArtifacts writes every rendered format to disk. With no explicit
// output the file is named camo-<family>-<seed>.<ext> in the working dir;
// with multiple formats an explicit output is treated as a base path.
func writeArtifacts(result *pipeline.Result, formats []string, output string) error {
	for _, format := range formats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		path := artifactPath(result, format, output, len(formats) > 1)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		printFile(path)
	}
	return nil
}

func artifactPath(result *pipeline.Result, format, output string, multi bool) string {
	if output == "" {
		return fmt.Sprintf("camo-%s-%d.%s", result.Family, result.Options.Seed, format)
	}
	if !multi {
		return output
	}
	base := output
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base + "." + format
}

func containsFormat(formats []string, want string) bool {
	for _, f := range formats {
		if f == want {
			return true
		}
	}
	return false
}
