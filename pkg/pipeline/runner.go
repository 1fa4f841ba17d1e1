package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andreaperaltro/camo/pkg/cache"
	"github.com/andreaperaltro/camo/pkg/errors"
	"github.com/andreaperaltro/camo/pkg/export"
	"github.com/andreaperaltro/camo/pkg/observability"
	"github.com/andreaperaltro/camo/pkg/pattern"
	"github.com/andreaperaltro/camo/pkg/postfx"
	"github.com/andreaperaltro/camo/pkg/raster"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options; each
// call owns its raster and noise field for the duration of the call.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Verifier postfx.Verifier
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Generate runs the complete generate → postfx → verify → render pipeline.
//
// An unknown family name is not an error: generation falls back to the
// default family and the result carries a warning. A failed seam check is
// likewise diagnostic only.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	fam, known := pattern.Resolve(opts.Family)
	result.Family = fam
	if !known {
		result.FellBack = true
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("unknown family %q, using %s", opts.Family, fam))
		opts.Logger.Warn("unknown family, falling back", "requested", opts.Family, "using", fam)
	}

	// Stage 1: Generate
	observability.Generation().OnGenerateStart(ctx, string(fam), opts.Pattern.Seed)
	genStart := time.Now()
	rst := raster.New(opts.Width, opts.Height)
	resolved, err := pattern.Generate(rst, fam, opts.Pattern)
	result.Stats.GenerateTime = time.Since(genStart)
	if err != nil {
		observability.Generation().OnGenerateComplete(ctx, string(fam), opts.Pattern.Seed, false, result.Stats.GenerateTime, err)
		return nil, err
	}
	result.Raster = rst
	result.Options = resolved

	opts.Logger.Info("generated pattern",
		"family", fam,
		"seed", resolved.Seed,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"duration", result.Stats.GenerateTime)

	// Stage 2: PostFX
	fxStart := time.Now()
	postfx.Apply(rst, resolved.Contrast, resolved.Sharpness)
	result.Stats.PostFXTime = time.Since(fxStart)

	// Stage 3: Verify
	verifyStart := time.Now()
	horizontal, vertical := r.Verifier.CheckAxes(rst)
	result.Seamless = horizontal && vertical
	result.Stats.VerifyTime = time.Since(verifyStart)
	if !horizontal {
		result.Warnings = append(result.Warnings, "seam check failed on the horizontal axis")
	}
	if !vertical {
		result.Warnings = append(result.Warnings, "seam check failed on the vertical axis")
	}
	if !result.Seamless {
		opts.Logger.Warn("texture does not tile cleanly",
			"horizontal", horizontal, "vertical", vertical)
	}
	observability.Generation().OnGenerateComplete(ctx, string(fam), resolved.Seed, result.Seamless, result.Stats.GenerateTime, nil)

	// Stage 4: Render
	observability.Generation().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, allHit, err := r.renderArtifacts(ctx, rst, fam, resolved, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Generation().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = allHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", allHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderArtifacts encodes every requested format, consulting the artifact
// cache per format. The bool result reports whether every format was a hit.
func (r *Runner) renderArtifacts(ctx context.Context, rst *raster.Raster, fam pattern.Family, resolved pattern.Options, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(string(fam), opts.ArtifactKeyOpts(resolved, format))

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allHit = false

		data, err := r.renderFormat(rst, fam, resolved, format)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			opts.Logger.Debug("artifact cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return artifacts, allHit, nil
}

func (r *Runner) renderFormat(rst *raster.Raster, fam pattern.Family, resolved pattern.Options, format string) ([]byte, error) {
	switch format {
	case FormatPNG:
		return export.RenderPNG(rst)
	case FormatSVG:
		title := fmt.Sprintf("%s %dx%d seed %d", fam, rst.W, rst.H, resolved.Seed)
		return export.RenderSVG(rst, export.WithTitle(title))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
