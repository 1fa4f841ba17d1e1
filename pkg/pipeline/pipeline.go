// Package pipeline provides the core texture generation pipeline.
//
// This package implements the complete generate → postfx → verify → render
// pipeline that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Generate: Fill a raster with the requested pattern family
//  2. PostFX: Apply contrast and sharpening
//  3. Verify: Check the opposite edges for seamless tiling
//  4. Render: Encode output in various formats (PNG, SVG)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Family:  "woodland",
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Generate(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andreaperaltro/camo/pkg/cache"
	"github.com/andreaperaltro/camo/pkg/errors"
	"github.com/andreaperaltro/camo/pkg/pattern"
	"github.com/andreaperaltro/camo/pkg/raster"
)

const (
	// DefaultWidth is the default texture width in pixels.
	DefaultWidth = 512

	// DefaultHeight is the default texture height in pixels.
	DefaultHeight = 512

	// MaxDimension caps texture size so a single request cannot exhaust
	// memory. Requests above the cap are rejected, not clamped.
	MaxDimension = 4096
)

// Format constants for output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatSVG: true,
}

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
//
// Pattern sliders follow the zero-is-default convention: unset fields are
// filled from the family preset during generation.
type Options struct {
	Family  string          `json:"family"`
	Pattern pattern.Options `json:"pattern"`
	Width   int             `json:"width,omitempty"`
	Height  int             `json:"height,omitempty"`
	Formats []string        `json:"formats,omitempty"`
	Refresh bool            `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Raster is the generated texture, after post-processing.
	Raster *raster.Raster

	// Family is the family actually used, after name resolution.
	Family pattern.Family

	// FellBack reports that the requested family was unknown and the
	// default family was used instead.
	FellBack bool

	// Options are the fully resolved pattern options, including the seed
	// that was actually used. Feeding them back reproduces the texture.
	Options pattern.Options

	// Seamless reports whether both edge pairs matched within tolerance.
	Seamless bool

	// Warnings collects non-fatal issues (family fallback, seam check
	// failures). The texture is still usable when warnings are present.
	Warnings []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	GenerateTime time.Duration
	PostFXTime   time.Duration
	VerifyTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 1 || o.Height < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid dimensions %dx%d", o.Width, o.Height)
	}
	if o.Width > MaxDimension || o.Height > MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput, "dimensions %dx%d exceed maximum %d", o.Width, o.Height, MaxDimension)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one rendered format. The
// pattern options must already be resolved so the key pins the actual seed.
func (o *Options) ArtifactKeyOpts(resolved pattern.Options, format string) cache.ArtifactKeyOpts {
	colors := make([]string, len(resolved.Colors))
	for i, c := range resolved.Colors {
		colors[i] = raster.FormatHex(c)
	}
	return cache.ArtifactKeyOpts{
		Width:       o.Width,
		Height:      o.Height,
		Scale:       resolved.Scale,
		Complexity:  resolved.Complexity,
		Contrast:    resolved.Contrast,
		Sharpness:   resolved.Sharpness,
		Colors:      colors,
		BlockSize:   resolved.BlockSize,
		Orientation: resolved.OrientationDeg,
		Blockiness:  resolved.Blockiness,
		Seed:        resolved.Seed,
		Format:      format,
	}
}
