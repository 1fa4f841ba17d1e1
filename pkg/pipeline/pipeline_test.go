package pipeline

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/andreaperaltro/camo/pkg/cache"
	"github.com/andreaperaltro/camo/pkg/pattern"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"svg", false},
		{"pdf", true},
		{"PNG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"png", "svg"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"png", "invalid"}); err == nil {
		t.Error("invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Family: "woodland"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if got, want := opts.Width, DefaultWidth; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got, want := opts.Height, DefaultHeight; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPNG {
		t.Errorf("formats = %v, want [png]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("logger default not applied")
	}
}

func TestOptionsRejectsBadDimensions(t *testing.T) {
	for _, opts := range []Options{
		{Width: -1, Height: 64},
		{Width: 64, Height: -1},
		{Width: MaxDimension + 1, Height: 64},
	} {
		o := opts
		if err := o.ValidateAndSetDefaults(); err == nil {
			t.Errorf("dimensions %dx%d accepted", opts.Width, opts.Height)
		}
	}
}

func TestRunnerGenerate(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	opts := Options{
		Family:  "woodland",
		Width:   64,
		Height:  64,
		Formats: []string{"png", "svg"},
		Pattern: pattern.Options{Seed: 1234},
	}

	result, err := runner.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Raster == nil {
		t.Fatal("result has no raster")
	}
	if got, want := result.Raster.W, 64; got != want {
		t.Errorf("raster width = %d, want %d", got, want)
	}
	if result.Family != pattern.Woodland {
		t.Errorf("family = %q, want woodland", result.Family)
	}
	if result.FellBack {
		t.Error("known family reported fallback")
	}
	if got, want := result.Options.Seed, int64(1234); got != want {
		t.Errorf("resolved seed = %d, want %d", got, want)
	}
	for _, format := range []string{"png", "svg"} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("missing %s artifact", format)
		}
	}
}

func TestRunnerResolvesRandomSeed(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	opts := Options{Family: "desert", Width: 32, Height: 32}

	result, err := runner.Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Options.Seed == 0 {
		t.Error("random seed not resolved")
	}
}

// An unknown family must behave exactly like an explicit woodland request
// with the same seed, plus a warning.
func TestRunnerUnknownFamilyFallback(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	ctx := context.Background()

	unknown, err := runner.Generate(ctx, Options{
		Family: "camouflage-xyz", Width: 64, Height: 64,
		Pattern: pattern.Options{Seed: 99},
	})
	if err != nil {
		t.Fatalf("Generate unknown: %v", err)
	}
	if !unknown.FellBack {
		t.Error("fallback not reported")
	}
	if len(unknown.Warnings) == 0 {
		t.Error("fallback produced no warning")
	}
	if unknown.Family != pattern.Woodland {
		t.Errorf("fallback family = %q, want woodland", unknown.Family)
	}

	woodland, err := runner.Generate(ctx, Options{
		Family: "woodland", Width: 64, Height: 64,
		Pattern: pattern.Options{Seed: 99},
	})
	if err != nil {
		t.Fatalf("Generate woodland: %v", err)
	}
	if !bytes.Equal(unknown.Raster.Pix, woodland.Raster.Pix) {
		t.Error("unknown family does not match woodland output")
	}
}

// The organic families replicate shapes toroidally and draw grain from a
// periodic noise blend, so their output should tile without visible seams.
func TestOrganicFamiliesSeamless(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	families := []string{"woodland", "desert", "urban", "flecktarn", "tigerstripe"}

	for _, fam := range families {
		t.Run(fam, func(t *testing.T) {
			result, err := runner.Generate(context.Background(), Options{
				Family: fam, Width: 128, Height: 128,
				Pattern: pattern.Options{Seed: 4321},
			})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !result.Seamless {
				t.Errorf("texture not seamless: warnings %v", result.Warnings)
			}
		})
	}
}

func TestFlecktarnSeedsDiffer(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	ctx := context.Background()

	a, err := runner.Generate(ctx, Options{
		Family: "flecktarn", Width: 128, Height: 128,
		Pattern: pattern.Options{Seed: 7},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := runner.Generate(ctx, Options{
		Family: "flecktarn", Width: 128, Height: 128,
		Pattern: pattern.Options{Seed: 8},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if bytes.Equal(a.Raster.Pix, b.Raster.Pix) {
		t.Error("different seeds produced identical textures")
	}
	if !a.Seamless || !b.Seamless {
		t.Errorf("seam check failed: a=%v b=%v", a.Seamless, b.Seamless)
	}
}

func TestRunnerArtifactCache(t *testing.T) {
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fileCache, nil, discardLogger())
	ctx := context.Background()
	opts := Options{
		Family: "urban", Width: 64, Height: 64,
		Pattern: pattern.Options{Seed: 55},
	}

	first, err := runner.Generate(ctx, opts)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run reported a cache hit")
	}

	second, err := runner.Generate(ctx, opts)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run missed the cache")
	}
	if !bytes.Equal(first.Artifacts["png"], second.Artifacts["png"]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	refreshed := opts
	refreshed.Refresh = true
	third, err := runner.Generate(ctx, refreshed)
	if err != nil {
		t.Fatalf("refresh Generate: %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run reported a cache hit")
	}
}

func TestRunnerDeterministic(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	ctx := context.Background()
	opts := Options{
		Family: "digital", Width: 64, Height: 64,
		Pattern: pattern.Options{Seed: 321},
	}

	a, err := runner.Generate(ctx, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := runner.Generate(ctx, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Equal(a.Raster.Pix, b.Raster.Pix) {
		t.Error("same seed produced different textures")
	}
	if !bytes.Equal(a.Artifacts["png"], b.Artifacts["png"]) {
		t.Error("same seed produced different artifacts")
	}
}
