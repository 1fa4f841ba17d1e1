// Package pattern implements the camouflage generation engine: six pattern
// families that turn seeded gradient noise and randomized geometry into a
// filled raster, plus the drawing primitives they share.
//
// # Families
//
// Each family is a recipe over the same primitives:
//   - woodland: elongated organic blobs on grid-distributed centers
//   - desert: large smooth blobs with a fine sand-grain overlay
//   - urban: randomly mixed rectangles, triangles and polygons
//   - digital: noise quantized onto a block grid, smoothed by a cellular
//     automaton with toroidal adjacency
//   - flecktarn: small spots placed by a propose-then-cull pipeline
//   - tigerstripe: directional patches with edge-seeking stripes
//
// # Seamless tiling
//
// All free-form shapes are replicated across the 3x3 toroidal offset grid so
// any part crossing the raster boundary reappears on the opposite edge. The
// digital family instead relies on toroidal adjacency inside its smoothing
// grid and never draws across raster edges. The shared fine-grain texture
// pass samples period-wrapped noise for the same reason.
//
// # Usage
//
//	r := raster.New(512, 512)
//	eff, err := pattern.Generate(r, pattern.Woodland, pattern.Options{Complexity: 60})
//
// Generate mutates the raster in place and returns the effective options
// (defaults merged, sliders clamped, seed resolved) used for the run.
package pattern

import (
	"image/color"
	"math/rand/v2"
	"strings"

	"github.com/andreaperaltro/camo/pkg/errors"
	"github.com/andreaperaltro/camo/pkg/noise"
	"github.com/andreaperaltro/camo/pkg/raster"
)

// Family identifies one of the six pattern algorithms.
type Family string

// The supported pattern families.
const (
	Woodland    Family = "woodland"
	Desert      Family = "desert"
	Urban       Family = "urban"
	Digital     Family = "digital"
	Flecktarn   Family = "flecktarn"
	TigerStripe Family = "tigerstripe"
)

// Families lists all supported families in display order.
func Families() []Family {
	return []Family{Woodland, Desert, Urban, Digital, Flecktarn, TigerStripe}
}

// Resolve maps a family name to a Family. Unrecognized names fall back to
// Woodland; ok reports whether the name was recognized so callers can warn.
func Resolve(name string) (f Family, ok bool) {
	switch Family(strings.ToLower(strings.TrimSpace(name))) {
	case Woodland:
		return Woodland, true
	case Desert:
		return Desert, true
	case Urban:
		return Urban, true
	case Digital:
		return Digital, true
	case Flecktarn:
		return Flecktarn, true
	case TigerStripe, "tiger":
		return TigerStripe, true
	default:
		return Woodland, false
	}
}

// gen carries the per-invocation state shared by every family recipe. One
// gen owns its raster, noise field and RNG exclusively for the duration of
// a single Generate call.
type gen struct {
	r    *raster.Raster
	o    Options
	nf   *noise.Field
	rng  *rand.Rand
	comp *Compositor

	// texture disables the fine-grain pass when false; layer-structure tests
	// inspect the raster before per-pixel noise is layered on top.
	texture bool
}

type recipe func(*gen)

func recipeFor(f Family) recipe {
	switch f {
	case Desert:
		return (*gen).desert
	case Urban:
		return (*gen).urban
	case Digital:
		return (*gen).digital
	case Flecktarn:
		return (*gen).flecktarn
	case TigerStripe:
		return (*gen).tigerStripe
	default:
		return (*gen).woodland
	}
}

// Generate fills r with the given family's pattern. Defaults are merged and
// sliders clamped before generation; the effective options (including the
// resolved seed) are returned so callers can record or replay the run.
func Generate(r *raster.Raster, f Family, opts Options) (Options, error) {
	return generate(r, f, opts, true)
}

func generate(r *raster.Raster, f Family, opts Options, texture bool) (Options, error) {
	if r == nil || len(r.Pix) == 0 {
		return opts, errors.New(errors.ErrCodeRasterUnavailable, "no raster to draw on")
	}

	eff := opts.withDefaults(f)

	g := &gen{
		r:       r,
		o:       eff,
		nf:      noise.New(float64(eff.Seed)),
		rng:     rand.New(rand.NewPCG(uint64(eff.Seed), uint64(eff.Seed)^0xdeadbeef)),
		texture: texture,
	}
	g.comp = &Compositor{R: r, Noise: g.nf}

	g.r.Fill(eff.Colors[0])
	recipeFor(f)(g)
	return eff, nil
}

// layerColors returns the foreground colors (indices 1..n), capped at limit
// when limit is positive. Families iterate over this slice and so skip any
// layers the palette cannot supply.
func (g *gen) layerColors(limit int) []color.RGBA {
	fg := g.o.Colors[1:]
	if limit > 0 && len(fg) > limit {
		fg = fg[:limit]
	}
	return fg
}

// span returns a value in [min, max) drawn uniformly from the gen's RNG.
// Shape sizes always come from spans so extreme complexity values cannot
// produce zero-size or unbounded geometry.
func (g *gen) span(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
