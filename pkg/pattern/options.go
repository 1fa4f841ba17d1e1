package pattern

import (
	"image/color"
	"math/rand/v2"
)

// Slider ranges. Values outside these bounds are clamped, never rejected.
const (
	MinScale      = 10
	MaxScale      = 100
	MinComplexity = 1
	MaxComplexity = 100
	MinContrast   = 0
	MaxContrast   = 100
	MinSharpness  = 0
	MaxSharpness  = 100
)

// Options holds the numeric parameters and palette for one generation run.
//
// Colors is an ordered palette: index 0 is the base fill, indices 1..n are
// layered foreground colors. Families degrade gracefully when fewer colors
// than their preferred layer count are supplied.
//
// Zero-valued fields are filled from the family's preset (see
// PresetSettings); an explicit zero therefore cannot be expressed for the
// sliders, matching how the presets define each family's look.
type Options struct {
	Scale      float64 // feature size, [10, 100]
	Complexity float64 // feature count / iteration driver, [1, 100]
	Contrast   float64 // post-processing contrast, [0, 100], 50 is neutral
	Sharpness  float64 // post-processing sharpen, [0, 100], engaged above 50
	Colors     []color.RGBA

	// Family-specific extras.
	BlockSize      int     // digital: pixel size of one grid block
	OrientationDeg float64 // tigerstripe: patch direction in degrees
	Blockiness     float64 // digital: smoothing strength multiplier, (0, 2]

	// Seed drives both the noise field and the geometry RNG. Zero selects a
	// random seed; the resolved value is reported back by Generate.
	Seed int64
}

// Clamp forces all sliders into their documented ranges and drops
// zero-length palettes down to a single opaque gray so generation can
// always proceed.
func (o *Options) Clamp() {
	o.Scale = clampF(o.Scale, MinScale, MaxScale)
	o.Complexity = clampF(o.Complexity, MinComplexity, MaxComplexity)
	o.Contrast = clampF(o.Contrast, MinContrast, MaxContrast)
	o.Sharpness = clampF(o.Sharpness, MinSharpness, MaxSharpness)
	if o.Blockiness < 0 {
		o.Blockiness = 0
	} else if o.Blockiness > 2 {
		o.Blockiness = 2
	}
	if o.BlockSize < 0 {
		o.BlockSize = 0
	}
	if len(o.Colors) == 0 {
		o.Colors = []color.RGBA{{R: 128, G: 128, B: 128, A: 255}}
	}
}

// withDefaults merges the family preset into unset fields, clamps sliders,
// and resolves a zero seed to a random one. The receiver is not modified.
func (o Options) withDefaults(f Family) Options {
	def := PresetSettings(f)

	if o.Scale == 0 {
		o.Scale = def.Scale
	}
	if o.Complexity == 0 {
		o.Complexity = def.Complexity
	}
	if o.Contrast == 0 {
		o.Contrast = def.Contrast
	}
	if o.Sharpness == 0 {
		o.Sharpness = def.Sharpness
	}
	if len(o.Colors) == 0 {
		o.Colors = PresetColors(f)
	}
	if o.BlockSize == 0 {
		o.BlockSize = def.BlockSize
	}
	if o.OrientationDeg == 0 {
		o.OrientationDeg = def.OrientationDeg
	}
	if o.Blockiness == 0 {
		o.Blockiness = def.Blockiness
	}
	if o.Seed == 0 {
		o.Seed = int64(rand.Uint64() >> 1)
		if o.Seed == 0 {
			o.Seed = 1
		}
	}

	o.Clamp()
	return o
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampChan(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
