package pattern

import (
	"image/color"

	"github.com/andreaperaltro/camo/pkg/raster"
)

// presetPalettes holds the default palette per family. Index 0 is the base
// fill; later entries are layered in order.
var presetPalettes = map[Family][]color.RGBA{
	Woodland: {
		raster.MustParseHex("#4A5D3A"),
		raster.MustParseHex("#2D3B1E"),
		raster.MustParseHex("#6B5D3F"),
		raster.MustParseHex("#8A8B6C"),
		raster.MustParseHex("#1E1E14"),
	},
	Desert: {
		raster.MustParseHex("#C2B280"),
		raster.MustParseHex("#A08C5F"),
		raster.MustParseHex("#D6C7A1"),
		raster.MustParseHex("#8A7550"),
	},
	Urban: {
		raster.MustParseHex("#9E9E9E"),
		raster.MustParseHex("#6E6E6E"),
		raster.MustParseHex("#C8C8C8"),
		raster.MustParseHex("#4A4A4A"),
		raster.MustParseHex("#2E2E2E"),
	},
	Digital: {
		raster.MustParseHex("#445C2B"),
		raster.MustParseHex("#79573E"),
		raster.MustParseHex("#B7A998"),
		raster.MustParseHex("#1B0E00"),
		raster.MustParseHex("#000000"),
	},
	Flecktarn: {
		raster.MustParseHex("#8A9A70"),
		raster.MustParseHex("#4C5B3C"),
		raster.MustParseHex("#6A4E37"),
		raster.MustParseHex("#33382B"),
		raster.MustParseHex("#1C1C16"),
	},
	TigerStripe: {
		raster.MustParseHex("#5A6B43"),
		raster.MustParseHex("#8A9565"),
		raster.MustParseHex("#B8A77E"),
		raster.MustParseHex("#1A1A12"),
	},
}

// presetSettings holds the default sliders per family. Seed stays zero so
// every run without an explicit seed is randomized.
var presetSettings = map[Family]Options{
	Woodland:    {Scale: 45, Complexity: 55, Contrast: 50, Sharpness: 50},
	Desert:      {Scale: 65, Complexity: 30, Contrast: 45, Sharpness: 50},
	Urban:       {Scale: 50, Complexity: 50, Contrast: 55, Sharpness: 55},
	Digital:     {Scale: 35, Complexity: 45, Contrast: 50, Sharpness: 50, BlockSize: 8, Blockiness: 1},
	Flecktarn:   {Scale: 20, Complexity: 70, Contrast: 50, Sharpness: 55},
	TigerStripe: {Scale: 50, Complexity: 50, Contrast: 50, Sharpness: 50, OrientationDeg: 15},
}

// PresetColors returns a copy of the family's default palette. Unknown
// families return the Woodland palette, mirroring Resolve's fallback.
func PresetColors(f Family) []color.RGBA {
	p, ok := presetPalettes[f]
	if !ok {
		p = presetPalettes[Woodland]
	}
	out := make([]color.RGBA, len(p))
	copy(out, p)
	return out
}

// PresetSettings returns the family's default sliders (palette not
// included; see PresetColors). Unknown families return Woodland defaults.
func PresetSettings(f Family) Options {
	s, ok := presetSettings[f]
	if !ok {
		s = presetSettings[Woodland]
	}
	return s
}
