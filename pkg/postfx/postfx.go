// Package postfx applies the post-generation raster adjustments: a
// 128-anchored contrast scale and an unsharp-mask sharpen pass. Both
// operate in place and treat their neutral slider positions as exact
// no-ops. The package also hosts the seamless-tiling verifier.
package postfx

import "github.com/andreaperaltro/camo/pkg/raster"

// maximum unsharp-mask strength at sharpness 100.
const maxSharpenAmount = 0.8

// Apply runs the contrast and sharpen passes with the given slider values
// (both on the 0-100 scale; 50 is neutral for contrast, sharpening engages
// above 50). A nil or empty raster is left untouched: post-processing
// failure degrades the result, it never fails the request.
func Apply(r *raster.Raster, contrast, sharpness float64) {
	if r == nil || len(r.Pix) == 0 {
		return
	}
	Contrast(r, contrast)
	Sharpen(r, sharpness)
}

// Contrast rescales every channel around 128 by 1+(contrast-50)/100,
// clamped to the valid range. contrast=50 leaves the raster unchanged.
func Contrast(r *raster.Raster, contrast float64) {
	if r == nil || contrast == 50 {
		return
	}
	factor := 1 + (contrast-50)/100

	// Channel lookup table; the transform is per-value.
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		lut[v] = clampChan(128 + (float64(v)-128)*factor)
	}

	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i] = lut[r.Pix[i]]
		r.Pix[i+1] = lut[r.Pix[i+1]]
		r.Pix[i+2] = lut[r.Pix[i+2]]
	}
}

// Sharpen applies an unsharp mask: each channel is pushed away from a
// blurred copy by (original-blurred)*amount, where amount scales from 0 at
// sharpness 50 up to 0.8 at sharpness 100. Values at or below 50 are a
// no-op.
func Sharpen(r *raster.Raster, sharpness float64) {
	if r == nil || sharpness <= 50 {
		return
	}
	amount := (sharpness - 50) / 50 * maxSharpenAmount

	blurred := boxBlurWrapped(r, 1)
	for i := 0; i < len(r.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			orig := float64(r.Pix[i+c])
			blur := float64(blurred[i+c])
			r.Pix[i+c] = clampChan(orig + (orig-blur)*amount)
		}
	}
}

// boxBlurWrapped returns a blurred copy of the pixel data using a
// (2*radius+1)^2 box kernel with toroidal wrapping, so sharpening cannot
// introduce a seam of its own.
func boxBlurWrapped(r *raster.Raster, radius int) []uint8 {
	out := make([]uint8, len(r.Pix))
	kernel := (2*radius + 1) * (2*radius + 1)

	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			var sr, sg, sb int
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					c := r.AtWrapped(x+dx, y+dy)
					sr += int(c.R)
					sg += int(c.G)
					sb += int(c.B)
				}
			}
			i := (y*r.W + x) * 4
			out[i] = uint8(sr / kernel)
			out[i+1] = uint8(sg / kernel)
			out[i+2] = uint8(sb / kernel)
			out[i+3] = r.Pix[i+3]
		}
	}
	return out
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
