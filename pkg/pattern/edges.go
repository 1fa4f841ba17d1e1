package pattern

import (
	"image/color"
	"math/rand/v2"

	"github.com/andreaperaltro/camo/pkg/noise"
	"github.com/andreaperaltro/camo/pkg/raster"
)

// Point is an integer raster coordinate.
type Point struct {
	X, Y int
}

// EdgeFinder scans a raster for pixels bordering a reference color. It
// samples on a fixed stride rather than every pixel, trading a little
// placement precision for scan speed.
type EdgeFinder struct {
	// Stride is the sampling step in pixels; zero means 4.
	Stride int

	// Tolerance is the per-channel match tolerance; zero means 8.
	Tolerance uint8
}

// FindBoundaries returns sampled points that match ref within tolerance and
// have at least one non-matching pixel in their same-stride neighborhood
// (with coordinate wraparound). Candidates are then thinned probabilistically
// by density in [0, 1] and gated by a noise threshold so downstream stripe
// placement looks organic. An empty result is valid.
func (e EdgeFinder) FindBoundaries(r *raster.Raster, ref color.RGBA, density float64, nf *noise.Field, rng *rand.Rand) []Point {
	stride := e.Stride
	if stride <= 0 {
		stride = 4
	}
	tol := e.Tolerance
	if tol == 0 {
		tol = 8
	}
	if density < 0 {
		density = 0
	} else if density > 1 {
		density = 1
	}

	var out []Point
	for y := 0; y < r.H; y += stride {
		for x := 0; x < r.W; x += stride {
			if !matches(r.At(x, y), ref, tol) {
				continue
			}

			boundary := false
			for dy := -stride; dy <= stride && !boundary; dy += stride {
				for dx := -stride; dx <= stride; dx += stride {
					if dx == 0 && dy == 0 {
						continue
					}
					if !matches(r.AtWrapped(x+dx, y+dy), ref, tol) {
						boundary = true
						break
					}
				}
			}
			if !boundary {
				continue
			}

			if rng.Float64() > density {
				continue
			}
			if nf.Noise01(float64(x)*0.015, float64(y)*0.015) < 0.35 {
				continue
			}
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

func matches(c, ref color.RGBA, tol uint8) bool {
	return absDiff(c.R, ref.R) <= tol &&
		absDiff(c.G, ref.G) <= tol &&
		absDiff(c.B, ref.B) <= tol
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
