// Package noise implements seeded 2D gradient noise in the classic
// improved-Perlin formulation: a shuffled 256-entry permutation table
// (duplicated to 512 for wraparound lookups), a quintic fade curve, and
// bilinear interpolation of corner gradient dot products.
//
// A Field is deterministic: two fields seeded with the same value return
// bit-identical results for identical query coordinates. This property is
// relied upon by the pattern generators, which sample the same field across
// multiple drawing passes within one generation run.
package noise

import "math"

// seedScale converts fractional seeds into the integer range used to drive
// the permutation shuffle. Seeds that differ only in their fractional part
// still produce distinct tables.
const seedScale = 65536

// Field is a seeded gradient-noise evaluator. The zero value is not usable;
// construct with New or call Seed before the first query.
type Field struct {
	perm [512]int
}

// New returns a Field seeded with the given value.
func New(seed float64) *Field {
	f := &Field{}
	f.Seed(seed)
	return f
}

// Seed reinitializes the permutation table deterministically from seed.
// Fractional seeds are scaled into an integer range first.
func (f *Field) Seed(seed float64) {
	var base [256]int
	for i := range base {
		base[i] = i
	}

	// Fisher-Yates shuffle driven by an LCG seeded from the input value.
	s := int64(seed * seedScale)
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int(uint64(s>>16) % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}

	for i := 0; i < 256; i++ {
		f.perm[i] = base[i]
		f.perm[i+256] = base[i]
	}
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad returns the dot product of a hashed corner gradient and the
// distance vector (x, y).
func grad(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

// Noise2D evaluates the field at (x, y). The result is continuous across
// unit-grid boundaries and stays within [-1, 1]. Finite input always
// produces a finite output.
func (f *Field) Noise2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := f.perm[f.perm[xi]+yi]
	ab := f.perm[f.perm[xi]+yi+1]
	ba := f.perm[f.perm[xi+1]+yi]
	bb := f.perm[f.perm[xi+1]+yi+1]

	x1 := lerp(u, grad(aa, xf, yf), grad(ba, xf-1, yf))
	x2 := lerp(u, grad(ab, xf, yf-1), grad(bb, xf-1, yf-1))

	return lerp(v, x1, x2)
}

// Noise01 remaps Noise2D into [0, 1].
func (f *Field) Noise01(x, y float64) float64 {
	return (f.Noise2D(x, y) + 1) * 0.5
}

// Tileable evaluates noise that repeats with period (w, h): the value at
// (x, y) blends samples taken one period apart so the field wraps without a
// seam. x and y are expected in [0, w) and [0, h).
func (f *Field) Tileable(x, y, w, h float64) float64 {
	if w <= 0 || h <= 0 {
		return f.Noise2D(x, y)
	}
	u := x / w
	v := y / h
	n00 := f.Noise2D(x, y)
	n10 := f.Noise2D(x-w, y)
	n01 := f.Noise2D(x, y-h)
	n11 := f.Noise2D(x-w, y-h)
	return lerp(v, lerp(u, n00, n10), lerp(u, n01, n11))
}

// FBM sums octaves of Noise2D with increasing frequency and decreasing
// amplitude, normalized back into roughly [-1, 1].
func (f *Field) FBM(x, y float64, octaves int, lacunarity, gain float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	amp := 1.0
	freq := 1.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += f.Noise2D(x*freq, y*freq) * amp
		norm += amp
		freq *= lacunarity
		amp *= gain
	}
	return sum / norm
}
