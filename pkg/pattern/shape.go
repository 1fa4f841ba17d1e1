package pattern

import (
	"image/color"
	"math"
	"sort"

	"github.com/andreaperaltro/camo/pkg/noise"
	"github.com/andreaperaltro/camo/pkg/raster"
)

// ShapeSpec describes one irregular blob or polygon. Specs are built fresh
// per shape instance and consumed immediately by Compositor.Draw.
type ShapeSpec struct {
	CX, CY float64 // center, raster coordinates
	Radius float64 // base radius in pixels
	Points int     // boundary vertex count before smoothing

	// Irregularity scales the noise contribution to the per-vertex radius:
	// radius = Radius * (Bias + noise * Irregularity).
	Irregularity float64

	// Elongation stretches the radius by 1 + e*cos(2*angle), producing
	// directional blobs. Zero leaves the shape round.
	Elongation float64

	Rotation float64 // orientation of the first vertex (and elongation axis)
	Smooth   bool    // round the boundary with corner cutting

	// Bias is the radius floor factor; zero means the default 0.7.
	Bias float64

	// NoiseFreq and NoiseSeed position the boundary samples in the noise
	// domain. Distinct NoiseSeed values keep shapes from sharing outlines.
	NoiseFreq float64
	NoiseSeed float64
}

// Compositor draws filled shapes onto a raster, replicating every shape at
// the 8 toroidal neighbor offsets so parts crossing the raster boundary
// reappear on the opposite edge. The replication is the seamlessness
// mechanism for all organic families and is never skipped.
type Compositor struct {
	R     *raster.Raster
	Noise *noise.Field
}

type pt struct{ x, y float64 }

// Draw renders one noise-perturbed shape in the given color.
func (c *Compositor) Draw(spec ShapeSpec, col color.RGBA) {
	if spec.Radius <= 0 {
		return
	}
	if spec.Points < 3 {
		spec.Points = 3
	}
	bias := spec.Bias
	if bias == 0 {
		bias = 0.7
	}
	freq := spec.NoiseFreq
	if freq == 0 {
		freq = 1.5
	}

	verts := make([]pt, 0, spec.Points)
	for i := 0; i < spec.Points; i++ {
		ang := spec.Rotation + 2*math.Pi*float64(i)/float64(spec.Points)
		n := c.Noise.Noise01(math.Cos(ang)*freq+spec.NoiseSeed, math.Sin(ang)*freq+spec.NoiseSeed)
		rad := spec.Radius * (bias + n*spec.Irregularity)
		if spec.Elongation != 0 {
			rad *= 1 + spec.Elongation*math.Cos(2*(ang-spec.Rotation))
		}
		if rad < 1 {
			rad = 1
		}
		verts = append(verts, pt{spec.CX + math.Cos(ang)*rad, spec.CY + math.Sin(ang)*rad})
	}

	if spec.Smooth {
		verts = chaikin(verts, 2)
	}
	c.drawPolygon(verts, col)
}

// DrawRect renders a filled rectangle centered at (cx, cy), rotated by rot
// radians, with the same toroidal replication as Draw.
func (c *Compositor) DrawRect(cx, cy, w, h, rot float64, col color.RGBA) {
	cosR, sinR := math.Cos(rot), math.Sin(rot)
	hw, hh := w/2, h/2
	corners := [4]pt{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	verts := make([]pt, 4)
	for i, p := range corners {
		verts[i] = pt{cx + p.x*cosR - p.y*sinR, cy + p.x*sinR + p.y*cosR}
	}
	c.drawPolygon(verts, col)
}

// drawPolygon fills the closed polygon at each offset of the 3x3 tiling
// grid. Offsets whose bounding box misses the raster entirely are skipped.
func (c *Compositor) drawPolygon(verts []pt, col color.RGBA) {
	if len(verts) < 3 {
		return
	}
	w, h := float64(c.R.W), float64(c.R.H)

	minX, minY := verts[0].x, verts[0].y
	maxX, maxY := minX, minY
	for _, p := range verts[1:] {
		minX = math.Min(minX, p.x)
		maxX = math.Max(maxX, p.x)
		minY = math.Min(minY, p.y)
		maxY = math.Max(maxY, p.y)
	}

	shifted := make([]pt, len(verts))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			ox, oy := float64(dx)*w, float64(dy)*h
			if maxX+ox < 0 || minX+ox >= w || maxY+oy < 0 || minY+oy >= h {
				continue
			}
			for i, p := range verts {
				shifted[i] = pt{p.x + ox, p.y + oy}
			}
			fillPolygon(c.R, shifted, col)
		}
	}
}

// fillPolygon rasterizes one closed polygon with an even-odd scanline fill,
// clipped to the raster bounds.
func fillPolygon(r *raster.Raster, verts []pt, col color.RGBA) {
	minY, maxY := verts[0].y, verts[0].y
	for _, p := range verts[1:] {
		minY = math.Min(minY, p.y)
		maxY = math.Max(maxY, p.y)
	}
	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > r.H-1 {
		y1 = r.H - 1
	}

	var xs []float64
	for y := y0; y <= y1; y++ {
		fy := float64(y) + 0.5
		xs = xs[:0]
		for i := range verts {
			a := verts[i]
			b := verts[(i+1)%len(verts)]
			if (a.y <= fy && b.y > fy) || (b.y <= fy && a.y > fy) {
				t := (fy - a.y) / (b.y - a.y)
				xs = append(xs, a.x+t*(b.x-a.x))
			}
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x0 := int(math.Ceil(xs[k] - 0.5))
			x1 := int(math.Floor(xs[k+1] - 0.5))
			if x0 < 0 {
				x0 = 0
			}
			if x1 > r.W-1 {
				x1 = r.W - 1
			}
			for x := x0; x <= x1; x++ {
				r.Set(x, y, col)
			}
		}
	}
}

// chaikin applies corner-cutting subdivision to a closed polyline, giving
// the quadratic-smoothed boundaries used by the softer families.
func chaikin(verts []pt, iters int) []pt {
	for it := 0; it < iters; it++ {
		out := make([]pt, 0, len(verts)*2)
		for i := range verts {
			a := verts[i]
			b := verts[(i+1)%len(verts)]
			out = append(out,
				pt{a.x*0.75 + b.x*0.25, a.y*0.75 + b.y*0.25},
				pt{a.x*0.25 + b.x*0.75, a.y*0.25 + b.y*0.75})
		}
		verts = out
	}
	return verts
}
