package pattern

import (
	"image/color"
	"math"
)

// tigerStripe builds elongated directional patches by walking paths along
// the configured orientation and offsetting the perpendicular bounds by
// noise interpolated over a coarse 4x4 grid. The palette's last color is
// reserved for stripes, which are placed only at detected boundaries of the
// mid-tone patches and drawn as long thin polygons along the pattern axis
// with a little angle jitter.
func (g *gen) tigerStripe() {
	theta := g.o.OrientationDeg * math.Pi / 180

	layers := g.layerColors(0)
	patchCols := layers
	var stripeCol color.RGBA
	haveStripes := false
	if len(layers) >= 2 {
		stripeCol = layers[len(layers)-1]
		patchCols = layers[:len(layers)-1]
		haveStripes = true
	}

	// Coarse noise grid; bilinear interpolation below wraps its indices, so
	// patch widths vary smoothly across the tile boundary.
	var coarse [4][4]float64
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			coarse[j][i] = g.nf.Noise01(float64(i)*1.7+31, float64(j)*1.7+57)
		}
	}

	for li, col := range patchCols {
		count := 3 + int(g.o.Complexity/16)
		half := g.o.Scale * (0.5 - 0.09*float64(li))
		if half < 3 {
			half = 3
		}
		for p := 0; p < count; p++ {
			g.drawPatch(theta, half, &coarse, col)
		}
	}

	if haveStripes && len(patchCols) > 0 {
		mid := patchCols[(len(patchCols)-1)/2]
		pts := EdgeFinder{}.FindBoundaries(g.r, mid, 0.3, g.nf, g.rng)
		for _, p := range pts {
			g.drawStripe(float64(p.X), float64(p.Y), theta, stripeCol)
		}
	}

	g.applyGrain(0.08, 6)
}

// bilerpWrapped samples the coarse grid at (u, v) in unit tile coordinates,
// wrapping indices toroidally.
func bilerpWrapped(grid *[4][4]float64, u, v float64) float64 {
	fu := wrap01(u) * 4
	fv := wrap01(v) * 4
	i0 := int(fu) % 4
	j0 := int(fv) % 4
	i1 := (i0 + 1) % 4
	j1 := (j0 + 1) % 4
	tu := fu - math.Floor(fu)
	tv := fv - math.Floor(fv)

	top := grid[j0][i0]*(1-tu) + grid[j0][i1]*tu
	bot := grid[j1][i0]*(1-tu) + grid[j1][i1]*tu
	return top*(1-tv) + bot*tv
}

func wrap01(v float64) float64 {
	v -= math.Floor(v)
	if v < 0 {
		v += 1
	}
	return v
}

// drawPatch walks one path along the pattern axis and fills the band
// between the noise-offset perpendicular bounds.
func (g *gen) drawPatch(theta, half float64, coarse *[4][4]float64, col color.RGBA) {
	w, h := float64(g.r.W), float64(g.r.H)
	dirX, dirY := math.Cos(theta), math.Sin(theta)
	perpX, perpY := -dirY, dirX

	cx, cy := g.span(0, w), g.span(0, h)
	length := g.span(w*0.4, w*0.9)
	steps := 8 + g.rng.IntN(5)

	sx := cx - dirX*length/2
	sy := cy - dirY*length/2

	top := make([]pt, 0, steps+1)
	bot := make([]pt, 0, steps+1)
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		px := sx + dirX*length*t
		py := sy + dirY*length*t

		off := half * (0.5 + bilerpWrapped(coarse, px/w, py/h))
		taper := math.Sin(t * math.Pi)
		off *= 0.25 + 0.75*taper

		top = append(top, pt{px + perpX*off, py + perpY*off})
		bot = append(bot, pt{px - perpX*off, py - perpY*off})
	}

	verts := make([]pt, 0, len(top)+len(bot))
	verts = append(verts, top...)
	for i := len(bot) - 1; i >= 0; i-- {
		verts = append(verts, bot[i])
	}
	g.comp.drawPolygon(verts, col)
}

// drawStripe renders one thin tapered stripe centered on a boundary point.
func (g *gen) drawStripe(x, y, theta float64, col color.RGBA) {
	ang := theta + g.span(-0.15, 0.15)
	length := g.span(g.o.Scale*1.8, g.o.Scale*4.5)
	width := g.span(2, 4+g.o.Scale*0.05)

	dx, dy := math.Cos(ang), math.Sin(ang)
	px, py := -dy*width/2, dx*width/2

	verts := []pt{
		{x - dx*length/2, y - dy*length/2},
		{x - dx*length*0.3 + px, y - dy*length*0.3 + py},
		{x + dx*length*0.3 + px, y + dy*length*0.3 + py},
		{x + dx*length/2, y + dy*length/2},
		{x + dx*length*0.3 - px, y + dy*length*0.3 - py},
		{x - dx*length*0.3 - px, y - dy*length*0.3 - py},
	}
	g.comp.drawPolygon(verts, col)
}
