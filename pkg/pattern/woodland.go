package pattern

import "math"

// woodland draws 6-12-sided elongated blobs for every foreground color.
// Centers are distributed on a jittered grid for even coverage, and each
// successive layer uses a smaller size band so later colors read as detail
// on top of the earlier ones.
func (g *gen) woodland() {
	w, h := float64(g.r.W), float64(g.r.H)
	keep := 0.45 + g.o.Complexity/100*0.5

	for li, col := range g.layerColors(0) {
		shrink := 1 - 0.15*float64(li)
		if shrink < 0.4 {
			shrink = 0.4
		}
		base := g.o.Scale * 1.3 * shrink
		cell := base * 1.9

		for cy := cell / 2; cy < h; cy += cell {
			for cx := cell / 2; cx < w; cx += cell {
				if g.rng.Float64() > keep {
					continue
				}
				g.comp.Draw(ShapeSpec{
					CX:           cx + g.span(-cell*0.4, cell*0.4),
					CY:           cy + g.span(-cell*0.4, cell*0.4),
					Radius:       g.span(base*0.55, base*1.0),
					Points:       6 + g.rng.IntN(7),
					Irregularity: 0.55,
					Elongation:   g.span(0.15, 0.45),
					Rotation:     g.span(0, 2*math.Pi),
					Smooth:       true,
					NoiseSeed:    g.span(0, 100),
				}, col)
			}
		}
	}

	g.applyGrain(0.09, 7)
}
