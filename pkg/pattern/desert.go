package pattern

import "math"

// desert draws a small number of large, smooth 5-8-sided blobs. At most
// three foreground layers stay visible regardless of palette length, and a
// sand-grain overlay at roughly five times the base noise frequency gives
// the finish its texture.
func (g *gen) desert() {
	w, h := float64(g.r.W), float64(g.r.H)
	base := g.o.Scale * 2.0
	perLayer := 2 + int(g.o.Complexity/18)

	for li, col := range g.layerColors(3) {
		size := base * (1 - 0.2*float64(li))
		for i := 0; i < perLayer; i++ {
			g.comp.Draw(ShapeSpec{
				CX:           g.span(0, w),
				CY:           g.span(0, h),
				Radius:       g.span(size*0.6, size*1.1),
				Points:       5 + g.rng.IntN(4),
				Irregularity: 0.45,
				Elongation:   g.span(0, 0.2),
				Rotation:     g.span(0, 2*math.Pi),
				Smooth:       true,
				NoiseSeed:    g.span(0, 100),
			}, col)
		}
	}

	// Sand grain: ~5x the base noise frequency of the blob boundaries.
	g.applyGrain(0.1, 6)
}
