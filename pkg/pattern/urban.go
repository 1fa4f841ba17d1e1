package pattern

import "math"

// urban mixes rectangles, triangles and small polygons, choosing the shape
// type randomly per draw: 50% rectangle, 30% triangle, 20% polygon.
// Rectangles are rotated about half the time.
func (g *gen) urban() {
	w, h := float64(g.r.W), float64(g.r.H)
	perLayer := 5 + int(g.o.Complexity*0.35)

	for _, col := range g.layerColors(0) {
		for i := 0; i < perLayer; i++ {
			cx, cy := g.span(0, w), g.span(0, h)

			switch roll := g.rng.Float64(); {
			case roll < 0.5:
				rw := g.span(g.o.Scale*0.6, g.o.Scale*1.8)
				rh := g.span(g.o.Scale*0.4, g.o.Scale*1.4)
				rot := 0.0
				if g.rng.Float64() < 0.5 {
					rot = g.span(0, math.Pi/2)
				}
				g.comp.DrawRect(cx, cy, rw, rh, rot, col)
			case roll < 0.8:
				g.comp.Draw(ShapeSpec{
					CX:           cx,
					CY:           cy,
					Radius:       g.span(g.o.Scale*0.4, g.o.Scale*0.9),
					Points:       3,
					Irregularity: 0.4,
					Rotation:     g.span(0, 2*math.Pi),
					NoiseSeed:    g.span(0, 100),
				}, col)
			default:
				g.comp.Draw(ShapeSpec{
					CX:           cx,
					CY:           cy,
					Radius:       g.span(g.o.Scale*0.4, g.o.Scale*0.9),
					Points:       4 + g.rng.IntN(4),
					Irregularity: 0.5,
					Rotation:     g.span(0, 2*math.Pi),
					NoiseSeed:    g.span(0, 100),
				}, col)
			}
		}
	}

	g.applyGrain(0.07, 6)
}
