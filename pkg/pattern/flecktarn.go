package pattern

import "math"

// flecktarnClasses are the spot size bands, as multiples of Scale. Spots
// come in a few distinct size classes rather than a continuous range.
var flecktarnClasses = [4][2]float64{
	{0.30, 0.50},
	{0.50, 0.80},
	{0.80, 1.20},
	{1.20, 1.60},
}

// flecktarn places small irregular 5-9-point spots with a two-phase
// propose-then-cull pipeline: candidates are over-generated, filtered by a
// noise threshold, then Fisher-Yates shuffled and subsampled down to the
// per-layer target. The culling is what produces natural-looking clustering
// instead of uniform scatter.
func (g *gen) flecktarn() {
	w, h := float64(g.r.W), float64(g.r.H)

	for li, col := range g.layerColors(0) {
		target := 15 + int(g.o.Complexity*1.1) - li*4
		if target < 5 {
			target = 5
		}

		candidates := g.proposeSpots(target*3, li, w, h)
		g.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		if len(candidates) > target {
			candidates = candidates[:target]
		}

		for _, spec := range candidates {
			g.comp.Draw(spec, col)
		}
	}

	g.applyGrain(0.11, 7)
}

// proposeSpots generates candidate spot specs, keeping only positions where
// the layer's noise threshold passes. The threshold rises with the layer
// index so later colors cluster more tightly.
func (g *gen) proposeSpots(n, layer int, w, h float64) []ShapeSpec {
	threshold := 0.38 + 0.05*float64(layer)
	out := make([]ShapeSpec, 0, n)

	for i := 0; i < n; i++ {
		cx, cy := g.span(0, w), g.span(0, h)
		if g.nf.Noise01(cx*0.012, cy*0.012) < threshold {
			continue
		}

		class := flecktarnClasses[g.rng.IntN(len(flecktarnClasses))]
		out = append(out, ShapeSpec{
			CX:           cx,
			CY:           cy,
			Radius:       g.span(g.o.Scale*class[0], g.o.Scale*class[1]),
			Points:       5 + g.rng.IntN(5),
			Irregularity: 0.8,
			Rotation:     g.span(0, 2*math.Pi),
			NoiseSeed:    g.span(0, 100),
		})
	}
	return out
}
