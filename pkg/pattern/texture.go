package pattern

// applyGrain layers fine per-pixel noise over the finished pattern,
// perturbing each channel by a signed sample scaled to intensity. The noise
// is sampled with period wrapping so the grain itself never introduces a
// seam. Skipped when the gen was created without texture (layer-structure
// tests) or when intensity is zero.
func (g *gen) applyGrain(freq, intensity float64) {
	if !g.texture || intensity <= 0 || freq <= 0 {
		return
	}
	pw := float64(g.r.W) * freq
	ph := float64(g.r.H) * freq

	for y := 0; y < g.r.H; y++ {
		fy := float64(y) * freq
		for x := 0; x < g.r.W; x++ {
			n := g.nf.Tileable(float64(x)*freq, fy, pw, ph) * intensity
			i := (y*g.r.W + x) * 4
			g.r.Pix[i] = clampChan(float64(g.r.Pix[i]) + n)
			g.r.Pix[i+1] = clampChan(float64(g.r.Pix[i+1]) + n)
			g.r.Pix[i+2] = clampChan(float64(g.r.Pix[i+2]) + n)
		}
	}
}
