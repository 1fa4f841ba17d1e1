package pattern

// digital quantizes noise onto a block grid and smooths it with the
// toroidal cellular automaton. Blocks are drawn as axis-aligned tiles; the
// grid wraps, so the pattern tiles without the 3x3 shape replication the
// organic families use.
func (g *gen) digital() {
	bs := g.o.BlockSize
	if bs < 2 {
		bs = 2
	}
	gw := g.r.W / bs
	gh := g.r.H / bs
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}

	bands := len(g.o.Colors)

	// One noise sample per grid cell, quantized into color bands. Larger
	// scale stretches the sampling so regions grow.
	freq := 3.5 / g.o.Scale
	grid := make([]int, gw*gh)
	for cy := 0; cy < gh; cy++ {
		for cx := 0; cx < gw; cx++ {
			n := g.nf.Noise01(float64(cx)*freq, float64(cy)*freq)
			band := int(n * float64(bands))
			if band >= bands {
				band = bands - 1
			}
			grid[cy*gw+cx] = band
		}
	}

	// Lower complexity means fewer iterations and coarser regions.
	// Blockiness multiplies the smoothing strength.
	iters := 1 + int(g.o.Complexity/25)
	if g.o.Blockiness > 0 {
		iters = int(float64(iters)*g.o.Blockiness + 0.5)
	}
	if iters < 1 {
		iters = 1
	}
	grid = SmoothGrid(grid, gw, gh, iters)

	// Tile the blocks; trailing partial blocks reuse the last cell so the
	// raster is covered edge to edge.
	for y := 0; y < g.r.H; y++ {
		cy := y / bs
		if cy >= gh {
			cy = gh - 1
		}
		for x := 0; x < g.r.W; x++ {
			cx := x / bs
			if cx >= gw {
				cx = gw - 1
			}
			g.r.Set(x, y, g.o.Colors[grid[cy*gw+cx]])
		}
	}

	g.applyGrain(0.06, 5)
}
