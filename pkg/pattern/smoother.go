package pattern

// SmoothGrid runs a cellular-automata majority filter over a quantized grid
// of layer ids with toroidal (wraparound) adjacency. This is how the
// digital family achieves seamless tiling: it never draws across raster
// edges, the grid itself wraps.
//
// Each iteration, a cell keeps its value while at least 3 of its 8 toroidal
// neighbors agree with it. Otherwise it is reassigned to the most frequent
// neighbor value, but only when that value occurs in at least 4 of the 8
// neighbors. The asymmetric threshold keeps the automaton mildly sticky:
// isolated cells are reabsorbed while most minority cells survive, which is
// what produces blocky-but-organic regions instead of uniform blobs.
//
// The input grid is not modified; the returned grid has the same shape.
func SmoothGrid(grid []int, w, h, iterations int) []int {
	cur := make([]int, len(grid))
	copy(cur, grid)
	if w <= 0 || h <= 0 || len(grid) != w*h {
		return cur
	}
	next := make([]int, len(grid))

	for it := 0; it < iterations; it++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				self := cur[idx]

				same := 0
				best := self
				bestN := 0
				counts := map[int]int{}
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := (x + dx + w) % w
						ny := (y + dy + h) % h
						v := cur[ny*w+nx]
						counts[v]++
						if v == self {
							same++
						}
						// Deterministic tie-break on the smaller layer id.
						if n := counts[v]; n > bestN || (n == bestN && v < best) {
							best, bestN = v, n
						}
					}
				}

				next[idx] = self
				if same < 3 && bestN >= 4 {
					next[idx] = best
				}
			}
		}
		cur, next = next, cur
	}
	return cur
}
