package pattern

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/andreaperaltro/camo/pkg/noise"
	"github.com/andreaperaltro/camo/pkg/raster"
)

func edgeFixture() *raster.Raster {
	// Left half ref color, right half something else.
	r := raster.New(64, 64)
	ref := color.RGBA{R: 100, G: 120, B: 80, A: 255}
	other := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if x < 32 {
				r.Set(x, y, ref)
			} else {
				r.Set(x, y, other)
			}
		}
	}
	return r
}

func TestEdgeFinder_FindsBoundary(t *testing.T) {
	r := edgeFixture()
	ref := color.RGBA{R: 100, G: 120, B: 80, A: 255}

	pts := EdgeFinder{Stride: 4}.FindBoundaries(r, ref, 1.0, noise.New(1), rand.New(rand.NewPCG(1, 2)))
	if len(pts) == 0 {
		t.Fatal("no boundary points found on a hard two-color edge")
	}

	for _, p := range pts {
		if got := r.At(p.X, p.Y); !matches(got, ref, 8) {
			t.Fatalf("boundary point (%d, %d) does not match the reference color", p.X, p.Y)
		}
		// Matching pixels further than one stride from either edge of the
		// ref region are interior and must not be reported. The region
		// spans x in [0, 32), and its toroidal boundaries sit at x=0 and
		// x=31.
		if p.X >= 8 && p.X < 24 {
			t.Fatalf("interior point (%d, %d) reported as boundary", p.X, p.Y)
		}
	}
}

func TestEdgeFinder_ZeroDensityReturnsNothing(t *testing.T) {
	r := edgeFixture()
	ref := color.RGBA{R: 100, G: 120, B: 80, A: 255}

	pts := EdgeFinder{}.FindBoundaries(r, ref, 0, noise.New(1), rand.New(rand.NewPCG(3, 4)))
	if len(pts) != 0 {
		t.Errorf("density 0 returned %d points, want 0", len(pts))
	}
}

func TestEdgeFinder_UniformRasterReturnsNothing(t *testing.T) {
	r := raster.New(32, 32)
	ref := color.RGBA{R: 100, G: 120, B: 80, A: 255}
	r.Fill(ref)

	pts := EdgeFinder{}.FindBoundaries(r, ref, 1.0, noise.New(1), rand.New(rand.NewPCG(5, 6)))
	if len(pts) != 0 {
		t.Errorf("uniform raster returned %d boundary points, want 0", len(pts))
	}
}
