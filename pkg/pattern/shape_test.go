package pattern

import (
	"image/color"
	"testing"

	"github.com/andreaperaltro/camo/pkg/noise"
	"github.com/andreaperaltro/camo/pkg/raster"
)

var (
	testBase = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	testFill = color.RGBA{R: 10, G: 20, B: 30, A: 255}
)

func TestCompositor_DrawFillsInterior(t *testing.T) {
	r := raster.New(64, 64)
	r.Fill(testBase)
	c := &Compositor{R: r, Noise: noise.New(1)}

	c.Draw(ShapeSpec{CX: 32, CY: 32, Radius: 14, Points: 8, Irregularity: 0.3}, testFill)

	if got := r.At(32, 32); got != testFill {
		t.Errorf("center pixel = %v, want %v", got, testFill)
	}
	if got := r.At(1, 1); got != testBase {
		t.Errorf("far corner pixel = %v, want base %v", got, testBase)
	}
}

func TestCompositor_ReplicatesAcrossBoundary(t *testing.T) {
	// A shape centered on the left edge must reappear on the right edge.
	r := raster.New(64, 64)
	r.Fill(testBase)
	c := &Compositor{R: r, Noise: noise.New(2)}

	c.Draw(ShapeSpec{CX: 0, CY: 32, Radius: 10, Points: 8, Irregularity: 0.2}, testFill)

	if got := r.At(0, 32); got != testFill {
		t.Fatalf("pixel at (0, 32) = %v, want %v", got, testFill)
	}
	if got := r.At(63, 32); got != testFill {
		t.Errorf("wrapped pixel at (63, 32) = %v, want %v (3x3 replication missing)", got, testFill)
	}
}

func TestCompositor_ReplicatesCorner(t *testing.T) {
	r := raster.New(48, 48)
	r.Fill(testBase)
	c := &Compositor{R: r, Noise: noise.New(3)}

	c.Draw(ShapeSpec{CX: 0, CY: 0, Radius: 8, Points: 10, Irregularity: 0.2}, testFill)

	for _, p := range []Point{{0, 0}, {47, 0}, {0, 47}, {47, 47}} {
		if got := r.At(p.X, p.Y); got != testFill {
			t.Errorf("corner pixel (%d, %d) = %v, want %v", p.X, p.Y, got, testFill)
		}
	}
}

func TestCompositor_DrawRect(t *testing.T) {
	r := raster.New(64, 64)
	r.Fill(testBase)
	c := &Compositor{R: r, Noise: noise.New(4)}

	c.DrawRect(32, 32, 20, 10, 0, testFill)

	if got := r.At(32, 32); got != testFill {
		t.Errorf("rect center = %v, want %v", got, testFill)
	}
	if got := r.At(32, 40); got != testBase {
		t.Errorf("pixel above rect = %v, want base %v", got, testBase)
	}
}

func TestCompositor_ZeroRadiusDrawsNothing(t *testing.T) {
	r := raster.New(32, 32)
	r.Fill(testBase)
	c := &Compositor{R: r, Noise: noise.New(5)}

	c.Draw(ShapeSpec{CX: 16, CY: 16, Radius: 0, Points: 8}, testFill)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if r.At(x, y) != testBase {
				t.Fatalf("pixel (%d, %d) changed by zero-radius draw", x, y)
			}
		}
	}
}

func TestChaikin_PreservesClosure(t *testing.T) {
	square := []pt{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := chaikin(square, 2)
	if got, want := len(out), 16; got != want {
		t.Errorf("chaikin vertex count = %d, want %d", got, want)
	}
	for _, p := range out {
		if p.x < 0 || p.x > 10 || p.y < 0 || p.y > 10 {
			t.Fatalf("corner cutting left the hull: %+v", p)
		}
	}
}
