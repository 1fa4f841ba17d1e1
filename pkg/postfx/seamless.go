package postfx

import (
	"image/color"

	"github.com/andreaperaltro/camo/pkg/raster"
)

// Verifier's defaults. The tolerance values are heuristics: they warn on
// genuine jagged seams while staying silent on true wraparound patterns.
const (
	DefaultTolerance      = 10
	DefaultMismatchBudget = 0.02
)

// Verifier samples opposite raster edges and reports whether they match
// within tolerance. It is a diagnostic, not a correctness gate: generation
// never fails because of its verdict.
type Verifier struct {
	// Tolerance is the absolute per-channel tolerance on the 0-255 scale;
	// zero means DefaultTolerance. Alpha is ignored.
	Tolerance uint8

	// MismatchBudget is the fraction of compared samples allowed to exceed
	// the tolerance before an axis is declared non-seamless; zero means
	// DefaultMismatchBudget.
	MismatchBudget float64
}

// Check compares the leftmost/rightmost columns and topmost/bottommost rows
// and returns true only when both axes pass.
func (v Verifier) Check(r *raster.Raster) bool {
	h, vert := v.CheckAxes(r)
	return h && vert
}

// CheckAxes reports the horizontal (left vs right column) and vertical
// (top vs bottom row) verdicts separately.
func (v Verifier) CheckAxes(r *raster.Raster) (horizontal, vertical bool) {
	if r == nil || len(r.Pix) == 0 {
		return false, false
	}
	tol := v.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	budget := v.MismatchBudget
	if budget == 0 {
		budget = DefaultMismatchBudget
	}

	hMismatch := 0
	for y := 0; y < r.H; y++ {
		if !within(r.At(0, y), r.At(r.W-1, y), tol) {
			hMismatch++
		}
	}
	vMismatch := 0
	for x := 0; x < r.W; x++ {
		if !within(r.At(x, 0), r.At(x, r.H-1), tol) {
			vMismatch++
		}
	}

	horizontal = float64(hMismatch)/float64(r.H) <= budget
	vertical = float64(vMismatch)/float64(r.W) <= budget
	return horizontal, vertical
}

// within compares RGB channels only; alpha is ignored.
func within(a, b color.RGBA, tol uint8) bool {
	return absDiff(a.R, b.R) <= tol &&
		absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
