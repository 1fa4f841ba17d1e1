package pattern

import (
	"image/color"
	"testing"

	"github.com/andreaperaltro/camo/pkg/raster"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		want   Family
		wantOK bool
	}{
		{"woodland", Woodland, true},
		{"DIGITAL", Digital, true},
		{" flecktarn ", Flecktarn, true},
		{"tiger", TigerStripe, true},
		{"tigerstripe", TigerStripe, true},
		{"camouflage-xyz", Woodland, false},
		{"", Woodland, false},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Resolve(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, f := range Families() {
		opts := Options{Seed: 1234}

		a := raster.New(96, 96)
		if _, err := Generate(a, f, opts); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		b := raster.New(96, 96)
		if _, err := Generate(b, f, opts); err != nil {
			t.Fatalf("%s: %v", f, err)
		}

		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				t.Errorf("%s: rasters differ at byte %d for identical seed", f, i)
				break
			}
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a := raster.New(96, 96)
	b := raster.New(96, 96)
	if _, err := Generate(a, Flecktarn, Options{Seed: 1, Complexity: 80}); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(b, Flecktarn, Options{Seed: 2, Complexity: 80}); err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("two seeds produced pixel-identical flecktarn rasters")
	}
}

func TestGenerate_SingleColorPalette(t *testing.T) {
	only := color.RGBA{R: 60, G: 70, B: 40, A: 255}

	for _, f := range Families() {
		r := raster.New(64, 64)
		if _, err := generate(r, f, Options{Seed: 7, Colors: []color.RGBA{only}}, false); err != nil {
			t.Fatalf("%s with 1 color: %v", f, err)
		}

		match := 0
		for y := 0; y < r.H; y++ {
			for x := 0; x < r.W; x++ {
				if r.At(x, y) == only {
					match++
				}
			}
		}
		if frac := float64(match) / float64(r.W*r.H); frac < 0.9 {
			t.Errorf("%s with 1 color: %.0f%% base coverage, want >= 90%%", f, frac*100)
		}
	}
}

func TestGenerate_DigitalDistinctColorsBound(t *testing.T) {
	colors := raster.ParseHexAll([]string{"#445C2B", "#79573E", "#B7A998", "#1B0E00", "#000000"})
	r := raster.New(128, 128)

	// Texture pass disabled: the layer structure must use the palette only.
	if _, err := generate(r, Digital, Options{Scale: 30, Complexity: 30, Colors: colors, Seed: 9}, false); err != nil {
		t.Fatal(err)
	}

	distinct := map[color.RGBA]bool{}
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			distinct[r.At(x, y)] = true
		}
	}
	if len(distinct) > 5 {
		t.Errorf("digital produced %d distinct colors before texture, want <= 5", len(distinct))
	}
}

func TestGenerate_NilRaster(t *testing.T) {
	if _, err := Generate(nil, Woodland, Options{}); err == nil {
		t.Error("Generate(nil) succeeded, want error")
	}
}

func TestGenerate_ReturnsResolvedSeed(t *testing.T) {
	r := raster.New(32, 32)
	eff, err := Generate(r, Woodland, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if eff.Seed == 0 {
		t.Error("effective options carry seed 0, want resolved random seed")
	}
	if eff.Scale == 0 || len(eff.Colors) == 0 {
		t.Error("effective options missing merged defaults")
	}
}

func TestGenerate_ExtremeComplexity(t *testing.T) {
	for _, f := range Families() {
		for _, c := range []float64{1, 100} {
			r := raster.New(64, 64)
			if _, err := Generate(r, f, Options{Seed: 11, Complexity: c}); err != nil {
				t.Errorf("%s at complexity %v: %v", f, c, err)
			}
		}
	}
}

func TestOptionsClamp(t *testing.T) {
	o := Options{Scale: 500, Complexity: -3, Contrast: 101, Sharpness: -1}
	o.Clamp()

	if o.Scale != MaxScale {
		t.Errorf("Scale = %v, want %v", o.Scale, float64(MaxScale))
	}
	if o.Complexity != MinComplexity {
		t.Errorf("Complexity = %v, want %v", o.Complexity, float64(MinComplexity))
	}
	if o.Contrast != MaxContrast {
		t.Errorf("Contrast = %v, want %v", o.Contrast, float64(MaxContrast))
	}
	if o.Sharpness != MinSharpness {
		t.Errorf("Sharpness = %v, want %v", o.Sharpness, float64(MinSharpness))
	}
	if len(o.Colors) != 1 {
		t.Errorf("empty palette not substituted: %v", o.Colors)
	}
}

func TestPresets_AllFamiliesCovered(t *testing.T) {
	for _, f := range Families() {
		if len(PresetColors(f)) < 4 {
			t.Errorf("%s preset palette has %d colors, want >= 4", f, len(PresetColors(f)))
		}
		s := PresetSettings(f)
		if s.Scale < MinScale || s.Scale > MaxScale {
			t.Errorf("%s preset scale %v out of range", f, s.Scale)
		}
		if s.Complexity < MinComplexity || s.Complexity > MaxComplexity {
			t.Errorf("%s preset complexity %v out of range", f, s.Complexity)
		}
	}
}

func TestPresetColors_ReturnsCopy(t *testing.T) {
	a := PresetColors(Desert)
	a[0] = color.RGBA{}
	b := PresetColors(Desert)
	if b[0] == (color.RGBA{}) {
		t.Error("PresetColors exposes internal palette storage")
	}
}
