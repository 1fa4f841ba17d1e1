package raster

import (
	"image/color"
	"testing"
)

func TestWrap(t *testing.T) {
	r := New(10, 8)

	tests := []struct {
		x, y         int
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{9, 7, 9, 7},
		{10, 8, 0, 0},
		{-1, -1, 9, 7},
		{-11, -9, 9, 7},
		{25, 17, 5, 1},
	}
	for _, tt := range tests {
		gotX, gotY := r.Wrap(tt.x, tt.y)
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("Wrap(%d, %d) = (%d, %d), want (%d, %d)",
				tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
		}
	}
}

func TestSetClips(t *testing.T) {
	r := New(4, 4)
	red := color.RGBA{R: 255, A: 255}

	r.Set(-1, 0, red)
	r.Set(4, 0, red)
	r.Set(0, 17, red)

	for i, b := range r.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds Set wrote to Pix[%d]", i)
		}
	}
}

func TestSetWrappedRoundTrip(t *testing.T) {
	r := New(5, 5)
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	r.SetWrapped(7, -2, c)
	if got := r.At(2, 3); got != c {
		t.Errorf("At(2, 3) = %v, want %v", got, c)
	}
	if got := r.AtWrapped(7, -2); got != c {
		t.Errorf("AtWrapped(7, -2) = %v, want %v", got, c)
	}
}

func TestFillAndClone(t *testing.T) {
	r := New(3, 3)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	r.Fill(c)

	clone := r.Clone()
	r.Set(1, 1, color.RGBA{A: 255})

	if got := clone.At(1, 1); got != c {
		t.Errorf("clone pixel = %v, want %v (clone must not alias original)", got, c)
	}
}

func TestImageRoundTrip(t *testing.T) {
	r := New(6, 4)
	r.Fill(color.RGBA{R: 40, G: 50, B: 60, A: 255})
	r.Set(2, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	back := FromImage(r.Image())
	if back.W != r.W || back.H != r.H {
		t.Fatalf("round trip size = %dx%d, want %dx%d", back.W, back.H, r.W, r.H)
	}
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if got, want := back.At(x, y), r.At(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#445C2B", color.RGBA{R: 0x44, G: 0x5C, B: 0x2B, A: 255}, false},
		{"b7a998", color.RGBA{R: 0xB7, G: 0xA9, B: 0x98, A: 255}, false},
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{" #000000 ", color.RGBA{A: 255}, false},
		{"#12345", color.RGBA{}, true},
		{"", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatHex(t *testing.T) {
	if got, want := FormatHex(color.RGBA{R: 0x44, G: 0x5C, B: 0x2B, A: 255}), "#445c2b"; got != want {
		t.Errorf("FormatHex = %q, want %q", got, want)
	}
}

func TestParseHexAll_SkipsMalformed(t *testing.T) {
	got := ParseHexAll([]string{"#445C2B", "nope", "#000"})
	if len(got) != 2 {
		t.Fatalf("ParseHexAll returned %d colors, want 2", len(got))
	}
}
