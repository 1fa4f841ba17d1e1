// Package raster provides the mutable pixel buffer the pattern generators
// draw into. Pixels are stored row-major as RGBA, one byte per channel,
// mirroring the layout of the standard library's image.RGBA so the buffer
// converts to and from image types without copying surprises.
//
// Drawing operations never address outside [0,W)x[0,H): Set clips, and
// SetWrapped takes coordinates modulo the raster dimensions.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Raster is a W x H RGBA pixel buffer.
type Raster struct {
	W, H int
	Pix  []uint8 // 4 bytes per pixel, row-major
}

// New allocates a raster with the given dimensions. Non-positive dimensions
// are clamped to 1.
func New(w, h int) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Raster{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// idx returns the byte offset of pixel (x, y).
func (r *Raster) idx(x, y int) int { return (y*r.W + x) * 4 }

// Wrap applies toroidal wrapping to the provided coordinates.
func (r *Raster) Wrap(x, y int) (int, int) {
	x = (x%r.W + r.W) % r.W
	y = (y%r.H + r.H) % r.H
	return x, y
}

// In reports whether (x, y) lies inside the raster bounds.
func (r *Raster) In(x, y int) bool {
	return x >= 0 && x < r.W && y >= 0 && y < r.H
}

// At returns the pixel at (x, y). Out-of-bounds reads return zero.
func (r *Raster) At(x, y int) color.RGBA {
	if !r.In(x, y) {
		return color.RGBA{}
	}
	i := r.idx(x, y)
	return color.RGBA{R: r.Pix[i], G: r.Pix[i+1], B: r.Pix[i+2], A: r.Pix[i+3]}
}

// AtWrapped returns the pixel at (x, y) with toroidal wrapping.
func (r *Raster) AtWrapped(x, y int) color.RGBA {
	x, y = r.Wrap(x, y)
	i := r.idx(x, y)
	return color.RGBA{R: r.Pix[i], G: r.Pix[i+1], B: r.Pix[i+2], A: r.Pix[i+3]}
}

// Set writes the pixel at (x, y). Out-of-bounds writes are clipped.
func (r *Raster) Set(x, y int, c color.RGBA) {
	if !r.In(x, y) {
		return
	}
	i := r.idx(x, y)
	r.Pix[i] = c.R
	r.Pix[i+1] = c.G
	r.Pix[i+2] = c.B
	r.Pix[i+3] = c.A
}

// SetWrapped writes the pixel at (x, y) with toroidal wrapping.
func (r *Raster) SetWrapped(x, y int, c color.RGBA) {
	x, y = r.Wrap(x, y)
	i := r.idx(x, y)
	r.Pix[i] = c.R
	r.Pix[i+1] = c.G
	r.Pix[i+2] = c.B
	r.Pix[i+3] = c.A
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c color.RGBA) {
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i] = c.R
		r.Pix[i+1] = c.G
		r.Pix[i+2] = c.B
		r.Pix[i+3] = c.A
	}
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	out := &Raster{W: r.W, H: r.H, Pix: make([]uint8, len(r.Pix))}
	copy(out.Pix, r.Pix)
	return out
}

// Image converts the raster to an image.RGBA sharing no memory with r.
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.W, r.H))
	copy(img.Pix, r.Pix)
	return img
}

// FromImage copies img into a new raster.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	out := New(b.Dx(), b.Dy())
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	copy(out.Pix, rgba.Pix)
	return out
}
