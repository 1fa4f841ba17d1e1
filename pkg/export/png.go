package export

import (
	"bytes"
	"image"
	"image/png"

	"github.com/andreaperaltro/camo/pkg/raster"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale int
}

// WithScale sets an integer upscale factor (default 1). Upscaling uses
// nearest-neighbor so pattern blocks keep their hard edges.
func WithScale(s int) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG encodes the raster as PNG.
func RenderPNG(r *raster.Raster, opts ...PNGOption) ([]byte, error) {
	pr := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&pr)
	}
	if pr.scale < 1 {
		pr.scale = 1
	}

	img := r.Image()
	if pr.scale > 1 {
		img = upscale(img, pr.scale)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// upscale replicates each source pixel into an s-by-s block.
func upscale(src *image.RGBA, s int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*s, b.Dy()*s))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := src.RGBAAt(b.Min.X+x, b.Min.Y+y)
			for dy := 0; dy < s; dy++ {
				for dx := 0; dx < s; dx++ {
					dst.SetRGBA(x*s+dx, y*s+dy, c)
				}
			}
		}
	}
	return dst
}
