package export

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"

	"github.com/andreaperaltro/camo/pkg/raster"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title   string
	pngOpts []PNGOption
}

// WithTitle embeds a title element, shown as a tooltip in browsers.
func WithTitle(t string) SVGOption {
	return func(r *svgRenderer) { r.title = t }
}

// WithSVGPNGOptions passes options through to the embedded PNG renderer.
func WithSVGPNGOptions(opts ...PNGOption) SVGOption {
	return func(r *svgRenderer) { r.pngOpts = opts }
}

// RenderSVG wraps the raster in an SVG document with the texture embedded
// as a base64 PNG image. The viewBox matches the raster dimensions so the
// result scales without resampling artifacts at the document level.
func RenderSVG(r *raster.Raster, opts ...SVGOption) ([]byte, error) {
	sr := svgRenderer{}
	for _, opt := range opts {
		opt(&sr)
	}

	pngData, err := RenderPNG(r, sr.pngOpts...)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.W, r.H, r.W, r.H)
	if sr.title != "" {
		buf.WriteString("  <title>")
		_ = xml.EscapeText(&buf, []byte(sr.title))
		buf.WriteString("</title>\n")
	}
	fmt.Fprintf(&buf, `  <image width="%d" height="%d" image-rendering="pixelated" href="data:image/png;base64,%s"/>`+"\n",
		r.W, r.H, encoded)
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
