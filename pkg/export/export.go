// Package export provides output format renderers for generated textures.
//
// An exporter transforms a [raster.Raster] into final bytes:
//
//   - PNG: raster image output, optionally upscaled
//   - SVG: vector wrapper embedding the texture, convenient for web embeds
//
// Basic usage:
//
//	png, err := export.RenderPNG(r, export.WithScale(2))
//	svg, err := export.RenderSVG(r, export.WithTitle("woodland 512x512"))
package export

import (
	"fmt"
	"strings"
)

// Format identifies a supported output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Formats returns all supported output formats.
func Formats() []Format {
	return []Format{FormatPNG, FormatSVG}
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unsupported format %q (use png or svg)", name)
}
