package raster

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHex parses a "#RRGGBB" or "RRGGBB" color string into an opaque RGBA.
// The short "#RGB" form is also accepted.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(h) {
	case 3:
		var r, g, b uint8
		if _, err := fmt.Sscanf(h, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, nil
	case 6:
		var r, g, b uint8
		if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want #RGB or #RRGGBB", s)
	}
}

// MustParseHex is ParseHex for static tables; it panics on malformed input.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatHex renders c as "#rrggbb", dropping alpha.
func FormatHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexAll parses a list of hex color strings, skipping malformed entries.
// The returned slice preserves the order of the valid inputs.
func ParseHexAll(ss []string) []color.RGBA {
	out := make([]color.RGBA, 0, len(ss))
	for _, s := range ss {
		if c, err := ParseHex(s); err == nil {
			out = append(out, c)
		}
	}
	return out
}
