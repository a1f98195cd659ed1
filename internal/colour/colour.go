// Package colour provides the palette model used to paint generated images.
package colour

import (
	"fmt"
	"image/color"
	"math/rand"
	"strconv"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Color converts the colour to an opaque color.RGBA.
func (rgb RGB) Color() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ParseHex parses a colour token in strict "#RRGGBB" form. The leading '#'
// is required and exactly six hex digits must follow; shorthand forms such
// as "#fff" are rejected.
func ParseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		return RGB{}, fmt.Errorf("missing '#' prefix")
	}
	hex := s[1:]

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("expected 6 hex digits, got %d", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component: %w", err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component: %w", err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	return RGB{
		R: uint8(r),
		G: uint8(g),
		B: uint8(b),
	}, nil
}

// Palette is an ordered list of colours blocks are painted from. Supplying
// the same colour twice raises its pick weight accordingly.
type Palette []RGB

// Default returns the stock two-colour palette: black then white.
func Default() Palette {
	return Palette{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
	}
}

// Parse converts a list of "#RRGGBB" tokens into a palette. The first
// malformed token fails the whole list; there is no per-colour recovery.
func Parse(tokens []string) (Palette, error) {
	pal := make(Palette, 0, len(tokens))
	for _, tok := range tokens {
		rgb, err := ParseHex(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid hex colour '%s': %w", tok, err)
		}
		pal = append(pal, rgb)
	}
	return pal, nil
}

// Pick returns a uniformly random palette member using the supplied source.
// Picking from an empty palette panics; callers validate the palette first.
func (p Palette) Pick(rng *rand.Rand) RGB {
	return p[rng.Intn(len(p))]
}

// Hexes renders every palette entry as a hex string.
func (p Palette) Hexes() []string {
	hexColours := make([]string, len(p))
	for i, c := range p {
		hexColours[i] = c.Hex()
	}
	return hexColours
}
