// Package raster synthesizes the block-quantised pixel grids that get
// encoded into image files.
package raster

import (
	"image"
	"math/rand"

	"golang.org/x/image/draw"

	"github.com/krudnicki-kuhy/bloatjpg/internal/colour"
)

// Synthesize paints a side×side RGBA raster as a grid of block×block
// squares, each filled with one uniformly random palette colour. Blocks are
// visited in raster order (left to right, then top to bottom) with exactly
// one RNG draw per block, so a fixed seed reproduces the image exactly.
//
// Callers guarantee side is a positive multiple of block; geometry is
// validated before any raster is allocated.
func Synthesize(side, block int, pal colour.Palette, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	for y := 0; y < side; y += block {
		for x := 0; x < side; x += block {
			c := pal.Pick(rng)
			r := image.Rect(x, y, x+block, y+block)
			draw.Draw(img, r, image.NewUniform(c.Color()), image.Point{}, draw.Src)
		}
	}

	return img
}
