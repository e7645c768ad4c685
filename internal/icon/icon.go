// Package icon draws the padlock glyphs used by the PGP encrypter and
// decrypter message flow nodes.
//
// Each supported size has its own hand-tuned recipe; the designs are not
// scaled versions of one another.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrUnsupportedSize is returned for sizes without a drawing recipe.
var ErrUnsupportedSize = errors.New("unsupported icon size")

// Sizes lists the pixel sizes Render can draw.
var Sizes = []int{16, 30, 32}

var recipes = map[int]func(c *Canvas, v Variant){
	16: drawLock16,
	30: drawLock30,
	32: drawLock32,
}

// Render draws the padlock icon of the given size and variant onto a fresh
// transparent canvas.
func Render(size int, v Variant) (*image.RGBA, error) {
	recipe, ok := recipes[size]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	c := NewCanvas(size)
	recipe(c, v)
	return c.Image(), nil
}

// glyph is a tiny bitmap letter given as pixel offsets from its top-left.
type glyph []image.Point

var (
	glyphP = glyph{{0, 0}, {0, 1}, {1, 0}}
	glyphG = glyph{{1, 0}, {0, 1}, {2, 1}}
)

// drawPGP stamps the two-row "PGP" lettering with letters at x = left,
// left+3 and left+8.
func drawPGP(c *Canvas, left, top int, col color.RGBA) {
	letters := []struct {
		g glyph
		x int
	}{
		{glyphP, left},
		{glyphG, left + 3},
		{glyphP, left + 8},
	}
	for _, l := range letters {
		for _, p := range l.g {
			c.Point(l.x+p.X, top+p.Y, col)
		}
	}
}

// drawShackle strokes the upper half of the shackle loop inside the box and
// extends both legs straight down to bottom. Width is measured inwards.
func drawShackle(c *Canvas, x0, y0, x1, y1, width, bottom int, col color.RGBA) {
	c.Arc(x0, y0, x1, y1, 180, 0, width, col)
	mid := (y0 + y1 + 1) / 2
	c.Rect(x0, mid, x0+width-1, bottom, col)
	c.Rect(x1-width+1, mid, x1, bottom, col)
}
