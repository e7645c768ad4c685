package icon

import "image"

// drawLock30 draws the 30x30 padlock with "PGP" lettering under the body and
// a 10x10 rounded badge.
func drawLock30(c *Canvas, v Variant) {
	c.RoundedRect(4, 13, 25, 27, 3, LockBody)

	if v == Encrypt {
		drawShackle(c, 8, 3, 21, 16, 3, 12, ShackleEncrypt)
		// Darker inner edge for depth.
		drawShackle(c, 10, 5, 19, 14, 1, 12, LockBodyDark)
	} else {
		drawShackle(c, 10, 1, 23, 14, 3, 12, ShackleDecrypt)
		// Cut the left leg so the shackle reads as open.
		c.Rect(10, 8, 13, 12, Background)
	}

	// Keyhole
	c.Ellipse(12, 17, 17, 22, KeyHole)
	c.Rect(13, 21, 16, 25, KeyHole)

	drawPGP(c, 5, 28, TextWhite)

	if v == Encrypt {
		c.RoundedRect(20, 0, 29, 9, 2, v.Badge())
		c.Polygon([]image.Point{{24, 1}, {22, 4}, {26, 4}}, arrowGlyph)
		c.Rect(23, 4, 24, 6, arrowGlyph)
	} else {
		c.RoundedRect(0, 0, 9, 9, 2, v.Badge())
		c.Polygon([]image.Point{{4, 7}, {2, 4}, {6, 4}}, arrowGlyph)
		c.Rect(3, 2, 4, 4, arrowGlyph)
	}
}
