package icon

import "image"

// drawLock32 follows the 30x30 layout on a taller body, with tinted
// lettering and a wider arrow head.
func drawLock32(c *Canvas, v Variant) {
	c.RoundedRect(4, 14, 27, 29, 3, LockBody)

	if v == Encrypt {
		drawShackle(c, 9, 3, 22, 17, 3, 13, ShackleEncrypt)
	} else {
		drawShackle(c, 11, 1, 24, 15, 3, 13, ShackleDecrypt)
		c.Rect(11, 9, 14, 13, Background)
	}

	c.Ellipse(13, 18, 18, 23, KeyHole)
	c.Rect(14, 22, 17, 27, KeyHole)

	drawPGP(c, 6, 30, TextTint)

	if v == Encrypt {
		c.RoundedRect(22, 0, 31, 9, 2, v.Badge())
		c.Polygon([]image.Point{{26, 1}, {23, 4}, {29, 4}}, arrowGlyph)
		c.Rect(25, 4, 26, 7, arrowGlyph)
	} else {
		c.RoundedRect(0, 0, 9, 9, 2, v.Badge())
		c.Polygon([]image.Point{{4, 7}, {1, 4}, {7, 4}}, arrowGlyph)
		c.Rect(3, 1, 4, 4, arrowGlyph)
	}
}
