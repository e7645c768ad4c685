package icon

// drawLock16 draws the 16x16 padlock. There is no room for lettering at this
// size and the badge is a plain 5x5 square.
func drawLock16(c *Canvas, v Variant) {
	if v == Encrypt {
		// Closed loop, open at the bottom where the legs enter the body.
		drawShackle(c, 4, 1, 11, 9, 2, 6, ShackleEncrypt)
	} else {
		// Open shackle lifted up and to the right.
		c.Arc(5, 0, 12, 8, 0, 360, 2, ShackleDecrypt)
	}

	// Body, with the top corners softened by one pixel.
	c.Rect(3, 7, 12, 14, LockBody)
	c.Rect(2, 8, 13, 14, LockBody)

	// Keyhole
	c.Rect(7, 9, 8, 12, KeyHole)

	if v == Encrypt {
		// Bar with the tip above it.
		c.Rect(11, 0, 15, 4, v.Badge())
		c.Line(12, 2, 14, 2, arrowGlyph)
		c.Point(13, 1, arrowGlyph)
	} else {
		// Bar with the tip below it.
		c.Rect(0, 0, 4, 4, v.Badge())
		c.Line(1, 2, 3, 2, arrowGlyph)
		c.Point(2, 3, arrowGlyph)
	}
}
