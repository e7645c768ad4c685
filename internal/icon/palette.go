package icon

import "image/color"

// Icon palette. Every opaque colour is fully opaque so the GIF encoder only
// ever sees one transparent entry.
var (
	Background = color.RGBA{0, 0, 0, 0}

	LockBody     = color.RGBA{41, 98, 255, 255} // vibrant blue
	LockBodyDark = color.RGBA{25, 70, 200, 255}

	ShackleEncrypt = color.RGBA{41, 98, 255, 255}
	ShackleDecrypt = color.RGBA{76, 175, 80, 255} // green, unlocked

	KeyHole   = color.RGBA{255, 255, 255, 255}
	TextWhite = color.RGBA{255, 255, 255, 255}
	TextTint  = color.RGBA{200, 200, 255, 255} // light blue lettering at 32x32

	ArrowUp   = color.RGBA{76, 175, 80, 255}
	ArrowDown = color.RGBA{255, 152, 0, 255}

	BadgeEncrypt = color.RGBA{76, 175, 80, 255}
	BadgeDecrypt = color.RGBA{255, 152, 0, 255}
)

// arrowGlyph is the colour of the arrow drawn inside a badge.
var arrowGlyph = KeyHole
