package store

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
)

// ErrTooManyColors is returned when an image needs more than the 255 opaque
// palette entries left after the transparent slot.
var ErrTooManyColors = errors.New("image has more than 255 opaque colours")

// transparent is palette index 0. The GIF encoder marks the first zero-alpha
// palette entry as the transparent index.
var transparent = color.RGBA{}

// Paletted converts img to an indexed image. Index 0 is transparent and
// receives every pixel with zero alpha; other colours get indices in the
// order they first appear, scanning rows top to bottom.
func Paletted(img image.Image) (*image.Paletted, error) {
	b := img.Bounds()
	pal := color.Palette{transparent}
	index := map[color.RGBA]uint8{}
	out := image.NewPaletted(b, nil)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c.A == 0 {
				out.SetColorIndex(x, y, 0)
				continue
			}
			i, ok := index[c]
			if !ok {
				if len(pal) == 256 {
					return nil, ErrTooManyColors
				}
				i = uint8(len(pal))
				index[c] = i
				pal = append(pal, c)
			}
			out.SetColorIndex(x, y, i)
		}
	}

	out.Palette = pal
	return out, nil
}

// Encode writes img as a GIF with palette index 0 transparent.
func Encode(w io.Writer, img image.Image) error {
	pm, err := Paletted(img)
	if err != nil {
		return err
	}
	return gif.Encode(w, pm, nil)
}
