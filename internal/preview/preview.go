// Package preview builds an enlarged contact sheet of the generated icons
// for eyeballing pixel work without an image editor.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/Faultbox/pgp-icons/internal/icon"
)

// Sheet layout, in unscaled pixels.
const (
	cellSize = 32 // largest icon size
	padding  = 4
	stripe   = 2 // variant accent bar left of each cell
)

var (
	checkerLight = color.RGBA{236, 236, 236, 255}
	checkerDark  = color.RGBA{204, 204, 204, 255}
)

// Sheet renders every target and lays them out one per row, scaled up with
// nearest-neighbour sampling over a checkerboard so transparency shows.
func Sheet(targets []icon.Target, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid preview scale %d", scale)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no icons to preview")
	}

	cell := cellSize * scale
	pad := padding * scale
	bar := stripe * scale
	width := pad + bar + cell + pad
	height := pad + len(targets)*(cell+pad)

	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(sheet, sheet.Bounds(), image.White, image.Point{}, draw.Src)

	for i, t := range targets {
		img, err := icon.Render(t.Size, t.Variant)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", t, err)
		}

		top := pad + i*(cell+pad)
		accent := image.Rect(pad, top, pad+bar, top+cell)
		draw.Draw(sheet, accent, image.NewUniform(t.Variant.Accent()), image.Point{}, draw.Src)

		// Icons keep their own pixel grid; smaller sizes sit top-left in
		// the cell.
		dst := image.Rect(pad+bar, top, pad+bar+t.Size*scale, top+t.Size*scale)
		checkerboard(sheet, dst, scale*2)
		scaled := imaging.Resize(img, dst.Dx(), dst.Dy(), imaging.NearestNeighbor)
		draw.Draw(sheet, dst, scaled, image.Point{}, draw.Over)
	}
	return sheet, nil
}

// checkerboard fills r with alternating squares of the given side.
func checkerboard(dst *image.RGBA, r image.Rectangle, side int) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := checkerLight
			if ((x-r.Min.X)/side+(y-r.Min.Y)/side)%2 == 1 {
				c = checkerDark
			}
			dst.SetRGBA(x, y, c)
		}
	}
}

// WritePNG saves img to path, creating the parent directory.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := imaging.Encode(file, img, imaging.PNG); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
