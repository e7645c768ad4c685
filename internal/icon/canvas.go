package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Coverage cut-offs for vector fills. Polygons keep thin tips (arrow heads),
// ellipses stay round at small diameters.
const (
	polygonCoverage = 0x20
	ellipseCoverage = 0x80
)

// bezierArc is the control point distance for a quarter circle drawn with
// one cubic Bezier segment.
const bezierArc = 0.5522847498

// Canvas is a square RGBA raster with hard-edged drawing primitives.
// Box coordinates are inclusive on both ends and every primitive replaces the
// pixels it covers, so painting Background erases.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a fully transparent size×size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Point sets a single pixel. Points outside the canvas are ignored.
func (c *Canvas) Point(x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// Line draws a 1px line between two pixels (Bresenham).
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Point(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Rect fills the box [x0,y0]..[x1,y1].
func (c *Canvas) Rect(x0, y0, x1, y1 int, col color.RGBA) {
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(c.img.Rect)
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// RoundedRect fills the box with corners of the given radius cut away.
func (c *Canvas) RoundedRect(x0, y0, x1, y1, radius int, col color.RGBA) {
	if radius <= 0 {
		c.Rect(x0, y0, x1, y1, col)
		return
	}
	rr := float64(radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Distance from the pixel centre to the nearest corner centre,
			// only relevant inside the corner squares.
			cx := clampf(float64(x)+0.5, float64(x0)+rr, float64(x1+1)-rr)
			cy := clampf(float64(y)+0.5, float64(y0)+rr, float64(y1+1)-rr)
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr*rr {
				c.Point(x, y, col)
			}
		}
	}
}

// Ellipse fills the ellipse inscribed in the box.
func (c *Canvas) Ellipse(x0, y0, x1, y1 int, col color.RGBA) {
	left, top := float32(x0), float32(y0)
	right, bottom := float32(x1+1), float32(y1+1)
	mx, my := (left+right)/2, (top+bottom)/2
	kx := (right - left) / 2 * bezierArc
	ky := (bottom - top) / 2 * bezierArc

	z := c.rasterizer()
	z.MoveTo(right, my)
	z.CubeTo(right, my+ky, mx+kx, bottom, mx, bottom)
	z.CubeTo(mx-kx, bottom, left, my+ky, left, my)
	z.CubeTo(left, my-ky, mx-kx, top, mx, top)
	z.CubeTo(mx+kx, top, right, my-ky, right, my)
	z.ClosePath()
	c.fill(z, ellipseCoverage, col)
}

// Polygon fills the polygon through the given pixel centres.
func (c *Canvas) Polygon(pts []image.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	z := c.rasterizer()
	z.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X)+0.5, float32(p.Y)+0.5)
	}
	z.ClosePath()
	c.fill(z, polygonCoverage, col)
}

// Arc strokes part of the ellipse inscribed in the box with the given width,
// measured inwards. Angles are in degrees, clockwise from 3 o'clock; an end
// angle below the start wraps past 360.
func (c *Canvas) Arc(x0, y0, x1, y1 int, start, end float64, width int, col color.RGBA) {
	a := float64(x1-x0+1) / 2
	b := float64(y1-y0+1) / 2
	mx := float64(x0) + a
	my := float64(y0) + b
	ia := a - float64(width)
	ib := b - float64(width)

	full := end-start >= 360
	start = math.Mod(start, 360)
	if start < 0 {
		start += 360
	}
	end = math.Mod(end, 360)
	for end < start {
		end += 360
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - mx
			dy := float64(y) + 0.5 - my
			if (dx*dx)/(a*a)+(dy*dy)/(b*b) > 1 {
				continue
			}
			if ia > 0 && ib > 0 && (dx*dx)/(ia*ia)+(dy*dy)/(ib*ib) <= 1 {
				continue
			}
			if !full && !inSweep(angleOf(dx, dy), start, end) {
				continue
			}
			c.Point(x, y, col)
		}
	}
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// fill paints col wherever the rasterised coverage reaches cutoff.
func (c *Canvas) fill(z *vector.Rasterizer, cutoff uint8, col color.RGBA) {
	mask := image.NewAlpha(c.img.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
			if mask.AlphaAt(x, y).A >= cutoff {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// angleOf returns the clockwise angle of (dx, dy) in [0, 360), y pointing down.
func angleOf(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func inSweep(angle, start, end float64) bool {
	return (angle >= start && angle <= end) || (angle+360 >= start && angle+360 <= end)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
