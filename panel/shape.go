package panel

import (
	"image"
	"image/color"
	"image/draw"
)

// box draws a filled rectangle.
func box(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// horizontalLine draws a line between (x,y) and (x+w,y).
func horizontalLine(dst draw.Image, x, y, w int, c color.Color) {
	box(dst, image.Rect(x, y, x+w, y+1), c)
}

// disc draws a filled circle using the midpoint algorithm, filling the spans
// between each pair of mirrored octant points.
func disc(dst draw.Image, center image.Point, radius int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
		x0   = center.X
		y0   = center.Y
	)
	horizontalLine(dst, x0-radius, y0, 2*radius+1, c)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		horizontalLine(dst, x0-x, y0+y, 2*x+1, c)
		horizontalLine(dst, x0-x, y0-y, 2*x+1, c)
		horizontalLine(dst, x0-y, y0+x, 2*y+1, c)
		horizontalLine(dst, x0-y, y0-x, 2*y+1, c)
	}
}

// roundedBox draws a filled rectangle with radius pixels rounded corners.
func roundedBox(dst draw.Image, r image.Rectangle, radius int, c color.Color) {
	if radius*2 > r.Dx() || radius*2 > r.Dy() {
		radius = min(r.Dx(), r.Dy()) / 2
	}
	box(dst, image.Rect(r.Min.X+radius, r.Min.Y, r.Max.X-radius, r.Max.Y), c)
	box(dst, image.Rect(r.Min.X, r.Min.Y+radius, r.Max.X, r.Max.Y-radius), c)
	for _, p := range []image.Point{
		{X: r.Min.X + radius, Y: r.Min.Y + radius},
		{X: r.Max.X - radius - 1, Y: r.Min.Y + radius},
		{X: r.Min.X + radius, Y: r.Max.Y - radius - 1},
		{X: r.Max.X - radius - 1, Y: r.Max.Y - radius - 1},
	} {
		disc(dst, p, radius, c)
	}
}
