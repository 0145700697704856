package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// fillRect fills r on img with c.
func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect draws a frame of the given width just inside r.
func strokeRect(img draw.Image, r image.Rectangle, width int, c color.Color) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// fillTriangle fills the triangle p0 p1 p2 with horizontal scanlines.
func fillTriangle(img draw.Image, p0, p1, p2 image.Point, c color.Color) {
	// Sort vertices top to bottom.
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
	}
	if p2.Y < p0.Y {
		p0, p2 = p2, p0
	}
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}
	if p0.Y == p2.Y {
		return
	}

	// Walk each scanline, interpolating the long edge p0-p2 against the
	// two short edges p0-p1 and p1-p2.
	for y := p0.Y; y <= p2.Y; y++ {
		xa := edgeX(p0, p2, y)
		var xb int
		if y < p1.Y || p1.Y == p2.Y {
			xb = edgeX(p0, p1, y)
		} else {
			xb = edgeX(p1, p2, y)
		}
		if xb < xa {
			xa, xb = xb, xa
		}
		fillRect(img, image.Rect(xa, y, xb+1, y+1), c)
	}
}

// edgeX returns the x coordinate where the edge from a to b crosses scanline y.
func edgeX(a, b image.Point, y int) int {
	if a.Y == b.Y {
		return a.X
	}
	t := float64(y-a.Y) / float64(b.Y-a.Y)
	return a.X + int(t*float64(b.X-a.X))
}
