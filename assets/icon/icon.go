package icon

import (
	"image"
	"image/color"
)

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	screenBlue = color.RGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0xFF}
	accent     = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	white      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	track      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a screen with a center play button over a half-filled
// seek bar, the overlay in miniature.
func generate(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fill(img, func(x, y float64) bool { return true }, background)
	fill(img, roundRect(s*0.06, s*0.12, s*0.88, s*0.70, s*0.08), screenBlue)

	fill(img, circle(s*0.5, s*0.42, s*0.20), white)
	fill(img, triangle(s*0.44, s*0.31, s*0.44, s*0.53, s*0.62, s*0.42), accent)

	fill(img, roundRect(s*0.14, s*0.70, s*0.72, s*0.04, s*0.02), track)
	fill(img, roundRect(s*0.14, s*0.70, s*0.36, s*0.04, s*0.02), accent)
	fill(img, circle(s*0.50, s*0.72, s*0.04), white)

	return img
}

type shape func(x, y float64) bool

// fill blends c over every pixel whose center lies inside sh.
func fill(img *image.RGBA, sh shape, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if sh(float64(x)+0.5, float64(y)+0.5) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func circle(cx, cy, r float64) shape {
	return func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	}
}

func roundRect(x0, y0, w, h, r float64) shape {
	x1, y1 := x0+w, y0+h
	return func(x, y float64) bool {
		if x < x0 || x > x1 || y < y0 || y > y1 {
			return false
		}
		// Distance to the nearest corner center, clamped inside the rect.
		cx := min(max(x, x0+r), x1-r)
		cy := min(max(y, y0+r), y1-r)
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	}
}

func triangle(ax, ay, bx, by, cx, cy float64) shape {
	edge := func(px, py, qx, qy, x, y float64) float64 {
		return (qx-px)*(y-py) - (qy-py)*(x-px)
	}
	return func(x, y float64) bool {
		e1 := edge(ax, ay, bx, by, x, y)
		e2 := edge(bx, by, cx, cy, x, y)
		e3 := edge(cx, cy, ax, ay, x, y)
		return (e1 >= 0 && e2 >= 0 && e3 >= 0) || (e1 <= 0 && e2 <= 0 && e3 <= 0)
	}
}

// blendPixel alpha-blends c onto the opaque pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.RGBA) {
	switch c.A {
	case 0:
		return
	case 0xFF:
		img.SetRGBA(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	a := uint32(c.A)
	mix := func(src, dst uint8) uint8 {
		return uint8((uint32(src)*a + uint32(dst)*(0xFF-a)) / 0xFF)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: 0xFF,
	})
}
