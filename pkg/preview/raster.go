package preview

import (
	"image"
	"image/color"
	"math"
)

// point is a projected vertex: screen x, screen y and view depth
type point struct {
	x, y, z float64
}

// fillTriangle fills a triangle using a scanline algorithm, writing only
// pixels closer than what zbuffer already holds
func fillTriangle(img *image.RGBA, zbuffer []float64, a, b, c point, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	bounds := img.Bounds()
	width := bounds.Dx()

	// The long edge a-c spans every row, so it always supplies one end.
	edges := [3][2]point{{a, c}, {a, b}, {b, c}}

	yStart := int(math.Max(0, math.Ceil(a.y)))
	yEnd := int(math.Min(float64(bounds.Dy()-1), c.y))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		var xs, zs [2]float64
		found := 0
		for _, e := range edges {
			p, q := e[0], e[1]
			if p.y == q.y || fy < p.y || fy > q.y || found == 2 {
				continue
			}
			t := (fy - p.y) / (q.y - p.y)
			xs[found] = p.x + t*(q.x-p.x)
			zs[found] = p.z + t*(q.z-p.z)
			found++
		}
		if found < 2 {
			continue
		}

		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
			zs[0], zs[1] = zs[1], zs[0]
		}

		xStart := int(math.Max(0, math.Ceil(xs[0])))
		xEnd := int(math.Min(float64(width-1), xs[1]))

		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if xs[1] != xs[0] {
				t = (float64(x) - xs[0]) / (xs[1] - xs[0])
			}
			z := zs[0] + t*(zs[1]-zs[0])

			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// shade scales the RGB channels of col by intensity in [0, 1]
func shade(col color.RGBA, intensity float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(col.R)*intensity + 0.5),
		G: uint8(float64(col.G)*intensity + 0.5),
		B: uint8(float64(col.B)*intensity + 0.5),
		A: col.A,
	}
}
