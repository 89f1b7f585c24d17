package particles

import (
	"image"
	"image/color"
	"math"
)

const starOpacity = 0.7

// Render draws the scene into frame, replacing its previous contents.
func (scene *Scene) Render(frame *image.NRGBA) {
	bounds := frame.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	for i := range frame.Pix {
		frame.Pix[i] = 0
	}
	if width == 0 || height == 0 {
		return
	}

	for index, line := range scene.lines {
		alpha := scene.LineOpacity(index)
		if alpha <= 0 {
			continue
		}
		for j := 1; j < len(line.points); j++ {
			x0, y0, _, ok0 := scene.project(line.points[j-1], width, height)
			x1, y1, _, ok1 := scene.project(line.points[j], width, height)
			if !ok0 || !ok1 {
				continue
			}
			drawLine(frame, int(x0), int(y0), int(x1), int(y1), line.color, alpha)
		}
	}

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for _, s := range scene.stars {
		x, y, depth, ok := scene.project(scene.starWorld(s.position), width, height)
		if !ok {
			continue
		}
		// Size attenuation: nearer stars are brighter.
		intensity := starOpacity * math.Min(1, s.size*cameraDistance/depth*4)
		blend(frame, int(x), int(y), white, intensity)
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm.
func drawLine(frame *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA, alpha float64) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		blend(frame, x0, y0, c, alpha)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// blend adds c at the given opacity, saturating each channel.
func blend(frame *image.NRGBA, x, y int, c color.NRGBA, alpha float64) {
	if !(image.Point{X: x, Y: y}).In(frame.Bounds()) {
		return
	}
	offset := frame.PixOffset(x, y)
	pixel := frame.Pix[offset : offset+4 : offset+4]
	pixel[0] = addChannel(pixel[0], float64(c.R)*alpha)
	pixel[1] = addChannel(pixel[1], float64(c.G)*alpha)
	pixel[2] = addChannel(pixel[2], float64(c.B)*alpha)
	pixel[3] = addChannel(pixel[3], 255*alpha)
}

func addChannel(current uint8, amount float64) uint8 {
	value := float64(current) + amount
	if value > 255 {
		return 255
	}
	return uint8(value)
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
