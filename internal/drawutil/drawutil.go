package drawutil

import (
	"image"
	"image/color"
	"image/draw"
)

func Line(img *image.RGBA, x1, y1, x2, y2 int, col color.Color) {
	// very small Bresenham
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := sign(x2-x1), sign(y2-y1)
	err := dx - dy
	for {
		img.Set(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillRect fills the w x h rectangle at (x, y).
func FillRect(img *image.RGBA, x, y, w, h int, col color.Color) {
	rect := image.Rect(x, y, x+w, y+h)
	draw.Draw(img, rect, &image.Uniform{col}, image.Point{}, draw.Src)
}

// Border strokes the one-pixel border of the w x h rectangle at (x, y).
func Border(img *image.RGBA, x, y, w, h int, col color.Color) {
	for i := 0; i < w; i++ {
		img.Set(x+i, y, col)
		img.Set(x+i, y+h-1, col)
	}
	for i := 0; i < h; i++ {
		img.Set(x, y+i, col)
		img.Set(x+w-1, y+i, col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
