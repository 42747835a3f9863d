// Package schedrender draws a compact schedule as a PNG-ready image:
// one row per operator, one column per qubit, cells tinted by Pauli
// with the same palette the terminal report uses.
package schedrender

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kegliz/qspc/internal/drawutil"
	"github.com/kegliz/qspc/qc/pauli"
	"github.com/kegliz/qspc/qc/pbc"
)

type Renderer struct {
	cell    int // edge length of one axis cell
	gutter  int // left gutter for the row captions
	topY    int // headroom above the first row
	margin  int
	rowGap  int
	caption bool
}

// NewDefaultRenderer creates a Renderer with default values.
func NewDefaultRenderer() *Renderer {
	return &Renderer{
		cell:    18,
		gutter:  80,
		topY:    10,
		margin:  10,
		rowGap:  4,
		caption: true,
	}
}

var (
	background  = color.RGBA{255, 255, 255, 255}
	borderColor = color.RGBA{60, 60, 60, 255}
	textColor   = color.RGBA{20, 20, 20, 255}
	measureTint = color.RGBA{240, 220, 160, 255}

	cellFill = map[pauli.Pauli]color.RGBA{
		pauli.I: {225, 225, 225, 255},
		pauli.X: {229, 75, 75, 255},
		pauli.Y: {75, 181, 75, 255},
		pauli.Z: {75, 111, 229, 255},
	}
)

// RenderSchedule draws the clocked operator rows onto a fresh image.
func (r *Renderer) RenderSchedule(ops []pbc.ClockedOperator, numQubits int) *image.RGBA {
	rows := len(ops)
	if rows == 0 {
		rows = 1
	}
	cols := numQubits
	if cols == 0 {
		cols = 1
	}
	width := r.gutter + cols*r.cell + r.margin
	height := r.topY + rows*(r.cell+r.rowGap) + r.margin
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	for row, co := range ops {
		y := r.topY + row*(r.cell+r.rowGap)
		if r.caption {
			label := rowCaption(row, co)
			r.drawText(img, r.margin, y+r.cell-4, label)
		}
		axis := co.Op.Axis()
		_, isMeasurement := co.Op.(pbc.Measurement)
		for col := 0; col < axis.Len(); col++ {
			x := r.gutter + col*r.cell
			fill := cellFill[axis[col]]
			drawutil.FillRect(img, x, y, r.cell, r.cell, fill)
			if isMeasurement {
				drawutil.Line(img, x, y+r.cell-1, x+r.cell-1, y, measureTint)
			}
			drawutil.Border(img, x, y, r.cell, r.cell, borderColor)
		}
	}
	return img
}

func rowCaption(row int, co pbc.ClockedOperator) string {
	return "#" + strconv.Itoa(row) + " (+" + strconv.Itoa(co.Clocks) + ")"
}

func (r *Renderer) drawText(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{textColor},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

