package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/render"
)

const halfBlock = '▀'

// present writes the canvas to the screen, two vertical pixels per cell
// The upper pixel becomes the foreground of a half block and the lower one its background
func present(screen tcell.Screen, canvas *render.Canvas) {
	cols := canvas.Width()
	rows := canvas.Height() / parameter.TermCellAspect
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, _ := canvas.At(x, y*parameter.TermCellAspect)
			bottom, _ := canvas.At(x, y*parameter.TermCellAspect+1)
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

// drawText writes lines from the top-left corner, clipped to the screen width
func drawText(screen tcell.Screen, lines []string, c color.RGBA) {
	w, h := screen.Size()
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(toColor(render.ColorOutOfWorld))
	for y, line := range lines {
		if y >= h {
			return
		}
		x := 0
		for _, r := range line {
			if x >= w {
				break
			}
			screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
