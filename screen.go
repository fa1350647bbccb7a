package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var background = color.RGBA{255, 255, 255, 255}

// screen draws swarm primitives onto an ebiten image.
type screen struct {
	img *ebiten.Image
}

func (s screen) Clear() {
	s.img.Fill(background)
}

func (s screen) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

func (s screen) Line(x1, y1, x2, y2 float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, true)
}
