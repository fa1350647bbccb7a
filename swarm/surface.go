package swarm

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"gonum.org/v1/gonum/spatial/r2"
)

// Surface is the drawing target a swarm renders onto.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	Line(x1, y1, x2, y2 float64, c color.Color)
}

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()                                     {}
func (discard) FillCircle(x, y, r float64, c color.Color)  {}
func (discard) Line(x1, y1, x2, y2 float64, c color.Color) {}

// Pointer is the mouse position in world coordinates.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Vec returns the pointer position as a vector.
func (p Pointer) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// directionScale is the length of the velocity line relative to velocity.
const directionScale = 10

var (
	colourIdle    = color.RGBA{0, 0, 0, 255}
	colourContact = color.RGBA{255, 0, 0, 255}
	colourLine    = color.RGBA{96, 96, 96, 255}
	colourLeader  = hsv(220, 0.9, 0.9)
)

// colour picks the fill for a particle.
func colour(p *Particle, byHeading bool) color.RGBA {
	switch {
	case p.Kind == KindLeader:
		return colourLeader
	case p.Contact:
		return colourContact
	case byHeading:
		h := math.Atan2(p.Vel.Y, p.Vel.X) * 180 / math.Pi
		if h < 0 {
			h += 360
		}
		return hsv(h, 0.8, 0.7)
	}
	return colourIdle
}

func hsv(h, s, v float64) color.RGBA {
	r, g, b, err := colorconv.HSVToRGB(h, s, v)
	if err != nil {
		return colourIdle
	}
	return color.RGBA{r, g, b, 255}
}

func drawParticle(dst Surface, p *Particle, c Config) {
	dst.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, colour(p, c.ColourByHeading))
	if c.ShowDirection {
		end := r2.Add(p.Pos, r2.Scale(directionScale, p.Vel))
		dst.Line(p.Pos.X, p.Pos.Y, end.X, end.Y, colourLine)
	}
}
