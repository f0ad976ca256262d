package game

import (
	"image/color"
	"strconv"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

var labelColor = color.NRGBA{G: 255, A: 255}

// Hidden reports whether grid cell (x, y) is cut away by the diamond mask at
// the top of the grid.
func Hidden(x, y int) bool {
	switch y {
	case 0:
		return x != 3
	case 1:
		return x < 2 || x > 4
	case 2:
		return x < 1 || x > 5
	}
	return false
}

// cellQuad is the undistorted quad of cell (x, y), clockwise from top-left.
func cellQuad(x, y int) [4]Point {
	x1 := float64(config.GridX + x*config.CellWidth)
	y1 := float64(config.GridY + y*config.CellHeight)
	x2 := x1 + config.CellWidth - config.CellGapX
	y2 := y1 + config.CellHeight - config.CellGapY
	return [4]Point{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
}

// drawGrid walks the grid column by column. Masked cells still consume a
// palette slot so indices stay aligned with grid position.
func (s *Scene) drawGrid(c Canvas) {
	rIndex := 0
	for x := 0; x < config.GridCols; x++ {
		for y := 0; y < config.GridRows; y++ {
			if !Hidden(x, y) {
				s.drawCell(c, x, y, rIndex)
			}
			rIndex++
		}
	}
}

func (s *Scene) drawCell(c Canvas, x, y, rIndex int) {
	fx := s.Effects
	rect := cellQuad(x, y)

	var q [4]Point
	for i, p := range rect {
		q[i] = Distort(p, fx.Center, fx.BumpAmt, fx.Jitter, s.rng)
	}

	slot := s.Palette.At(rIndex)
	if fx.Shatter == ShatterTriggered {
		s.shatterCell(q[0], s.Colors.RGBA(slot, 255))
		return
	}

	// fill
	fill := s.Colors.RGBA(slot, uint8(fx.AlphaFill))
	c.FillTriangle(q[0], q[1], q[2], fill)
	c.FillTriangle(q[0], q[2], q[3], fill)

	// border
	border := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(fx.AlphaBorder)}
	if fx.BorderChase {
		path := borderPath(rect)
		c.Polyline(chaseArc(path[:], fx.BorderPhase), border)
	} else {
		for i := range q {
			c.Line(q[i], q[wrapIndex(i+1, len(q))], border)
		}
	}

	if fx.Hypnotize {
		s.drawRings(c, rect)
	}

	if fx.ShowID {
		c.Text(strconv.Itoa(rIndex), rect[0].Add(Point{10, 25}), labelColor)
	}
}

// shatterCell breaks a cell into a 2x2 block of particles anchored at its
// distorted top-left corner.
func (s *Scene) shatterCell(origin Point, clr color.NRGBA) {
	for px := 0; px < 2; px++ {
		for py := 0; py < 2; py++ {
			s.Pool.Spawn(Particle{
				X:      origin.X + 20 + float64(px)*20,
				Y:      origin.Y + 20 + float64(py)*20,
				Theta:  uniform(s.rng, -1, 1),
				DX:     uniform(s.rng, -0.1, 0.1),
				DY:     uniform(s.rng, -0.5, 0),
				DTheta: uniform(s.rng, -0.5, 0.5),
				Color:  clr,
			})
		}
	}
}

// drawRings draws the nested hypnotize rectangles inside the undistorted
// cell. The starting inset cycles with the frame count.
func (s *Scene) drawRings(c Canvas, rect [4]Point) {
	x1, y1 := rect[0].X, rect[0].Y
	x2, y2 := rect[2].X, rect[2].Y
	start := 2 + int((s.drawFrame/config.HypnotizePeriod)%10)
	for d := start; d < 20; d += 5 {
		clr := color.Gray{Y: uint8(255 - d*6)}
		inX, inY := float64(d), float64(d/2)
		ring := [4]Point{
			{x1 + inX, y1 + inY},
			{x2 - inX, y1 + inY},
			{x2 - inX, y2 - inY},
			{x1 + inX, y2 - inY},
		}
		for i := range ring {
			c.Line(ring[i], ring[wrapIndex(i+1, len(ring))], clr)
		}
	}
}
