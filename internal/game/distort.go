package game

import (
	"math"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func midpoint(p, q Point) Point { return p.Lerp(q, 0.5) }

// Distort applies the bump lens around center and adds uniform noise in
// [-jitter, jitter] on each axis. The displacement fades linearly to zero at
// config.MaxDistortion from the center. rng is only consulted when jitter > 0.
func Distort(p, center Point, bumpAmt, jitter float64, rng randSource) Point {
	d := p.Sub(center)
	dist := clamp(math.Hypot(d.X, d.Y), 0, config.MaxDistortion)
	scale := (1 - dist/config.MaxDistortion) * (bumpAmt / config.BumpDivisor)

	out := p.Add(d.Scale(scale))
	if jitter > 0 {
		out.X += uniform(rng, -jitter, jitter)
		out.Y += uniform(rng, -jitter, jitter)
	}
	return out
}
