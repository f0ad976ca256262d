package game

import "image/color"

// Canvas receives the immediate-mode draw commands of one frame.
type Canvas interface {
	Clear(c color.Color)
	FillTriangle(a, b, c Point, clr color.Color)
	Line(a, b Point, clr color.Color)
	Polyline(pts []Point, clr color.Color)
	// FillQuad fills a convex quad given in winding order.
	FillQuad(q [4]Point, clr color.Color)
	Text(s string, at Point, clr color.Color)
}
