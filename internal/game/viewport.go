package game

import (
	"fmt"
	"log"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Viewport is the window rectangle the scene is scaled into.
type Viewport struct {
	X, Y, W, H int
}

func NewViewport() Viewport {
	return Viewport{X: 0, Y: 0, W: config.ScreenWidth, H: config.ScreenHeight}
}

// Nudge moves the viewport one step in dir, or resizes it when resize is
// set. Up/left shrink, down/right grow.
func (v *Viewport) Nudge(dir Direction, step int, resize bool) {
	x, y := &v.X, &v.Y
	if resize {
		x, y = &v.W, &v.H
	}
	switch dir {
	case DirUp:
		*y -= step
	case DirDown:
		*y += step
	case DirLeft:
		*x -= step
	case DirRight:
		*x += step
	}
}

// Visible reports whether the viewport has any area to draw into.
func (v Viewport) Visible() bool { return v.W > 0 && v.H > 0 }

func (v Viewport) String() string {
	return fmt.Sprintf("%d,%d %dx%d", v.X, v.Y, v.W, v.H)
}

func (v Viewport) log() {
	log.Printf("[Viewport] %s", v)
}
