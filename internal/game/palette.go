package game

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

// Palette is the fixed set of colors cells can take.
type Palette [config.PaletteSize]colorful.Color

// NewPalette builds the five named colors followed by every combination of
// R, G, B in {50, 150, 250}.
func NewPalette() Palette {
	var pal Palette
	p := 0
	for _, c := range []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	} {
		pal[p], _ = colorful.MakeColor(c)
		p++
	}
	for r := 50; r <= 250; r += 100 {
		for g := 50; g <= 250; g += 100 {
			for b := 50; b <= 250; b += 100 {
				pal[p] = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
				p++
			}
		}
	}
	return pal
}

// RGBA returns entry i with the given straight (non-premultiplied) alpha.
func (pal *Palette) RGBA(i int, alpha uint8) color.NRGBA {
	r, g, b := pal[i].Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

type ShiftMode int

const (
	ShiftLinear ShiftMode = iota
	ShiftRibbons
	ShiftDiagonal
)

func (m ShiftMode) String() string {
	switch m {
	case ShiftLinear:
		return "linear"
	case ShiftRibbons:
		return "ribbons"
	case ShiftDiagonal:
		return "diagonal"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Next cycles through the modes.
func (m ShiftMode) Next() ShiftMode {
	return ShiftMode(wrapIndex(int(m)+1, config.PaletteModes))
}

// ShiftRegister holds one palette index per grid slot. Every value is always
// a valid palette index because shifts only copy existing entries and Set
// rejects anything else.
type ShiftRegister struct {
	idx   []int
	width int
	Mode  ShiftMode
}

// NewShiftRegister panics unless n is a positive multiple of width; the
// ribbons and diagonal modes address whole bands of width cells.
func NewShiftRegister(n, width int) *ShiftRegister {
	if width <= 0 || n <= 0 || n%width != 0 {
		panic(fmt.Sprintf("shift register: length %d is not a multiple of band width %d", n, width))
	}
	return &ShiftRegister{
		idx:   make([]int, n),
		width: width,
		Mode:  ShiftDiagonal,
	}
}

func (r *ShiftRegister) Len() int { return len(r.idx) }

func (r *ShiftRegister) At(i int) int { return r.idx[i] }

// Set writes palette index v into slot i. Out-of-range values are ignored.
func (r *ShiftRegister) Set(i, v int) {
	if v < 0 || v >= config.PaletteSize {
		return
	}
	r.idx[i] = v
}

// Shift advances the register one step using the active mode. Forward
// copies walk from high to low so each slot is read before it is replaced.
func (r *ShiftRegister) Shift() {
	switch r.Mode {
	case ShiftLinear:
		r.shiftLinear()
	case ShiftRibbons:
		r.shiftRibbons()
	case ShiftDiagonal:
		r.shiftDiagonal()
	}
}

func (r *ShiftRegister) shiftLinear() {
	p := r.idx
	for i := len(p) - 1; i > 0; i-- {
		p[i] = p[i-1]
	}
}

// shiftRibbons moves even bands forward and odd bands backward. Each even band
// is refilled from slot 0, each odd band from the last slot of band 0.
func (r *ShiftRegister) shiftRibbons() {
	p, w, n := r.idx, r.width, len(r.idx)
	for i := 0; i < n; i += 2 * w {
		p[i] = p[0]
		for j := i + w - 1; j > i; j-- {
			p[j] = p[j-1]
		}
	}
	for i := w; i < n; i += 2 * w {
		p[i+w-1] = p[w-1]
		for j := i; j < i+w-1; j++ {
			p[j] = p[j+1]
		}
	}
}

// shiftDiagonal first drops each band head down one band, then moves every
// non-head slot forward by one.
func (r *ShiftRegister) shiftDiagonal() {
	p, w, n := r.idx, r.width, len(r.idx)
	for i := n - w; i > 0; i -= w {
		p[i] = p[i-w]
	}
	for i := n - 1; i > 0; i-- {
		if wrapIndex(i, w) == 0 {
			continue
		}
		p[i] = p[i-1]
	}
}
