package game

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

func TestNewPalette(t *testing.T) {
	pal := NewPalette()

	tests := []struct {
		name  string
		index int
		want  color.NRGBA
	}{
		{"White", 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"Black", 1, color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{"Red", 2, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{"Green", 3, color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{"Blue", 4, color.NRGBA{R: 0, G: 0, B: 255, A: 255}},
		{"First generated", 5, color.NRGBA{R: 50, G: 50, B: 50, A: 255}},
		{"Blue varies fastest", 6, color.NRGBA{R: 50, G: 50, B: 150, A: 255}},
		{"Last generated", 31, color.NRGBA{R: 250, G: 250, B: 250, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pal.RGBA(tt.index, 255); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func filledRegister(mode ShiftMode) *ShiftRegister {
	r := NewShiftRegister(config.NRect, config.BandWidth)
	r.Mode = mode
	for i := 0; i < r.Len(); i++ {
		r.Set(i, i%config.PaletteSize)
	}
	return r
}

func snapshot(r *ShiftRegister) []int {
	out := make([]int, r.Len())
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

func TestShiftLinear(t *testing.T) {
	r := filledRegister(ShiftLinear)
	before := snapshot(r)
	r.Shift()

	if r.At(0) != before[0] {
		t.Errorf("Expected slot 0 to stay %d, got %d", before[0], r.At(0))
	}
	for i := 1; i < r.Len(); i++ {
		if r.At(i) != before[i-1] {
			t.Errorf("Expected slot %d to be %d, got %d", i, before[i-1], r.At(i))
		}
	}
}

func TestShiftRibbons(t *testing.T) {
	r := filledRegister(ShiftRibbons)
	before := snapshot(r)
	r.Shift()
	w := config.BandWidth

	// band 0 moves forward
	for j := 1; j < w; j++ {
		if r.At(j) != before[j-1] {
			t.Errorf("Expected slot %d to be %d, got %d", j, before[j-1], r.At(j))
		}
	}
	// band 1 moves backward and is refilled from the shifted end of band 0
	for j := w; j < 2*w-2; j++ {
		if r.At(j) != before[j+1] {
			t.Errorf("Expected slot %d to be %d, got %d", j, before[j+1], r.At(j))
		}
	}
	for _, j := range []int{2*w - 2, 2*w - 1} {
		if r.At(j) != r.At(w-1) {
			t.Errorf("Expected slot %d to copy slot %d, got %d", j, w-1, r.At(j))
		}
	}
	// band 2 head is refilled from slot 0
	if r.At(2*w+1) != before[0] {
		t.Errorf("Expected slot %d to be %d, got %d", 2*w+1, before[0], r.At(2*w+1))
	}
}

func TestShiftDiagonal(t *testing.T) {
	r := filledRegister(ShiftDiagonal)
	before := snapshot(r)
	r.Shift()
	w := config.BandWidth

	if r.At(0) != before[0] {
		t.Errorf("Expected slot 0 untouched, got %d", r.At(0))
	}
	for i := w; i < r.Len(); i += w {
		if r.At(i) != before[i-w] {
			t.Errorf("Expected band head %d to be %d, got %d", i, before[i-w], r.At(i))
		}
	}
	// the slot after each head picks up the head's new value
	for i := 1; i < r.Len(); i++ {
		if i%w == 0 {
			continue
		}
		want := before[i-1]
		if i%w == 1 {
			want = r.At(i - 1)
		}
		if r.At(i) != want {
			t.Errorf("Expected slot %d to be %d, got %d", i, want, r.At(i))
		}
	}
}

func TestShiftKeepsValidIndices(t *testing.T) {
	for _, mode := range []ShiftMode{ShiftLinear, ShiftRibbons, ShiftDiagonal} {
		t.Run(mode.String(), func(t *testing.T) {
			r := filledRegister(mode)
			for n := 0; n < 200; n++ {
				r.Set(0, n%5)
				r.Shift()
				for i := 0; i < r.Len(); i++ {
					if v := r.At(i); v < 0 || v >= config.PaletteSize {
						t.Fatalf("Expected valid palette index at %d, got %d", i, v)
					}
				}
			}
		})
	}
}

func TestShiftRegisterSetRejectsInvalid(t *testing.T) {
	r := NewShiftRegister(config.NRect, config.BandWidth)
	r.Set(0, 3)
	r.Set(0, config.PaletteSize)
	r.Set(0, -1)
	if r.At(0) != 3 {
		t.Errorf("Expected slot 0 to stay 3, got %d", r.At(0))
	}
}

func TestShiftRegisterMisaligned(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for a length that is not a multiple of the band width")
		}
	}()
	NewShiftRegister(60, 7)
}

func TestShiftModeNext(t *testing.T) {
	tests := []struct {
		from, want ShiftMode
	}{
		{ShiftDiagonal, ShiftLinear},
		{ShiftLinear, ShiftRibbons},
		{ShiftRibbons, ShiftDiagonal},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			if got := tt.from.Next(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
