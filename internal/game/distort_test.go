package game

import (
	"math"
	"math/rand/v2"
	"testing"
)

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// panicRand fails the test if the distortion draws noise it should not need.
type panicRand struct{ t *testing.T }

func (r panicRand) Float64() float64 {
	r.t.Fatalf("Expected no random draw without jitter")
	return 0
}

func TestDistortNoBump(t *testing.T) {
	tests := []struct {
		name          string
		point, center Point
	}{
		{"At center", Point{512, 384}, Point{512, 384}},
		{"Near center", Point{520, 390}, Point{512, 384}},
		{"Far away", Point{0, 0}, Point{700, 700}},
		{"Negative coords", Point{-50, -10}, Point{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distort(tt.point, tt.center, 0, 0, panicRand{t})
			if !near(got, tt.point) {
				t.Errorf("Expected %v unchanged, got %v", tt.point, got)
			}
		})
	}
}

func TestDistortBeyondRadius(t *testing.T) {
	center := Point{500, 400}
	tests := []struct {
		name  string
		point Point
		bump  float64
	}{
		{"Exactly at radius", Point{900, 400}, 100},
		{"Beyond radius", Point{500, 1000}, 50},
		{"Far diagonal", Point{-1000, -1000}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distort(tt.point, center, tt.bump, 0, panicRand{t})
			if !near(got, tt.point) {
				t.Errorf("Expected no displacement at %v, got %v", tt.point, got)
			}
		})
	}
}

func TestDistortPushesOutward(t *testing.T) {
	center := Point{0, 0}
	// D = 200 => scale = 0.5 * 80/80 = 0.5
	got := Distort(Point{200, 0}, center, 80, 0, panicRand{t})
	want := Point{300, 0}
	if !near(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDistortJitterBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	p := Point{10, 10}
	for i := 0; i < 1000; i++ {
		got := Distort(p, Point{5000, 5000}, 0, 3, rng)
		if math.Abs(got.X-p.X) > 3 || math.Abs(got.Y-p.Y) > 3 {
			t.Fatalf("Expected jitter within 3, got %v", got)
		}
	}
}
