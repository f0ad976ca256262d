package sfx

import (
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/shatter-grid/internal/config"
	"github.com/iburimskiy/shatter-grid/internal/game"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			l, r := buf[i][0], buf[i][1]
			if l < -1 || l > 1 {
				t.Fatalf("Expected sample in [-1, 1], got %v", l)
			}
			if l != r {
				t.Fatalf("Expected mono cue, got %v/%v", l, r)
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > config.SampleRate*10 {
			t.Fatalf("Expected cue to end")
		}
	}
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(config.SampleRate)
	tests := []struct {
		name string
		cue  game.Cue
		want int
	}{
		{"Shatter rumble", game.CueShatter, rate.N(1200 * time.Millisecond)},
		{"Pulse thump", game.CuePulse, rate.N(150 * time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Cue(rate, tt.cue)
			if s == nil {
				t.Fatalf("Expected a streamer")
			}
			if got := drain(t, s); got != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, got)
			}
			if err := s.Err(); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if s := Cue(beep.SampleRate(config.SampleRate), game.Cue(99)); s != nil {
		t.Errorf("Expected nil streamer for unknown cue")
	}
}
