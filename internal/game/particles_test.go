package game

import (
	"math"
	"testing"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

func TestNewParticlePoolInactive(t *testing.T) {
	p := NewParticlePool()
	if p.Cap() != config.NParticle {
		t.Errorf("Expected capacity %d, got %d", config.NParticle, p.Cap())
	}
	if n := p.ActiveCount(); n != 0 {
		t.Errorf("Expected no active particles, got %d", n)
	}
}

func TestParticlePoolCapacity(t *testing.T) {
	p := NewParticlePool()
	for i := 0; i < config.NParticle; i++ {
		if !p.Spawn(Particle{}) {
			t.Fatalf("Expected spawn %d to succeed", i)
		}
	}
	if p.Spawn(Particle{}) {
		t.Errorf("Expected spawn beyond capacity to fail")
	}
	if n := p.ActiveCount(); n != config.NParticle {
		t.Errorf("Expected %d active, got %d", config.NParticle, n)
	}

	p.Rewind()
	if !p.Spawn(Particle{X: 7}) {
		t.Errorf("Expected spawn after rewind to succeed")
	}
	if n := p.ActiveCount(); n != config.NParticle {
		t.Errorf("Expected rewind to keep %d active, got %d", config.NParticle, n)
	}

	p.Reset()
	if n := p.ActiveCount(); n != 0 {
		t.Errorf("Expected reset to clear the pool, got %d active", n)
	}
}

func TestParticleStep(t *testing.T) {
	tests := []struct {
		name       string
		start      Particle
		wantActive bool
		wantY      float64
		wantDY     float64
	}{
		{"Falls under gravity", Particle{Y: 100, DY: 0}, true, 100, config.Gravity},
		{"Moves by velocity", Particle{Y: 100, DY: 2}, true, 102, 2 + config.Gravity},
		{"Retired below floor", Particle{Y: 999.5, DY: 1}, false, 1000.5, 1 + config.Gravity},
		{"Exactly at floor stays", Particle{Y: 999, DY: 1}, true, 1000, 1 + config.Gravity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParticlePool()
			p.Spawn(tt.start)
			p.Step()

			got := &p.parts[0]
			if got.Active != tt.wantActive {
				t.Errorf("Expected active %v, got %v", tt.wantActive, got.Active)
			}
			if math.Abs(got.Y-tt.wantY) > eps {
				t.Errorf("Expected Y %v, got %v", tt.wantY, got.Y)
			}
			if math.Abs(got.DY-tt.wantDY) > eps {
				t.Errorf("Expected DY %v, got %v", tt.wantDY, got.DY)
			}
		})
	}
}

func TestParticleStepSkipsInactive(t *testing.T) {
	p := NewParticlePool()
	p.Step()
	if p.parts[0].Y != 0 || p.parts[0].DY != 0 {
		t.Errorf("Expected inactive particle untouched, got %+v", p.parts[0])
	}
}
