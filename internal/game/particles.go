package game

import (
	"image/color"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

// Particle is one falling fragment of a shattered cell. Theta and DTheta are
// in degrees.
type Particle struct {
	Active         bool
	X, Y, Theta    float64
	DX, DY, DTheta float64
	Color          color.NRGBA
}

// ParticlePool is a fixed arena of particles with an allocation cursor. The
// cursor only moves forward during a burst and is rewound when the burst's
// render pass completes.
type ParticlePool struct {
	parts  [config.NParticle]Particle
	cursor int
}

func NewParticlePool() *ParticlePool {
	p := &ParticlePool{}
	p.Reset()
	return p
}

// Reset deactivates every particle and rewinds the cursor.
func (p *ParticlePool) Reset() {
	for i := range p.parts {
		p.parts[i] = Particle{Active: false}
	}
	p.cursor = 0
}

// Rewind moves the cursor back to the first slot without touching particles.
func (p *ParticlePool) Rewind() { p.cursor = 0 }

func (p *ParticlePool) Cap() int { return len(p.parts) }

// Spawn stores part at the cursor and marks it active. It reports false when
// the arena is exhausted.
func (p *ParticlePool) Spawn(part Particle) bool {
	if p.cursor >= len(p.parts) {
		return false
	}
	part.Active = true
	p.parts[p.cursor] = part
	p.cursor++
	return true
}

// Step integrates every active particle one frame under gravity and retires
// the ones that fell below the floor.
func (p *ParticlePool) Step() {
	for i := range p.parts {
		pt := &p.parts[i]
		if !pt.Active {
			continue
		}
		pt.X += pt.DX
		pt.Y += pt.DY
		pt.Theta += pt.DTheta
		pt.DY += config.Gravity
		if pt.Y > config.ParticleFloor {
			pt.Active = false
		}
	}
}

// Each calls fn for every active particle and returns how many there were.
func (p *ParticlePool) Each(fn func(*Particle)) int {
	n := 0
	for i := range p.parts {
		if !p.parts[i].Active {
			continue
		}
		n++
		if fn != nil {
			fn(&p.parts[i])
		}
	}
	return n
}

func (p *ParticlePool) ActiveCount() int { return p.Each(nil) }
