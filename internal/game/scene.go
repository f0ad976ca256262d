package game

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

// Cue is a sound event raised by the scene.
type Cue int

const (
	CueShatter Cue = iota
	CuePulse
)

// CuePlayer plays sound cues without blocking the frame.
type CuePlayer interface {
	Play(c Cue)
}

type silentCues struct{}

func (silentCues) Play(Cue) {}

// Scene owns the whole simulation: effects, the palette register, the
// particle arena and the viewport. It is driven by one Update and one Draw
// per frame from a single goroutine.
type Scene struct {
	Effects  *Effects
	Palette  *ShiftRegister
	Colors   Palette
	Pool     *ParticlePool
	Viewport Viewport

	frame     uint64
	drawFrame uint64 // frame number of the last update
	rng       randSource
	cues      CuePlayer
	exit      bool
}

type Option func(*Scene)

// WithSeed makes jitter and particle spawning reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Scene) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithCues(p CuePlayer) Option {
	return func(s *Scene) {
		if p != nil {
			s.cues = p
		}
	}
}

func NewScene(opts ...Option) *Scene {
	s := &Scene{
		Effects:  NewEffects(),
		Palette:  NewShiftRegister(config.NRect, config.BandWidth),
		Colors:   NewPalette(),
		Pool:     NewParticlePool(),
		Viewport: NewViewport(),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		cues:     silentCues{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Frame returns the frame number the next Draw renders.
func (s *Scene) Frame() uint64 { return s.drawFrame }

func (s *Scene) triggerShatter() {
	s.Effects.Shatter = ShatterTriggered
	s.cues.Play(CueShatter)
}

func (s *Scene) Update() {
	fx := s.Effects

	if fx.Shatter == ShatterRunning {
		s.Pool.Step()
	}

	if fx.stepBump() {
		s.triggerShatter()
	}
	fx.stepBorder()
	fx.stepJitter()

	if onCadence(s.frame, config.ShiftEvery) {
		s.Palette.Shift()
	}

	fx.stepAlpha()
	fx.stepOrbit()

	s.drawFrame = s.frame
	s.frame++
}

// Draw renders the grid, or the falling particles while a shatter runs.
func (s *Scene) Draw(c Canvas) {
	c.Clear(color.Black)

	fx := s.Effects
	if fx.Shatter != ShatterRunning {
		s.drawGrid(c)
		if fx.Shatter == ShatterTriggered {
			s.Pool.Rewind()
			fx.Shatter = ShatterRunning
		}
		return
	}

	n := s.Pool.Each(func(p *Particle) {
		c.FillQuad(particleQuad(p), p.Color)
	})
	if n == 0 {
		fx.Shatter = ShatterIdle
	}
}

// particleQuad is the particle's square rotated by its theta about its center.
func particleQuad(p *Particle) [4]Point {
	sin, cos := math.Sincos(p.Theta * math.Pi / 180)
	h := config.ParticleHalf
	corners := [4]Point{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	for i, k := range corners {
		corners[i] = Point{
			X: p.X + k.X*cos - k.Y*sin,
			Y: p.Y + k.X*sin + k.Y*cos,
		}
	}
	return corners
}
