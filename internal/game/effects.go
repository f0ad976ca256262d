package game

import (
	"math"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

// ShatterPhase is the lifecycle of a shatter burst.
type ShatterPhase int

const (
	ShatterIdle      ShatterPhase = iota
	ShatterTriggered              // spawn particles on the next render pass
	ShatterRunning                // particles are falling
)

func (p ShatterPhase) String() string {
	switch p {
	case ShatterIdle:
		return "idle"
	case ShatterTriggered:
		return "triggered"
	case ShatterRunning:
		return "running"
	}
	return "unknown"
}

// Effects holds every per-frame visual effect. The zero value is not usable;
// call NewEffects.
type Effects struct {
	BumpAmt   float64
	BumpDelta float64

	AlphaFill        float64
	AlphaFillDelta   float64
	AlphaBorder      float64
	AlphaBorderDelta float64

	Shatter ShatterPhase

	Orbit  bool
	Theta  float64
	Center Point

	BorderChase bool
	BorderPhase float64

	Hypnotize bool
	ShowID    bool

	Jitter float64
}

func NewEffects() *Effects {
	return &Effects{
		AlphaFill:   config.AlphaMax,
		AlphaBorder: config.AlphaMax,
		Shatter:     ShatterIdle,
		Center:      nominalCenter(),
	}
}

func nominalCenter() Point {
	return Point{config.CenterX, config.CenterY}
}

// stepBump advances the bump and reports whether it just reached the
// maximum, in which case the bump is reset.
func (e *Effects) stepBump() bool {
	e.BumpAmt = clamp(e.BumpAmt+e.BumpDelta, 0, config.BumpMax)
	if e.BumpAmt == config.BumpMax {
		e.BumpAmt = 0
		e.BumpDelta = 0
		return true
	}
	if e.BumpAmt < config.BumpEpsilon {
		e.BumpAmt = 0
		e.BumpDelta = 0
	}
	return false
}

func (e *Effects) stepBorder() {
	if !e.BorderChase {
		return
	}
	e.BorderPhase += config.BorderStep
	if e.BorderPhase >= 1 {
		e.BorderPhase = 0
	}
}

func (e *Effects) stepJitter() {
	e.Jitter *= config.JitterDecay
	if e.Jitter < config.JitterEpsilon {
		e.Jitter = 0
	}
}

func (e *Effects) stepAlpha() {
	e.AlphaFill = clamp(e.AlphaFill+e.AlphaFillDelta, 0, config.AlphaMax)
	e.AlphaBorder = clamp(e.AlphaBorder+e.AlphaBorderDelta, 0, config.AlphaMax)
}

// stepOrbit keeps theta running even while the orbit is off so the grid
// resumes from a different point each time.
func (e *Effects) stepOrbit() {
	e.Theta += config.OrbitSpeed
	c := nominalCenter()
	if e.Orbit {
		c.X += config.OrbitRadius * math.Sin(e.Theta)
		c.Y += config.OrbitRadius * math.Cos(e.Theta)
	}
	e.Center = c
}

func (e *Effects) pulse() {
	e.BumpAmt = config.BumpPulse
	e.BumpDelta = config.BumpPulseDecay
}

func (e *Effects) ramp() {
	e.BumpDelta = config.BumpRamp
}

func (e *Effects) toggleOrbit() {
	e.Orbit = !e.Orbit
	if e.Orbit {
		e.BumpAmt = config.BumpPulse
		e.BumpDelta = 0
	} else {
		e.BumpAmt = 0
	}
}

// fadeDirection fades in from fully transparent, otherwise fades out.
func fadeDirection(alpha float64) float64 {
	if alpha == 0 {
		return 1
	}
	return -1
}

func (e *Effects) kickJitter() { e.Jitter = config.JitterKick }
