package game

import "log"

// Key is a backend-independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyO
	KeyS
	KeyC
	KeyH
	KeyB
	KeyF
	KeyI
	KeyM
	KeyJ
	Key0
	Key1
	Key2
	Key3
	Key4
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

type Modifier int

const (
	ModControl Modifier = iota
	ModShift
)

// Modifiers reports live modifier key state from the input backend.
type Modifiers interface {
	IsModifierHeld(m Modifier) bool
}

type noModifiers struct{}

func (noModifiers) IsModifierHeld(Modifier) bool { return false }

// KeyPressed applies one key press to the scene. Unrecognised keys do nothing.
func (s *Scene) KeyPressed(k Key, mods Modifiers) {
	if mods == nil {
		mods = noModifiers{}
	}
	fx := s.Effects

	switch k {
	case KeySpace:
		fx.pulse()
		s.cues.Play(CuePulse)
	case KeyEnter:
		fx.ramp()
	case KeyO:
		fx.toggleOrbit()
	case KeyS:
		s.triggerShatter()
	case KeyC:
		fx.BorderChase = !fx.BorderChase
	case KeyH:
		fx.Hypnotize = !fx.Hypnotize
	case KeyB:
		fx.AlphaBorderDelta = fadeDirection(fx.AlphaBorder)
	case KeyF:
		fx.AlphaFillDelta = fadeDirection(fx.AlphaFill)
	case KeyI:
		fx.ShowID = !fx.ShowID
		log.Printf("show ID %v", fx.ShowID)
	case KeyM:
		s.Palette.Mode = s.Palette.Mode.Next()
	case KeyJ:
		fx.kickJitter()
	case Key0, Key1, Key2, Key3, Key4:
		s.Palette.Set(0, int(k-Key0))
	case KeyEscape:
		s.exit = true
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		step := 1
		if mods.IsModifierHeld(ModControl) {
			step = 10
		}
		s.Viewport.Nudge(Direction(k-KeyUp), step, mods.IsModifierHeld(ModShift))
		s.Viewport.log()
	}
}

// ExitRequested reports whether escape was pressed.
func (s *Scene) ExitRequested() bool { return s.exit }
