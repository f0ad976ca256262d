// Package sfx synthesizes the short sound cues raised by the scene and plays
// them through the beep speaker.
package sfx

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/shatter-grid/internal/config"
	"github.com/iburimskiy/shatter-grid/internal/game"
)

// Player mixes cues into the speaker. It satisfies game.CuePlayer.
type Player struct {
	rate   beep.SampleRate
	volume float64
}

// New initializes the speaker. volume is in halvings relative to full scale:
// 0 is unchanged, -1 half, -2 a quarter.
func New(volume float64) (*Player, error) {
	rate := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &Player{rate: rate, volume: volume}, nil
}

// Play queues c on the speaker and returns immediately.
func (p *Player) Play(c game.Cue) {
	s := Cue(p.rate, c)
	if s == nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
	})
}

// Cue builds the streamer for c, or nil for an unknown cue.
func Cue(rate beep.SampleRate, c game.Cue) beep.Streamer {
	switch c {
	case game.CueShatter:
		// low rumble with a lot of grit
		return newBurst(rate, 1200*time.Millisecond, 55, 0.7)
	case game.CuePulse:
		// soft thump
		return newBurst(rate, 150*time.Millisecond, 110, 0.1)
	}
	return nil
}

// burst is a sine tone mixed with white noise under an exponential decay.
type burst struct {
	rate  float64
	n     int
	pos   int
	freq  float64
	noise float64
	rng   *rand.Rand
}

func newBurst(rate beep.SampleRate, d time.Duration, freq, noise float64) *burst {
	return &burst{
		rate:  float64(rate),
		n:     rate.N(d),
		freq:  freq,
		noise: noise,
		rng:   rand.New(rand.NewPCG(uint64(freq), uint64(d))),
	}
}

func (b *burst) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.n {
		return 0, false
	}
	i := 0
	for ; i < len(samples) && b.pos < b.n; i++ {
		t := float64(b.pos) / b.rate
		env := math.Exp(-5 * float64(b.pos) / float64(b.n))
		tone := math.Sin(2 * math.Pi * b.freq * t)
		grit := b.rng.Float64()*2 - 1
		v := env * ((1-b.noise)*tone + b.noise*grit)
		samples[i] = [2]float64{v, v}
		b.pos++
	}
	return i, true
}

func (b *burst) Err() error { return nil }
