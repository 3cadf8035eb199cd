// Package audio plays the short click cues of the page controls.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	cueLength = 40 * time.Millisecond
	cueVolume = 0.25
)

// Cue identifies a control sound.
type Cue int

const (
	MenuToggle Cue = iota
	LinkFollow
)

var cueFreq = map[Cue]float64{
	MenuToggle: 660,
	LinkFollow: 880,
}

// Player plays cues through the speaker. A nil *Player is silent.
type Player struct{}

// NewPlayer initialises the speaker.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Player{}, nil
}

func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	speaker.Play(Tone(SampleRate, cueFreq[c], cueLength))
}

func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}

// Tone is a decaying sine of the given frequency and length.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	sine := beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			env := math.Exp(-5 * float64(pos) / float64(total))
			v := cueVolume * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(total, sine)
}
