// Package cue plays short tones when the cover appears or disappears.
package cue

import (
	"log"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneLength = 90 * time.Millisecond

	shownFreq  = 880.0
	hiddenFreq = 440.0
)

// Player plays the show and hide tones. A disabled Player is silent.
type Player struct {
	enabled bool
	// start runs a tone off the caller's goroutine.
	start func(func())

	mu         sync.Mutex
	once       sync.Once
	speakerOK  bool
	speakerErr error
}

// NewPlayer creates a player. The audio device is opened on first use.
func NewPlayer(enabled bool) *Player {
	return &Player{enabled: enabled, start: func(fn func()) { go fn() }}
}

func (p *Player) open() {
	p.once.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			log.Printf("Audio cue falling back to system beep: %v", err)
			p.speakerErr = err
			return
		}
		p.speakerOK = true
	})
}

// Shown plays the tone for the cover appearing. It does not wait for the
// tone, so it is safe to call from the event loop.
func (p *Player) Shown() {
	p.play(shownFreq)
}

// Hidden plays the tone for the cover disappearing.
func (p *Player) Hidden() {
	p.play(hiddenFreq)
}

func (p *Player) play(freq float64) {
	if !p.enabled {
		return
	}
	p.start(func() { p.tone(freq) })
}

func (p *Player) tone(freq float64) {
	p.open()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.speakerOK {
		if err := beeep.Beep(freq, int(toneLength/time.Millisecond)); err != nil {
			log.Printf("Audio cue failed: %v", err)
		}
		return
	}

	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("Audio cue failed: %v", err)
		return
	}
	quiet := &effects.Gain{Streamer: beep.Take(sampleRate.N(toneLength), tone), Gain: -0.7}
	speaker.Play(quiet)
}
