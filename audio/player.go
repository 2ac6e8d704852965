package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/asciiquarium/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Player mixes cue sounds onto the speaker
// Every method is safe before Initialize and after Cleanup; sounds are then dropped
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	counts      map[Cue]int
}

// NewPlayer creates a player with linear gain volume in [0,1]
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		counts: make(map[Cue]int),
	}
}

// Initialize sets up the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBuffer)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	slog.Info("audio initialized", "rate", int(sampleRate))
	return nil
}

// Cleanup silences the mixer
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues a cue sound
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.queue(cue)
	speaker.Unlock()
}

// PlayAll queues each cue in order
func (p *Player) PlayAll(cues []Cue) {
	for _, c := range cues {
		p.Play(c)
	}
}

// queue adds the cue to the mixer; caller holds the locks
func (p *Player) queue(cue Cue) bool {
	s := GetCueSound(cue, sampleRate, p.volume)
	if s == nil {
		return false
	}
	p.mixer.Add(s)
	p.counts[cue]++
	slog.Debug("audio cue", "cue", cue.String())
	return true
}

// Count reports how many times a cue was queued
func (p *Player) Count(cue Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[cue]
}
