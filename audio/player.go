package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bitga/parameter"
	"github.com/lixenwraith/bitga/report"
)

// Player announces run verdicts through the system speaker
type Player struct {
	config *Config

	initOnce sync.Once
	initErr  error
	opened   bool
}

// NewPlayer creates a player; the speaker is opened on first Play
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{config: cfg}
}

// Enabled reports whether Play produces sound
func (p *Player) Enabled() bool {
	return p.config.Enabled
}

func (p *Player) init() error {
	p.initOnce.Do(func() {
		rate := beep.SampleRate(p.config.SampleRate)
		p.initErr = speaker.Init(rate, rate.N(parameter.AudioBufferDuration))
		if p.initErr != nil {
			log.Printf("[AUDIO] speaker init failed: %v", p.initErr)
			return
		}
		p.opened = true
	})
	return p.initErr
}

// Play blocks until the verdict sound finishes or AudioPlayTimeout elapses
// A disabled player returns immediately
func (p *Player) Play(v report.Verdict) error {
	if !p.config.Enabled {
		return nil
	}
	if err := p.init(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	s, err := VerdictSound(v, p.config)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() { close(done) })))

	select {
	case <-done:
		return nil
	case <-time.After(parameter.AudioPlayTimeout):
		speaker.Clear()
		return fmt.Errorf("audio: playback timed out after %s", parameter.AudioPlayTimeout)
	}
}

// Close releases the speaker if it was opened; later Play calls return an error
func (p *Player) Close() {
	p.initOnce.Do(func() { p.initErr = fmt.Errorf("player closed") })
	if p.opened {
		speaker.Close()
		p.opened = false
	}
}
