package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sink plays game cues. Playback is fire-and-forget and never reports errors.
type Sink interface {
	PlayEat()
	PlayGameOver()
	Close()
}

// Nop is a silent Sink.
type Nop struct{}

func (Nop) PlayEat()      {}
func (Nop) PlayGameOver() {}
func (Nop) Close()        {}

// Synth synthesizes cues on the system speaker.
type Synth struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	initialized bool
}

func NewSynth() *Synth {
	return &Synth{rate: sampleRate}
}

// Initialize opens the speaker with a 100ms buffer.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *Synth) PlayEat() {
	s.play(EatCue(s.rate))
}

func (s *Synth) PlayGameOver() {
	s.play(GameOverCue(s.rate))
}

func (s *Synth) play(cue beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || cue == nil {
		return
	}
	speaker.Play(cue)
}

// Close silences pending cues and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Open returns a ready Synth, or a Nop when the speaker cannot be opened.
func Open(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	synth := NewSynth()
	if err := synth.Initialize(); err != nil {
		// non-fatal, the game runs silent
		logger.Warn("audio disabled", "err", err)
		return Nop{}
	}
	return synth
}

// tone is a sine at freq Hz lasting d, at half volume.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   -1,
	}
}

// EatCue is a short rising blip.
func EatCue(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(rate, 880, 40*time.Millisecond),
		tone(rate, 1320, 40*time.Millisecond),
	)
}

// GameOverCue is a falling three-note phrase.
func GameOverCue(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(rate, 440, 150*time.Millisecond),
		tone(rate, 330, 150*time.Millisecond),
		tone(rate, 220, 300*time.Millisecond),
	)
}
