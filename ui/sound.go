package ui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-heuristic/audio"
)

const (
	eatSoundFile      = "eat.wav"
	gameOverSoundFile = "gameover.wav"
)

// SoundBank plays WAV cues through the raylib audio device.
type SoundBank struct {
	eat      rl.Sound
	gameOver rl.Sound
}

// LoadSoundBank opens the audio device and loads the cue files from dir.
func LoadSoundBank(dir string) (*SoundBank, error) {
	eatPath := filepath.Join(dir, eatSoundFile)
	gameOverPath := filepath.Join(dir, gameOverSoundFile)
	for _, path := range []string{eatPath, gameOverPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("sound asset: %w", err)
		}
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil, fmt.Errorf("raylib audio device not ready")
	}

	return &SoundBank{
		eat:      rl.LoadSound(eatPath),
		gameOver: rl.LoadSound(gameOverPath),
	}, nil
}

func (b *SoundBank) PlayEat() {
	rl.PlaySound(b.eat)
}

func (b *SoundBank) PlayGameOver() {
	rl.PlaySound(b.gameOver)
}

func (b *SoundBank) Close() {
	rl.UnloadSound(b.eat)
	rl.UnloadSound(b.gameOver)
	rl.CloseAudioDevice()
}

// OpenSounds prefers the WAV assets in dir and falls back to synthesized cues.
func OpenSounds(dir string, logger *slog.Logger) audio.Sink {
	if logger == nil {
		logger = slog.Default()
	}
	bank, err := LoadSoundBank(dir)
	if err == nil {
		return bank
	}
	logger.Info("using synthesized sounds", "assets", dir, "reason", err)
	return audio.Open(logger)
}
