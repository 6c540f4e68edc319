package session

import (
	"errors"
	"fmt"
	"time"

	"snake-heuristic/game"
)

var ErrInvalidTiming = errors.New("session timings must be positive")

// Config drives the session state machine. Game.Seed, when set, seeds the
// first game; later games use Seed+1, Seed+2 and so on.
type Config struct {
	Game game.Config

	TickInterval  time.Duration // time between engine ticks while playing
	CountdownFrom int           // first number shown before play starts
	CountdownStep time.Duration // time each countdown number stays up
	RevealStep    time.Duration // time between dead segments being revealed
	GameOverHold  time.Duration // pause on the dead snake before resetting

	Autoplay bool // start every game with the solver in control
}

func DefaultConfig() Config {
	return Config{
		Game:          game.DefaultConfig(),
		TickInterval:  100 * time.Millisecond,
		CountdownFrom: 3,
		CountdownStep: 500 * time.Millisecond,
		RevealStep:    50 * time.Millisecond,
		GameOverHold:  time.Second,
	}
}

func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("game config: %w", err)
	}
	if c.TickInterval <= 0 || c.CountdownStep <= 0 || c.RevealStep <= 0 || c.GameOverHold < 0 {
		return ErrInvalidTiming
	}
	if c.CountdownFrom < 0 {
		return fmt.Errorf("%w: countdown from %d", ErrInvalidTiming, c.CountdownFrom)
	}
	return nil
}
