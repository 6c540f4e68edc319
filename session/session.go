package session

import (
	"fmt"
	"log/slog"
	"time"

	"snake-heuristic/ai"
	"snake-heuristic/game"
	"snake-heuristic/game/types"
	"snake-heuristic/stats"
)

// Phase is where the session is in the start / play / death cycle.
type Phase int

const (
	Idle Phase = iota
	Countdown
	Playing
	Dying
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Countdown:
		return "countdown"
	case Playing:
		return "playing"
	case Dying:
		return "dying"
	default:
		return "unknown"
	}
}

type CommandKind int

const (
	CmdStart CommandKind = iota
	CmdSteer
	CmdToggleAutoplay
	CmdToggleSound
	CmdPause
	CmdQuit
)

// Command is a frontend-neutral input. Direction is only read for CmdSteer.
type Command struct {
	Kind      CommandKind
	Direction types.Direction
}

func Start() Command { return Command{Kind: CmdStart} }
func Steer(dir types.Direction) Command { return Command{Kind: CmdSteer, Direction: dir} }
func ToggleAutoplay() Command { return Command{Kind: CmdToggleAutoplay} }
func ToggleSound() Command { return Command{Kind: CmdToggleSound} }
func Pause() Command { return Command{Kind: CmdPause} }
func Quit() Command { return Command{Kind: CmdQuit} }

// Session owns the current game and moves it through Idle, Countdown,
// Playing and Dying. Frontends feed it commands and call Update once per
// frame; it is not safe for concurrent use.
type Session struct {
	cfg     Config
	cues    game.CueSink
	logger  *slog.Logger
	tracker *stats.Tracker

	game     *game.Game
	solver   *ai.HeuristicSolver
	decision ai.Decision
	played   int

	phase      Phase
	phaseStart time.Time
	lastTick   time.Time
	startedAt  time.Time
	countdown  int
	revealed   int

	paused   bool
	autoplay bool
	soundsOn bool
	done     bool
}

// New builds a session sitting in Idle on a fresh board. cues, logger and
// tracker may be nil.
func New(cfg Config, cues game.CueSink, logger *slog.Logger, tracker *stats.Tracker) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if tracker == nil {
		tracker = stats.NewTracker()
	}

	s := &Session{
		cfg:      cfg,
		cues:     cues,
		logger:   logger,
		tracker:  tracker,
		autoplay: cfg.Autoplay,
		soundsOn: cfg.Game.SoundsOn,
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset() error {
	cfg := s.cfg.Game
	cfg.SoundsOn = s.soundsOn
	if cfg.Seed != 0 {
		cfg.Seed += uint64(s.played)
	}

	g, err := game.NewGame(cfg, s.cues)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	s.game = g
	s.attachSolver()
	s.phase = Idle
	s.paused = false
	s.revealed = 0
	s.countdown = 0
	return nil
}

// attachSolver gives the current game a fresh solver that keeps the
// session's autoplay setting.
func (s *Session) attachSolver() {
	s.solver = ai.NewHeuristicSolver(s.game)
	if s.autoplay {
		s.solver.ToggleRunning()
	}
	s.decision = ai.Decision{Direction: s.game.Direction()}
}

func (s *Session) Game() *game.Game { return s.game }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Paused() bool { return s.paused }
func (s *Session) Autoplay() bool { return s.autoplay }
func (s *Session) SoundsOn() bool { return s.soundsOn }
func (s *Session) Done() bool { return s.done }
func (s *Session) Stats() *stats.Tracker { return s.tracker }
func (s *Session) Decision() ai.Decision { return s.decision }
func (s *Session) Countdown() int { return s.countdown }
func (s *Session) Solver() *ai.HeuristicSolver { return s.solver }

// Revealed returns how many body segments, head first, are drawn as dead.
func (s *Session) Revealed() int {
	return s.revealed
}

// Handle applies one command at time now.
func (s *Session) Handle(cmd Command, now time.Time) {
	if cmd.Kind == CmdQuit {
		s.done = true
		return
	}

	switch s.phase {
	case Idle:
		if cmd.Kind == CmdStart {
			s.beginCountdown(now)
		}

	case Playing:
		if s.paused {
			s.paused = false
			s.lastTick = now
			return
		}
		switch cmd.Kind {
		case CmdPause:
			s.paused = true
		case CmdSteer:
			if !s.autoplay {
				s.game.RequestDirectionChange(cmd.Direction)
			}
		case CmdToggleAutoplay:
			s.autoplay = !s.autoplay
			s.solver.ToggleRunning()
			s.logger.Info("autoplay toggled", "session", s.game.ID(), "on", s.autoplay)
		case CmdToggleSound:
			s.soundsOn = !s.soundsOn
			s.game.SetSoundsEnabled(s.soundsOn)
		}
	}
}

// Update advances timers and, while playing, the engine. It reports whether
// an engine tick ran.
func (s *Session) Update(now time.Time) bool {
	switch s.phase {
	case Countdown:
		s.updateCountdown(now)
	case Playing:
		return s.updatePlaying(now)
	case Dying:
		s.updateDying(now)
	}
	return false
}

func (s *Session) beginCountdown(now time.Time) {
	s.phase = Countdown
	s.phaseStart = now
	s.countdown = s.cfg.CountdownFrom
	s.updateCountdown(now)
}

func (s *Session) updateCountdown(now time.Time) {
	steps := int(now.Sub(s.phaseStart) / s.cfg.CountdownStep)
	s.countdown = s.cfg.CountdownFrom - steps
	if s.countdown > 0 {
		return
	}

	s.countdown = 0
	s.attachSolver()
	s.phase = Playing
	s.phaseStart = now
	s.lastTick = now
	s.startedAt = now
	s.logger.Info("game started",
		"session", s.game.ID(),
		"seed", s.game.Seed(),
		"rows", s.game.Rows(),
		"cols", s.game.Columns(),
		"autoplay", s.autoplay,
	)
}

func (s *Session) updatePlaying(now time.Time) bool {
	if s.paused || now.Sub(s.lastTick) < s.cfg.TickInterval {
		return false
	}
	s.lastTick = now

	if s.solver.IsRunning() {
		s.decision = s.solver.Decide()
		s.game.RequestDirectionChange(s.decision.Direction)
	}

	out := s.game.Advance()
	if out.GameOver {
		s.finish(now)
	}
	return true
}

func (s *Session) finish(now time.Time) {
	g := s.game
	s.played++
	s.tracker.AddGame(stats.GameRecord{
		SessionID: g.ID(),
		StartTime: s.startedAt,
		EndTime:   now,
		Score:     g.Score(),
		Length:    g.Length(),
		Ticks:     g.Ticks(),
		Cause:     g.DeathCause().String(),
	})
	s.logger.Info("game over",
		"session", g.ID(),
		"score", g.Score(),
		"length", g.Length(),
		"ticks", g.Ticks(),
		"cause", g.DeathCause().String(),
	)

	s.phase = Dying
	s.phaseStart = now
	s.revealed = 0
}

func (s *Session) updateDying(now time.Time) {
	length := s.game.Length()
	elapsed := now.Sub(s.phaseStart)

	s.revealed = min(length, int(elapsed/s.cfg.RevealStep)+1)
	if elapsed < time.Duration(length)*s.cfg.RevealStep+s.cfg.GameOverHold {
		return
	}

	if err := s.reset(); err != nil {
		// the config was validated in New, so this only fires on a bug
		s.logger.Error("reset failed", "err", err)
		s.done = true
	}
}
