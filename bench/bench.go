// Package bench plays many autoplay games headlessly and records how the
// solver did.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"snake-heuristic/ai"
	"snake-heuristic/game"
	"snake-heuristic/stats"
)

var ErrInvalidConfig = errors.New("invalid bench config")

type Config struct {
	Games    int
	Workers  int
	Rows     int
	Columns  int
	Seed     uint64 // game i is seeded with Seed+i
	MaxTicks int    // a game still alive after this many ticks is stopped
}

func DefaultConfig() Config {
	return Config{
		Games:    100,
		Workers:  runtime.NumCPU(),
		Rows:     20,
		Columns:  20,
		Seed:     1,
		MaxTicks: 20000,
	}
}

func (c Config) Validate() error {
	if c.Games <= 0 || c.Workers <= 0 || c.MaxTicks <= 0 {
		return fmt.Errorf("%w: games=%d workers=%d max_ticks=%d", ErrInvalidConfig, c.Games, c.Workers, c.MaxTicks)
	}
	return c.gameConfig(c.Seed).Validate()
}

func (c Config) gameConfig(seed uint64) game.Config {
	return game.Config{Rows: c.Rows, Columns: c.Columns, Seed: seed}
}

// Result is one finished game, one Parquet row.
type Result struct {
	SessionID  string `parquet:"session_id"`
	Seed       int64  `parquet:"seed"`
	Score      int32  `parquet:"score"`
	Length     int32  `parquet:"length"`
	Ticks      int32  `parquet:"ticks"`
	Cause      string `parquet:"cause,dict"`
	Obstacles  int32  `parquet:"obstacles"`
	TimedOut   bool   `parquet:"timed_out"`
	DurationMs int64  `parquet:"duration_ms"`
}

// ctxCheckEvery is how many ticks a game runs between cancellation checks.
const ctxCheckEvery = 256

// PlayOne runs a single game with the solver in control until the snake dies
// or MaxTicks is reached.
func PlayOne(ctx context.Context, cfg Config, seed uint64) (Result, error) {
	g, err := game.NewGame(cfg.gameConfig(seed), nil)
	if err != nil {
		return Result{}, err
	}
	solver := ai.NewHeuristicSolver(g)
	solver.ToggleRunning()

	start := time.Now()
	for !g.GameOver() && g.Ticks() < cfg.MaxTicks {
		if g.Ticks()%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		g.RequestDirectionChange(solver.GetNextMove())
		g.Advance()
	}

	res := Result{
		SessionID:  g.ID(),
		Seed:       int64(g.Seed()),
		Score:      int32(g.Score()),
		Length:     int32(g.Length()),
		Ticks:      int32(g.Ticks()),
		Obstacles:  int32(g.ObstacleCount()),
		TimedOut:   !g.GameOver(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	if g.GameOver() {
		res.Cause = g.DeathCause().String()
	}
	return res, nil
}

// Run plays cfg.Games games on cfg.Workers goroutines. Results come back in
// game order regardless of which worker finished first.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]Result, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range cfg.Games {
		g.Go(func() error {
			res, err := PlayOne(ctx, cfg, cfg.Seed+uint64(i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			logger.Debug("game finished",
				"game", i,
				"session", res.SessionID,
				"score", res.Score,
				"ticks", res.Ticks,
				"cause", res.Cause,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize aggregates results into a stats tracker.
func Summarize(results []Result) *stats.Tracker {
	tracker := stats.NewTracker()
	epoch := time.Unix(0, 0)
	for _, r := range results {
		tracker.AddGame(stats.GameRecord{
			SessionID: r.SessionID,
			StartTime: epoch,
			EndTime:   epoch.Add(time.Duration(r.DurationMs) * time.Millisecond),
			Score:     int(r.Score),
			Length:    int(r.Length),
			Ticks:     int(r.Ticks),
			Cause:     r.Cause,
		})
	}
	return tracker
}
