package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-heuristic/session"
	"snake-heuristic/ui"
)

func main() {
	cfg := session.DefaultConfig()
	rows := flag.Int("rows", cfg.Game.Rows, "Board rows")
	cols := flag.Int("cols", cfg.Game.Columns, "Board columns")
	tick := flag.Duration("tick", cfg.TickInterval, "Time between moves")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	mute := flag.Bool("mute", false, "Start with sound off")
	autoplay := flag.Bool("autoplay", false, "Start with the solver in control")
	assets := flag.String("assets", "assets", "Directory holding eat.wav and gameover.wav")
	flag.Parse()

	cfg.Game.Rows = *rows
	cfg.Game.Columns = *cols
	cfg.Game.Seed = *seed
	cfg.Game.SoundsOn = !*mute
	cfg.TickInterval = *tick
	cfg.Autoplay = *autoplay

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	rl.InitWindow(1280, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	// Escape pauses instead of closing the window
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	sounds := ui.OpenSounds(*assets, logger)
	defer sounds.Close()

	s, err := session.New(cfg, sounds, logger, nil)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	renderer := ui.NewRenderer()
	for !rl.WindowShouldClose() && !s.Done() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		now := time.Now()
		for _, cmd := range ui.PollCommands(s.Phase()) {
			s.Handle(cmd, now)
		}
		s.Update(now)

		renderer.Draw(s)
	}

	summary := s.Stats().Summary()
	logger.Info("session closed",
		"games", summary.GamesPlayed,
		"best", summary.MaxScore,
		"average", summary.AverageScore,
	)
}
