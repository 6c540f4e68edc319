package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"snake-heuristic/audio"
	"snake-heuristic/session"
	"snake-heuristic/tui"
)

func main() {
	cfg := session.DefaultConfig()
	rows := flag.Int("rows", cfg.Game.Rows, "Board rows")
	cols := flag.Int("cols", cfg.Game.Columns, "Board columns")
	tick := flag.Duration("tick", cfg.TickInterval, "Time between moves")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	mute := flag.Bool("mute", false, "Start with sound off")
	autoplay := flag.Bool("autoplay", false, "Start with the solver in control")
	logPath := flag.String("log", "", "Write logs to this file (stderr is the game screen)")
	flag.Parse()

	cfg.Game.Rows = *rows
	cfg.Game.Columns = *cols
	cfg.Game.Seed = *seed
	cfg.Game.SoundsOn = !*mute
	cfg.TickInterval = *tick
	cfg.Autoplay = *autoplay

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, nil))

	sounds := audio.Open(logger)
	defer sounds.Close()

	s, err := session.New(cfg, sounds, logger, nil)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = tui.NewApp(screen, s).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatalf("Terminal frontend failed: %v", err)
	}

	summary := s.Stats().Summary()
	logger.Info("session closed", "games", summary.GamesPlayed, "best", summary.MaxScore)
}
