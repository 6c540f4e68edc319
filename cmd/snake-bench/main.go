package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"time"

	"snake-heuristic/bench"
)

func main() {
	cfg := bench.DefaultConfig()
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Number of games to play")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Games played in parallel")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Board rows")
	flag.IntVar(&cfg.Columns, "cols", cfg.Columns, "Board columns")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the first game; game i uses seed+i")
	flag.IntVar(&cfg.MaxTicks, "max-ticks", cfg.MaxTicks, "Stop a game after this many ticks")
	out := flag.String("out", "", "Write per-game results to this Parquet file")
	verbose := flag.Bool("v", false, "Log every finished game")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := bench.Run(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Bench failed: %v", err)
	}

	if *out != "" {
		if err := bench.WriteResults(*out, results); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
		logger.Info("results written", "path", *out, "rows", len(results))
	}

	s := bench.Summarize(results).Summary()
	logger.Info("bench finished",
		"games", s.GamesPlayed,
		"elapsed", time.Since(start).Round(time.Millisecond),
		"avg_score", fmt.Sprintf("%.2f", s.AverageScore),
		"median_score", s.MedianScore,
		"max_score", s.MaxScore,
		"avg_ticks", fmt.Sprintf("%.1f", s.AverageTicks),
	)

	causes := make([]string, 0, len(s.Causes))
	for cause := range s.Causes {
		causes = append(causes, cause)
	}
	sort.Strings(causes)
	for _, cause := range causes {
		fmt.Printf("%-10s %d\n", cause, s.Causes[cause])
	}
}
