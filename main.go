package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"vectoroids/game"
	"vectoroids/window"
)

func main() {
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile for the session to this file")
	debug := flag.Bool("debug", false, "log simulation events")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	game.SetLogger(logger)

	if *cpuProfile != "" {
		p, err := window.StartProfiler(*cpuProfile, logger)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := p.Stop(); err != nil {
				logger.Error("profile not saved", "err", err)
			}
		}()
	}

	config := game.DefaultConfig()
	g := game.NewGame(config, game.NewMathRand(time.Now().UnixNano()))

	if err := window.Run(g, game.NewWallClock(config.MaxDelta), "Vectoroids - ESC to exit", logger); err != nil {
		log.Fatal(err)
	}
}
