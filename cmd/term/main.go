package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"vectoroids/game"
	"vectoroids/terminal"
)

func main() {
	logPath := flag.String("log", "", "append log output to this file (the terminal is busy drawing)")
	debug := flag.Bool("debug", false, "log simulation events")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		level := slog.LevelInfo
		if *debug {
			level = slog.LevelDebug
		}
		game.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}

	config := game.DefaultConfig()
	term, err := terminal.Open(config.WorldWidth, config.WorldHeight, config.FrameInterval)
	if err != nil {
		log.Fatal(err)
	}

	g := game.NewGame(config, game.NewMathRand(time.Now().UnixNano()))
	err = game.Run(term, game.NewWallClock(config.MaxDelta), g)
	term.Close()

	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("final score: %d\n", g.Score())
}
