package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"pong/audio"
	"pong/game"
	"pong/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config := game.DefaultConfig()

	flag.Float64Var(&config.Width, "width", config.Width, "Playfield width in pixels")
	flag.Float64Var(&config.Height, "height", config.Height, "Playfield height in pixels")
	fps := flag.Int("fps", 60, "Frames per second")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for serves")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Write log output to this file")
	flag.Parse()

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if *fps <= 0 {
		return fmt.Errorf("invalid fps %d", *fps)
	}
	config.FramePeriod = time.Second / time.Duration(*fps)

	// Log lines would scribble over the screen
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	world := game.NewWorld(config, rand.New(rand.NewSource(*seed)))

	if !*mute {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
			world.AddListener(sounds)
		}
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Starting game loop (seed %d, %d fps)", *seed, *fps)
	return terminal.New(screen, world).Run(ctx, config.FramePeriod)
}
