package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/audio"
	"pong/game"
	"pong/window"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	config := game.DefaultConfig()

	flag.Float64Var(&config.Width, "width", config.Width, "Playfield width in pixels")
	flag.Float64Var(&config.Height, "height", config.Height, "Playfield height in pixels")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for serves")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	world := game.NewWorld(config, rand.New(rand.NewSource(*seed)))

	if !*mute {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
			world.AddListener(sounds)
		}
	}

	ebiten.SetWindowSize(int(config.Width), int(config.Height))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowResizable(true)

	log.Printf("Starting game loop (seed %d)", *seed)
	if err := ebiten.RunGame(window.New(world)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
