package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/invaders/internal/application/game"
	"github.com/younwookim/invaders/internal/application/scene/playing"
	"github.com/younwookim/invaders/internal/infrastructure/audio"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys).LoadAll()
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play a recording headless and print the outcome")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	muteFlag := flag.Bool("mute", false, "Start with sound muted")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(*replayFlag, cfg.Wave); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] %v, running silent", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	scene := playing.New(cfg, playing.Options{
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
		Sound:      sound,
	})
	w, h := scene.Layout(0, 0)
	g := game.New(scene, w, h, cfg.Display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(w*cfg.Display.Scale, h*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("Exited after %d frames", g.Frames())
}
