package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/invaders/internal/infrastructure/audio"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir == "" {
		wave := config.Default()
		display := config.DefaultDisplay()
		return &config.GameConfig{Display: &display, Wave: &wave}, nil
	}
	return config.NewLoader(dir).LoadAll()
}

func main() {
	configFlag := flag.String("config", "", "Directory holding wave.yaml and display.yaml (default: built-in values)")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	logFlag := flag.String("log", "", "Write logs to this file (default: discarded)")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	// The screen owns stdout, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	var sound soundPlayer
	if !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("[audio] %v, running silent", err)
		}
		defer sm.Cleanup()
		sound = sm
	}

	runErr := newApp(screen, cfg, seed, sound).run()
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		os.Exit(1)
	}
}
