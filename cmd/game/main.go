package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/tatianab/trek/internal/config"
	"github.com/tatianab/trek/internal/engine"
	"github.com/tatianab/trek/internal/logger"
	"github.com/tatianab/trek/internal/models"
	"github.com/tatianab/trek/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only surface when LOG_FILE is set.
	log, closer, err := logger.Init(cfg.Logging, io.Discard)
	if err != nil {
		fmt.Printf("Error starting logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	models.SaveDir = cfg.Save.Dir

	rules, err := config.LoadRules(cfg.Game.RulesFile)
	if err != nil {
		fmt.Printf("Error loading rules: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting", "seed", seed, "save_dir", cfg.Save.Dir)

	game := engine.NewGame(rand.New(rand.NewPCG(seed, seed)), rules, log)
	if err := tui.Run(tui.Options{
		Game:     game,
		SaveName: cfg.Save.Name,
		Seed:     seed,
		Logger:   log,
	}); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
