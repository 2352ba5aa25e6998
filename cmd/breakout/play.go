package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/platform/tui"
	"github.com/vovakirdan/breakout/internal/registry"
)

var (
	flagBackend    string
	flagConfig     string
	flagDifficulty string
	flagMapsDir    string
	flagLevel      int
	flagMode       string
	flagPickLevel  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start a game of Breakout.

Controls:
  Left/Right        - Move the paddle
  Shift+Left/Right  - Move the paddle faster
  Esc               - Pause; Esc again quits
  Enter             - Resume from pause
  Ctrl+C            - Quit (terminal)

Difficulty options:
  easy   - Slower game, faster paddle; speeds up over time
  normal - Starts at 30% difficulty and speeds up over time
  hard   - Faster game, narrower paddle; starts at 70% difficulty
  fixed  - No speed-up

Examples:
  breakout play
  breakout play --backend window
  breakout play --difficulty hard --level 2
  breakout play --maps ./my-maps --pick-level
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagBackend, "backend", "b", "terminal", "Display backend (see 'breakout backends')")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Directory with level maps (default: config maps.dir, then built-in)")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	playCmd.Flags().StringVar(&flagMode, "mode", "single", "Game mode: single, coop, vs")
	playCmd.Flags().BoolVar(&flagPickLevel, "pick-level", false, "Choose the starting level from a list")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q, run 'breakout backends' to see available backends", flagBackend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mode, err := breakout.ParseMode(flagMode)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	maps := mapsFS(cfg)
	level := flagLevel
	if flagPickLevel {
		width := 80
		if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
		}
		levels := tui.Levels(breakout.NewLoader(cfg, maps, logger))
		level, err = tui.RunLevelSelector(levels, width)
		if err != nil {
			return err
		}
		// Player backed out
		if level == 0 {
			return nil
		}
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}
	logger.Info("starting game", "backend", backend.Name(), "level", level, "difficulty", flagDifficulty)

	return backend.Run(registry.RunOptions{
		Game: breakout.Options{
			Config:     cfg,
			Maps:       maps,
			StartLevel: level,
			Mode:       mode,
			Logger:     logger,
		},
		FPS:    flagFPS,
		Logger: logger,
	})
}

// loadConfig reads the config and applies --difficulty.
func loadConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.BreakoutConfig{}, err
	}
	return cfg, nil
}

// mapsFS picks the map source: --maps, then maps.dir, then nil for the
// built-in maps.
func mapsFS(cfg config.BreakoutConfig) fs.FS {
	dir := flagMapsDir
	if dir == "" {
		dir = cfg.Maps.Dir
	}
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}
