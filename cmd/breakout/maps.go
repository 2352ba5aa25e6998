package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/games/breakout"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Inspect level maps",
}

var mapsValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Parse every level map and report skipped lines",
	Long: `Loads level1, level2, ... from dir (or the built-in maps when no dir
is given) and prints the bricks each map places and every line it skips.
Exits with an error when a map has skipped lines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMapsValidate,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long:  `Prints the built-in YAML config; save it to ~/.arcade/configs/breakout.yaml to customize.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

func init() {
	mapsCmd.AddCommand(mapsValidateCmd)
	mapsValidateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runMapsValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	src := "built-in"
	var loader breakout.Loader
	if len(args) == 1 {
		src = args[0]
		loader = breakout.NewLoader(cfg, os.DirFS(args[0]), nil)
	} else {
		loader = breakout.NewLoader(cfg, nil, nil)
	}

	levels := loader.Levels()
	if len(levels) == 0 {
		return fmt.Errorf("%w: %s in %s", breakout.ErrNoMaps, loader.Name(1), src)
	}

	bad := 0
	for _, n := range levels {
		md, _, err := loader.Load(n)
		if err != nil {
			return err
		}
		fmt.Printf("%-16s %3d bricks, %d skipped\n", md.Name, len(md.Placements), len(md.Skipped))
		for _, s := range md.Skipped {
			fmt.Printf("    line %d: %q: %s\n", s.Line, s.Text, s.Reason)
		}
		bad += len(md.Skipped)
	}
	if bad > 0 {
		return fmt.Errorf("%d map lines skipped", bad)
	}
	return nil
}
