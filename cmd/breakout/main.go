// breakout plays the classic brick-breaking game in a terminal or a window.
//
// Usage:
//
//	breakout play              - Play in the terminal
//	breakout play -b window    - Play in a desktop window
//	breakout backends          - List display backends
//	breakout maps validate     - Check level maps
//	breakout config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--log-file <path>    - Write logs to a file (default: none)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/breakout/internal/platform/tui"
	_ "github.com/vovakirdan/breakout/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagLogFile  string
	flagLogLevel string

	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the bricks",
	Long: `Breakout is the classic arcade game: steer the paddle, keep the ball
in play and clear every brick to advance to the next level.

Available commands:
  play      - Start a game
  backends  - Show available display backends
  maps      - Inspect level maps
  config    - Print the default configuration

Examples:
  breakout play
  breakout play --backend window --difficulty hard
  breakout maps validate ./maps`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal play draws over stderr)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. Without --log-file logs are dropped.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagLogFile == "" {
		return log.New(io.Discard), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	return logger, nil
}
