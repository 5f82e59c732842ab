package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climb/internal/config"
	"github.com/vovakirdan/tui-climb/internal/core"
	"github.com/vovakirdan/tui-climb/internal/platform/tui"
	"github.com/vovakirdan/tui-climb/internal/storage"
)

var (
	flagWatch   bool
	flagLogFile string
	flagP1Name  string
	flagP2Name  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a split-screen match on this terminal. Both players share the keyboard.

Controls:
  Player 1   A/D move, W jump, Z attack
  Player 2   Left/Right move, Up jump, / attack
  P/Esc      Pause
  R          Rematch (after a win, keeps the tally)
  X          Reset the tally and return to the menu
  Ctrl+S     Save a text screenshot
  Q/Ctrl+C   Quit

Presets:
  classic  - Goal 5000 above the floor
  sprint   - Goal 4000 above the floor
  marathon - Goal 12000 above the floor, old platforms are dropped

Examples:
  climb play
  climb play --p1 Alice --p2 Bob
  climb play --preset marathon
  climb play --config ./climb.yaml --watch --log climb.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file between matches when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write the session log to this file")
	playCmd.Flags().StringVar(&flagP1Name, "p1", "", "Name of player 1")
	playCmd.Flags().StringVar(&flagP2Name, "p2", "", "Name of player 2")
}

func runPlay(_ *cobra.Command, _ []string) {
	climbCfg, preset, err := loadClimbConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The game owns the screen, so logs only go to a file
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "climb",
	})

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	ledger, err := storage.OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: match history disabled: %v\n", err)
		// Continue without the ledger - game still works
	} else {
		defer ledger.Close()
	}

	opts := tui.Options{
		Ledger: ledger,
		Logger: logger,
		Preset: preset,
		Names:  [2]string{flagP1Name, flagP2Name},
	}

	if flagWatch {
		if path := config.ResolvePath(flagConfig); path == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file found (using built-in defaults)")
		} else if w, watchErr := config.NewWatcher(path); watchErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, watchErr)
		} else {
			defer w.Close()
			opts.Watcher = w
			logger.Info("watching config", "path", w.Path())
		}
	}

	if err := tui.Run(cfg, climbCfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
