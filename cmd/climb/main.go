// climb is a two-player split-screen climbing race for the terminal.
//
// Usage:
//
//	climb play      - Play on this terminal, two players at one keyboard
//	climb serve     - Start an SSH server hosting the game
//	climb config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom climb.yaml
//	--preset <name>     - Rules preset: classic, sprint, marathon
//
// Flags left unset fall back to CLIMB_FPS, CLIMB_SEED, CLIMB_CONFIG and
// CLIMB_PRESET, which may also come from a .env file.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climb/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagPreset string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climb",
	Short: "Split-screen climbing race for two players",
	Long: `Climb is a two-player split-screen platformer for the terminal.
Both players share one keyboard, climb an endless ladder of platforms,
knock each other sideways and race to the goal line.

Available commands:
  play     - Play on this terminal
  serve    - Start an SSH server hosting the game
  config   - Print the effective configuration

Examples:
  climb play
  climb play --preset sprint
  climb play --config ./climb.yaml --watch
  climb serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom climb config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Rules preset: classic, sprint, marathon")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv loads .env and fills flags the user did not set from CLIMB_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("config") {
		flagConfig = config.GetEnv("CLIMB_CONFIG", flagConfig)
	}
	if !flags.Changed("preset") {
		flagPreset = config.GetEnv("CLIMB_PRESET", flagPreset)
	}
	if !flags.Changed("fps") {
		if v := config.GetEnv("CLIMB_FPS", ""); v != "" {
			fps, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid CLIMB_FPS %q: %w", v, err)
			}
			flagFPS = fps
		}
	}
	if !flags.Changed("seed") {
		if v := config.GetEnv("CLIMB_SEED", ""); v != "" {
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid CLIMB_SEED %q: %w", v, err)
			}
			flagSeed = seed
		}
	}

	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}
	return nil
}

// loadClimbConfig resolves the match rules from --config and --preset.
func loadClimbConfig() (config.ClimbConfig, config.Preset, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.ClimbConfig{}, "", err
	}

	cfg, err := config.LoadClimb(flagConfig)
	if err != nil {
		return config.ClimbConfig{}, "", err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.ClimbConfig{}, "", err
	}
	return cfg, preset, nil
}
