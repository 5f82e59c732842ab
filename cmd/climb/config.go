package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climb/internal/config"
)

var flagShowPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match would use, after the config file
search and the preset are applied, as YAML.

Search order:
  1. --config <path> (or CLIMB_CONFIG)
  2. ~/.climb/configs/climb.yaml
  3. ./configs/climb.yaml
  4. Built-in defaults

Examples:
  climb config > ~/.climb/configs/climb.yaml
  climb config --preset marathon
  climb config --path`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowPath, "path", false, "Only print which config file is used")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagShowPath {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			path = "(built-in defaults)"
		}
		fmt.Println(path)
		return
	}

	cfg, preset, err := loadClimbConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# preset: %s\n", preset)
	os.Stdout.Write(data)
}
