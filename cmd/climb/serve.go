package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climb/internal/config"
	"github.com/vovakirdan/tui-climb/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the climb SSH server",
	Long: `Start an SSH server that hosts the game.

Each SSH connection gets its own session: both players sit at the connecting
terminal and share its keyboard. Match history is kept in memory for as long
as the server runs and is shared by all sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.climb/host_key

Examples:
  climb serve                           # Listen on :23234 with auto-generated key
  climb serve --ssh :2222               # Listen on port 2222
  climb serve --host-key ./my_host_key  # Use specific host key
  climb serve --config ./climb.yaml --watch

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagServeWatch, "watch", false, "Reload the config file into sessions when it changes")
}

func runServe(cmd *cobra.Command, _ []string) {
	if !cmd.Flags().Changed("ssh") {
		flagSSHAddr = config.GetEnv("CLIMB_SSH_ADDR", flagSSHAddr)
	}

	climbCfg, preset, err := loadClimbConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Climb = climbCfg
	cfg.Preset = preset
	if flagServeWatch {
		cfg.ConfigPath = config.ResolvePath(flagConfig)
		if cfg.ConfigPath == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file found (using built-in defaults)")
		}
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting climb SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
