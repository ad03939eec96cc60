package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skydive/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the skydive SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game and menu; the SSH user name is the
player name. Scores are stored per-server (all users share the same
leaderboard). Sound is never played for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skydive/host_key

Examples:
  skydive serve                           # Listen on :23234 with auto-generated key
  skydive serve --ssh :2222               # Listen on port 2222
  skydive serve --host-key ./my_host_key  # Use specific host key
  skydive serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.GameID = gameID
	srvCfg.Seed = flagSeed
	srvCfg.Game = cfg

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		return err
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", srvCfg.Address)
	return server.ListenAndServe()
}
