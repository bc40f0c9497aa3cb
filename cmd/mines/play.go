package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/mines"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

func runGame(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q, run 'mines backends' to list them", flagBackend)
	}
	backend, err := registry.Create(flagBackend, core.RuntimeConfig{
		Keys: cfg.Keys.KeyMap(),
	})
	if err != nil {
		return err
	}
	logger.Info("starting", "backend", flagBackend, "seed", flagSeed)

	session := mines.NewSession(backend, cfg,
		mines.WithLogger(logger),
		mines.WithSeed(flagSeed),
	)
	result, err := session.Run()
	if err != nil {
		logger.Error("session failed", "err", err)
		return err
	}

	if e, ok := backend.(interface{ Err() error }); ok && e.Err() != nil {
		logger.Warn("backend stopped with error", "err", e.Err())
	}
	logger.Info("final state", "snapshot", fmt.Sprintf("%+v", result.Final))

	fmt.Fprintln(cmd.OutOrStdout(), result.Message())
	return nil
}

// newLogger opens the debug log. Without a path the logger discards output,
// since the terminal belongs to the game.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "mines",
	})
	return logger, func() { f.Close() }, nil
}
