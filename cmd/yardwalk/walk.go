package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkravets/yardwalk/internal/config"
	"github.com/mkravets/yardwalk/internal/core"
	"github.com/mkravets/yardwalk/internal/engine"
	"github.com/mkravets/yardwalk/internal/feedback"
	"github.com/mkravets/yardwalk/internal/platform/tui"
)

var flagLogPath string

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Start a yard session",
	Long: `Start walking around the yard.

Controls:
  Arrows/WASD - Walk
  P/Esc       - Pause
  Q/Ctrl+C    - Quit

Examples:
  yardwalk walk
  yardwalk walk --config ./my-yard.yaml
  yardwalk walk --log ./session.log`,
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().StringVar(&flagLogPath, "log", "", "Write the session log to this file")
}

func runWalk(cmd *cobra.Command, args []string) error {
	if flagFPS < 1 {
		return fmt.Errorf("fps %d must be at least 1", flagFPS)
	}

	logger, closeLog, err := sessionLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Terminal size; fall back to the defaults when not a terminal.
	rt := core.DefaultRuntimeConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	diag := engine.NewDiagnostics(logger)
	bus := engine.NewBus(diag)
	sink := feedback.NewSink(logger)
	sink.Attach(bus)

	world, err := engine.NewWorld(cfg.Spec(), bus, diag)
	if err != nil {
		return err
	}
	loop := engine.NewLoop(world, nil, diag)

	logger.Info("session starting",
		"world", fmt.Sprintf("%gx%g", world.Bounds().W, world.Bounds().H),
		"obstacles", len(world.Obstacles()),
		"actors", len(world.Actors()),
		"fps", rt.TickRate,
	)

	if err := tui.Run(loop, sink, rt, logger); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	if snap := diag.Snapshot(); !snap.Clean() {
		logger.Warn("session ended with diagnostics",
			"actor_failures", len(snap.ActorTickFailures),
			"sink_panics", snap.SinkPanics,
			"invariant_clamps", snap.InvariantClamps,
			"move_errors", snap.MoveErrors,
		)
	}
	return nil
}

// sessionLogger builds the session logger. Without a log file the logger is
// discarded: the simulation shares the terminal with the UI.
func sessionLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "yardwalk",
	})
	return logger, func() { f.Close() }, nil
}
