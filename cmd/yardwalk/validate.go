package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/yardwalk/internal/config"
	"github.com/mkravets/yardwalk/internal/engine"
	"github.com/mkravets/yardwalk/internal/feedback"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a world config file",
	Long: `Loads a world config file and runs it through the same validation as
the walk command, including world construction, without starting a session.
Unknown feedback actions are reported as warnings; the session would run but
those reactions would be dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// The config validates in isolation; constructing the world catches what
	// only the combination reveals, like a player spawning inside a fence.
	if _, err := engine.NewWorld(cfg.Spec(), nil, nil); err != nil {
		return fmt.Errorf("world construction failed: %w", err)
	}

	warnings := 0
	for _, a := range cfg.Actors {
		for _, action := range []string{a.Profile.EnterAction, a.Profile.ExitAction} {
			if action == "" {
				continue
			}
			if _, ok := feedback.Lookup(action); !ok {
				fmt.Printf("warning: actor %q references unknown action %q\n", a.ID, action)
				warnings++
			}
		}
	}

	if warnings > 0 {
		fmt.Printf("%s: valid, %d warning(s)\n", path, warnings)
	} else {
		fmt.Printf("%s: valid\n", path)
	}
	return nil
}
