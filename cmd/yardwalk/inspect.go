package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/yardwalk/internal/config"
	"github.com/mkravets/yardwalk/internal/feedback"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the yard layout",
	Long:  `Shows the world the walk command would load: dimensions, obstacles and actors.`,
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fmt.Printf("World: %g x %g\n", cfg.World.Width, cfg.World.Height)
	fmt.Printf("Player: (%g, %g) %gx%g, %g units/s\n",
		cfg.Player.X, cfg.Player.Y, cfg.Player.Width, cfg.Player.Height, cfg.Player.Speed)
	fmt.Printf("Tuning: bump cooldown %dms, animation %dms\n",
		cfg.Tuning.BumpCooldownMS, cfg.Tuning.AnimationMS)

	fmt.Printf("\nObstacles (%d):\n", len(cfg.Obstacles))
	for i, o := range cfg.Obstacles {
		fmt.Printf("  %2d  (%g, %g) %g x %g\n", i, o.X, o.Y, o.Width, o.Height)
	}

	fmt.Printf("\nActors (%d):\n", len(cfg.Actors))

	maxIDLen := 2
	for _, a := range cfg.Actors {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}
	fmt.Printf("  %-*s  %-8s  %-16s  %-7s  %s\n", maxIDLen, "ID", "Kind", "Position", "Radius", "Enter/Exit")
	for _, a := range cfg.Actors {
		kind := a.Kind
		if kind == "" {
			kind = "npc"
		}
		exit := a.Profile.ExitAction
		if exit == "" {
			exit = "-"
		}
		fmt.Printf("  %-*s  %-8s  (%6g, %6g)  %7g  %s/%s\n",
			maxIDLen, a.ID, kind, a.X, a.Y, a.Profile.Radius, a.Profile.EnterAction, exit)
	}

	fmt.Printf("\nRegistered feedback actions: %v\n", feedback.Names())
	return nil
}
