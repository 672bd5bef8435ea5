// yardwalk is a terminal walkabout: steer a tenant around a backyard where
// the dogs bark when you get close and the mailbox hushes the ambient noise.
//
// Usage:
//
//	yardwalk walk              - Start a session in the default yard
//	yardwalk inspect           - Print the yard layout
//	yardwalk validate <path>   - Check a world config file
//
// Global flags:
//
//	--fps <rate>      - Frame rate (default: 60)
//	--config <path>   - Path to a custom world config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yardwalk",
	Short: "Yardwalk - wander a backyard in your terminal",
	Long: `Yardwalk is a terminal toy: walk around a yard, bump into fences,
get barked at and find the one spot where everything goes quiet.

Available commands:
  walk      - Start a session
  inspect   - Print the yard layout
  validate  - Check a world config file

Examples:
  yardwalk walk
  yardwalk walk --config ./my-yard.yaml --fps 30
  yardwalk inspect
  yardwalk validate ./my-yard.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")

	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
}
