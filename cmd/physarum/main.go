package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "physarum",
		Short: "Slime-mould trail simulation",
		Long: `physarum runs a population of agents that sense, steer and deposit
onto a toroidal trail field which decays and diffuses every tick.

The base configuration comes from a preset, optionally overridden by a
TOML or YAML file and by --set key=value pairs.`,
		SilenceUsage: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Configuration file (.toml, .yaml or .yml)")
	pf.String("preset", "", "Base preset (default, classic, network)")
	pf.StringArray("set", nil, "Override a parameter, e.g. --set sense_angle=0.8 (repeatable)")
	pf.Int64("seed", 0, "Seed override (0 keeps the configured seed)")
	pf.Int("workers", 0, "Goroutines per pass (0 uses the configured value or GOMAXPROCS)")
	pf.String("log-level", "", "Log level: error, warn, info, debug, trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newViewCmd(),
		newSweepCmd(),
		newConfigCmd(),
		newPresetsCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "physarum version %s\n", version)
		},
	}
}
