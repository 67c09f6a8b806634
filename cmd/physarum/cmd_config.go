package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"physarum/internal/config"
	"physarum/internal/sims/physarum"
)

func newConfigCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration a run would use after applying the preset,
the config file, environment overrides and flags.

Examples:
  physarum config --preset classic > classic.toml
  physarum config --config run.toml --set seed=7 --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Format(format)
			if f != config.FormatTOML && f != config.FormatYAML {
				return fmt.Errorf("unsupported --format %q (want toml or yaml)", format)
			}
			r, err := resolve(cmd)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), f, r.file)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(config.FormatTOML), "Output format: toml or yaml")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tAGENTS\tDIFFUSION")
			for _, name := range physarum.Presets() {
				c, _ := physarum.Preset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%d\t%v\n", name, c.Width, c.Height, c.Population, c.DiffusionEnabled())
			}
			w.Flush()
		},
	}
}
