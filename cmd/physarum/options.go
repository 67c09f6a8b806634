package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"physarum/internal/config"
	"physarum/internal/logging"
	"physarum/internal/sims/physarum"
)

// resolved is the effective configuration of one command invocation.
type resolved struct {
	file *config.File
	log  *slog.Logger
}

// resolve loads the configuration file and applies the global flags on top
// of it: --set pairs, then --seed, --workers and --log-level.
func resolve(cmd *cobra.Command) (*resolved, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	preset, _ := flags.GetString("preset")
	sets, _ := flags.GetStringArray("set")

	f, err := config.Load(path, preset)
	if err != nil {
		return nil, err
	}
	kv, err := parseSets(sets)
	if err != nil {
		return nil, err
	}
	if f.Physarum, err = physarum.FromMap(f.Physarum, kv); err != nil {
		return nil, fmt.Errorf("invalid --set: %w", err)
	}
	if flags.Changed("seed") {
		f.Physarum.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("workers") {
		f.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("log-level") {
		f.Logging.Level, _ = flags.GetString("log-level")
	}
	if err := f.Physarum.Validate(); err != nil {
		return nil, err
	}
	return &resolved{
		file: f,
		log:  logging.NewLogger(f.Logging.Level, os.Stderr),
	}, nil
}

// newSim builds the simulation described by r.
func (r *resolved) newSim() (*physarum.Sim, error) {
	return physarum.New(r.file.Physarum,
		physarum.WithWorkers(r.file.Workers),
		physarum.WithLogger(r.log),
	)
}

// parseSets turns key=value pairs into a map. Later pairs win.
func parseSets(pairs []string) (map[string]string, error) {
	kv := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", p)
		}
		kv[key] = strings.TrimSpace(value)
	}
	return kv, nil
}

// parseFloats parses a comma-separated list of numbers.
func parseFloats(s string, bitSize int) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, bitSize)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}
	return out, nil
}
