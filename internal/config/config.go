// Package config loads physarum run files. TOML and YAML are both accepted;
// the format is chosen by file extension.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"physarum/internal/sims/physarum"
)

// File is the on-disk shape of a run configuration.
type File struct {
	// Preset names the base configuration the physarum table is applied on.
	Preset string `toml:"preset" yaml:"preset"`

	// Workers bounds the goroutines used per pass; 0 means GOMAXPROCS.
	Workers int `toml:"workers" yaml:"workers"`

	Logging LoggingConfig `toml:"logging" yaml:"logging"`

	Physarum physarum.Config `toml:"physarum" yaml:"physarum"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level is one of "error", "warn", "info" (default), "debug", "trace".
	Level string `toml:"level" yaml:"level"`
}

// Format identifies a serialization format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{
		Preset:   physarum.PresetDefault,
		Logging:  LoggingConfig{Level: "info"},
		Physarum: physarum.DefaultConfig(),
	}
}

// FormatOf infers the format from a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
}

// Load builds a configuration. The base comes from preset when non-empty,
// else from the file's own preset key, else the default preset. The file's
// physarum table then overrides individual fields. An empty path skips the
// file. Environment overrides are applied last.
func Load(path, preset string) (*File, error) {
	f := Default()
	var data []byte
	var format Format
	if path != "" {
		var err error
		if format, err = FormatOf(path); err != nil {
			return nil, err
		}
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		var head struct {
			Preset string `toml:"preset" yaml:"preset"`
		}
		if err := decode(format, data, &head, false); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if preset == "" {
			preset = head.Preset
		}
	}
	if preset == "" {
		preset = physarum.PresetDefault
	}
	base, ok := physarum.Preset(preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(physarum.Presets(), ", "))
	}
	f.Preset = preset
	f.Physarum = base

	if data != nil {
		if err := decode(format, data, f, true); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		f.Preset = preset
	}
	if err := f.applyEnv(); err != nil {
		return nil, err
	}
	return f, nil
}

func decode(format Format, data []byte, v any, strict bool) error {
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(v)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); strict && len(undecoded) > 0 {
			return fmt.Errorf("unknown keys: %v", undecoded)
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
	return fmt.Errorf("unsupported config format %q", format)
}

// applyEnv applies PHYSARUM_LOG_LEVEL and PHYSARUM_WORKERS.
func (f *File) applyEnv() error {
	if v := os.Getenv("PHYSARUM_LOG_LEVEL"); v != "" {
		f.Logging.Level = v
	}
	if v := os.Getenv("PHYSARUM_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PHYSARUM_WORKERS %q: %w", v, err)
		}
		f.Workers = n
	}
	return nil
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, format Format, f *File) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported config format %q", format)
}
