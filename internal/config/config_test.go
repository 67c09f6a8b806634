package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"physarum/internal/sims/physarum"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWithoutFile(t *testing.T) {
	f, err := Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if f.Preset != physarum.PresetDefault {
		t.Fatalf("preset = %q", f.Preset)
	}
	if f.Physarum != physarum.DefaultConfig() {
		t.Fatalf("physarum config = %+v", f.Physarum)
	}
	if f.Logging.Level != "info" {
		t.Fatalf("log level = %q", f.Logging.Level)
	}
}

func TestLoadTOMLAppliesPresetThenOverrides(t *testing.T) {
	path := writeFile(t, "run.toml", `
preset = "classic"
workers = 3

[logging]
level = "debug"

[physarum]
population = 10
decay_factor = 4.5
placement = "center"
`)
	f, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	classic, _ := physarum.Preset(physarum.PresetClassic)
	if f.Preset != physarum.PresetClassic || f.Workers != 3 || f.Logging.Level != "debug" {
		t.Fatalf("top-level keys not applied: %+v", f)
	}
	if f.Physarum.Population != 10 || f.Physarum.DecayFactor != 4.5 || f.Physarum.Placement != physarum.PlacementCenter {
		t.Fatalf("overrides not applied: %+v", f.Physarum)
	}
	if f.Physarum.SenseAngle != classic.SenseAngle || f.Physarum.Width != classic.Width {
		t.Fatalf("preset base lost: %+v", f.Physarum)
	}
}

func TestLoadYAMLFlagPresetWins(t *testing.T) {
	path := writeFile(t, "run.yaml", `
preset: classic
physarum:
  sensor_size: 5
  sense_distance: 4
`)
	f, err := Load(path, physarum.PresetNetwork)
	if err != nil {
		t.Fatal(err)
	}
	network, _ := physarum.Preset(physarum.PresetNetwork)
	if f.Preset != physarum.PresetNetwork {
		t.Fatalf("preset = %q, want network", f.Preset)
	}
	if f.Physarum.SensorSize != 5 || f.Physarum.SenseDistance != 4 {
		t.Fatalf("overrides not applied: %+v", f.Physarum)
	}
	if f.Physarum.Population != network.Population {
		t.Fatalf("population = %d, want network base %d", f.Physarum.Population, network.Population)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	for name, content := range map[string]string{
		"bad.toml": "[physarum]\nsense_distanse = 3\n",
		"bad.yml":  "physarum:\n  sense_distanse: 3\n",
	} {
		path := writeFile(t, name, content)
		if _, err := Load(path, ""); err == nil {
			t.Fatalf("%s: expected unknown key error", name)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(writeFile(t, "run.json", "{}"), ""); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load("", "nope"); err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Fatalf("expected unknown preset error, got %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PHYSARUM_LOG_LEVEL", "trace")
	t.Setenv("PHYSARUM_WORKERS", "2")
	f, err := Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if f.Logging.Level != "trace" || f.Workers != 2 {
		t.Fatalf("env not applied: %+v", f)
	}

	t.Setenv("PHYSARUM_WORKERS", "many")
	if _, err := Load("", ""); err == nil {
		t.Fatal("expected error for invalid PHYSARUM_WORKERS")
	}
}

func TestEncodeCanBeLoadedBack(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		src := Default()
		src.Preset = physarum.PresetNetwork
		src.Physarum, _ = physarum.Preset(physarum.PresetNetwork)
		src.Physarum.DecayFactor = 2.5

		var buf bytes.Buffer
		if err := Encode(&buf, format, src); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		path := writeFile(t, "out."+string(format), buf.String())
		got, err := Load(path, "")
		if err != nil {
			t.Fatalf("%s: %v\n%s", format, err, buf.String())
		}
		if got.Physarum != src.Physarum || got.Preset != src.Preset {
			t.Fatalf("%s: loaded %+v, want %+v", format, got.Physarum, src.Physarum)
		}
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{"a.toml": FormatTOML, "b.YAML": FormatYAML, "c.yml": FormatYAML} {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Fatalf("FormatOf(%q) = %q, %v", path, got, err)
		}
	}
}
