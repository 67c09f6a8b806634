package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"physarum/internal/logging"
	"physarum/internal/sims/physarum"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var smallWorld = []string{
	"--set", "width=24", "--set", "height=16", "--set", "population=40", "--log-level", "error",
}

func TestParseSets(t *testing.T) {
	kv, err := parseSets([]string{"width=10", " decay_factor = 2.5 ", "width=12"})
	if err != nil {
		t.Fatal(err)
	}
	if kv["width"] != "12" || kv["decay_factor"] != "2.5" {
		t.Fatalf("kv = %v", kv)
	}
	for _, bad := range []string{"width", "=3"} {
		if _, err := parseSets([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats("0.3, 0.6,,1.2", 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 0.3 || got[2] != 1.2 {
		t.Fatalf("got %v", got)
	}
	if _, err := parseFloats("0.3,x", 64); err == nil {
		t.Fatal("expected error for non-number")
	}
	if _, err := parseFloats(" , ", 64); err == nil {
		t.Fatal("expected error for empty list")
	}
}

func TestRunHeadless(t *testing.T) {
	cfg := physarum.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Population = 32, 32, 50
	sim, err := physarum.New(cfg, physarum.WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	stats, err := runHeadless(context.Background(), sim, runOptions{Ticks: 5, ReportEvery: 2}, logging.NewLogger("info", &logs))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Ticks != 5 || sim.Ticks() != 5 {
		t.Fatalf("ran %d ticks (sim %d), want 5", stats.Ticks, sim.Ticks())
	}
	if stats.Total <= 0 {
		t.Fatalf("total = %v, want trail left behind", stats.Total)
	}
	if n := strings.Count(logs.String(), "msg=progress"); n != 2 {
		t.Fatalf("progress lines = %d, want 2\n%s", n, logs.String())
	}
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	cfg := physarum.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Population = 16, 16, 10
	sim, err := physarum.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats, err := runHeadless(ctx, sim, runOptions{Ticks: 0, TPS: 10}, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Ticks != 0 {
		t.Fatalf("ran %d ticks after cancel", stats.Ticks)
	}
}

func TestRunCommandWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trail.png")
	args := append([]string{"run", "--ticks", "3", "--snapshot", path}, smallWorld...)
	if _, err := execute(t, args...); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
		t.Fatalf("snapshot bounds = %v, want 24x16", b)
	}
}

func TestRunCommandRejectsInvalidConfig(t *testing.T) {
	_, err := execute(t, "run", "--ticks", "1", "--set", "population=0", "--log-level", "error")
	if err == nil || !strings.Contains(err.Error(), "population") {
		t.Fatalf("expected population error, got %v", err)
	}
	if _, err := execute(t, "run", "--set", "nonsense=1"); err == nil {
		t.Fatal("expected unknown parameter error")
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--preset", "classic", "--seed", "9", "--format", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"preset: classic", "physarum:", "seed: 9"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := execute(t, "config", "--format", "json"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestSweepCommand(t *testing.T) {
	args := append([]string{"sweep", "--angles", "0.3,0.9", "--decays", "2,8", "--ticks", "2", "--workers", "2"}, smallWorld...)
	out, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 || !strings.HasPrefix(lines[0], "ANGLE") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestPresetsAndVersion(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range physarum.Presets() {
		if !strings.Contains(out, name) {
			t.Fatalf("presets output missing %q:\n%s", name, out)
		}
	}
	out, err = execute(t, "version")
	if err != nil || !strings.Contains(out, version) {
		t.Fatalf("version output %q, err %v", out, err)
	}
}
