package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/config"
	"github.com/lixenwraith/asciiquarium/telemetry"
)

func TestRunHeadlessPrintsFrame(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 40, 12

	var buf bytes.Buffer
	if err := runHeadless(&buf, cfg, asset.Fish(), 50); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}

	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(rows) != 12 {
		t.Fatalf("Expected 12 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 40 {
			t.Errorf("Row %d: expected 40 cells, got %d", i, n)
		}
	}
}

func TestRunHeadlessDeterministic(t *testing.T) {
	cfg := config.Default()
	var a, b bytes.Buffer
	if err := runHeadless(&a, cfg, asset.Fish(), 200); err != nil {
		t.Fatal(err)
	}
	if err := runHeadless(&b, cfg, asset.Fish(), 200); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("Expected identical frames for identical config")
	}
}

func TestRunHeadlessTelemetry(t *testing.T) {
	cfg := config.Default()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Dir = t.TempDir()
	cfg.Telemetry.WindowTicks = 100

	var buf bytes.Buffer
	if err := runHeadless(&buf, cfg, asset.Fish(), 350); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}

	records, err := telemetry.ReadAll(filepath.Join(cfg.Telemetry.Dir, telemetry.FileName))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 windows, got %d", len(records))
	}
	if records[0].Ticks != 100 {
		t.Errorf("Expected 100 ticks per window, got %d", records[0].Ticks)
	}
}

func TestSessionTracksCensus(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Fish = 5
	ss, err := newSession(cfg, asset.Fish(), 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	if ss.last.Normal != 5 {
		t.Errorf("Expected 5 normal fish in the initial census, got %d", ss.last.Normal)
	}
	if !ss.state.Env.CastleVisible {
		t.Error("Expected castle visible from defaults")
	}

	ss.tick()
	if ss.last.Tick != 1 {
		t.Errorf("Expected census at tick 1, got %d", ss.last.Tick)
	}
	if err := ss.close(); err != nil {
		t.Errorf("Expected nil-recorder close to succeed, got %v", err)
	}
}

func TestLoadAssets(t *testing.T) {
	base := asset.Fish()

	got, err := loadAssets("")
	if err != nil || len(got) != len(base) {
		t.Fatalf("Expected built-ins only, got %d arts, err %v", len(got), err)
	}

	empty := t.TempDir()
	got, err = loadAssets(empty)
	if err != nil || len(got) != len(base) {
		t.Errorf("Expected fallback for an artless directory, got %d arts, err %v", len(got), err)
	}

	dir := t.TempDir()
	pack := "><>\n---\n<><\n"
	if err := os.WriteFile(filepath.Join(dir, "extra.txt"), []byte(pack), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = loadAssets(dir)
	if err != nil {
		t.Fatalf("loadAssets: %v", err)
	}
	if len(got) != len(base)+2 {
		t.Fatalf("Expected %d arts, got %d", len(base)+2, len(got))
	}
	if got[len(base)].Text != "><>" {
		t.Errorf("Expected pack art appended after built-ins, got %q", got[len(base)].Text)
	}
}

func TestApplyFlag(t *testing.T) {
	cfg := config.Default()
	if err := flag.Set("width", "33"); err != nil {
		t.Fatal(err)
	}
	if err := flag.Set("seed", "9"); err != nil {
		t.Fatal(err)
	}
	defer flag.Set("width", "0")
	defer flag.Set("seed", "0")

	applyFlag(cfg, "width")
	applyFlag(cfg, "seed")
	applyFlag(cfg, "unknown")

	if cfg.Grid.Width != 33 || cfg.Grid.FitTerminal {
		t.Errorf("Expected fixed width 33, got %d fit=%v", cfg.Grid.Width, cfg.Grid.FitTerminal)
	}
	if cfg.Simulation.Seed != 9 {
		t.Errorf("Expected seed 9, got %d", cfg.Simulation.Seed)
	}
	if cfg.Grid.Height != config.Default().Grid.Height {
		t.Errorf("Expected height untouched, got %d", cfg.Grid.Height)
	}
}
