package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/asciiquarium/aquarium"
	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/audio"
	"github.com/lixenwraith/asciiquarium/config"
	"github.com/lixenwraith/asciiquarium/content"
	"github.com/lixenwraith/asciiquarium/render"
	"github.com/lixenwraith/asciiquarium/telemetry"
)

// session owns the scene and its per-tick side channels
type session struct {
	state  *aquarium.State
	assets asset.Table
	last   aquarium.Census

	collector *telemetry.Collector
	recorder  *telemetry.Recorder
	player    *audio.Player
}

// loadAssets appends art packs from dir to the built-in fish
// An empty or artless directory falls back to the built-ins
func loadAssets(dir string) (asset.Table, error) {
	base := asset.Fish()
	if dir == "" {
		return base, nil
	}

	m := content.NewManager(dir)
	if err := m.Discover(); err != nil {
		return nil, fmt.Errorf("discovering art packs: %w", err)
	}
	extra, err := m.Load()
	if errors.Is(err, content.ErrNoArt) {
		slog.Warn("no art packs loaded", "dir", dir)
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading art packs: %w", err)
	}
	slog.Info("art packs loaded", "files", len(m.Files()), "blocks", len(extra))
	return asset.Concat(base, extra), nil
}

// newSession seeds a scene of the given size from cfg
func newSession(cfg *config.Config, assets asset.Table, width, height int) (*session, error) {
	s := aquarium.NewState(width, height)
	s.Env.CastleVisible = cfg.Simulation.Castle
	aquarium.SeedFish(s, assets, cfg.Simulation.Fish, cfg.Simulation.Seed)

	ss := &session{state: s, assets: assets, last: s.Census()}

	if cfg.Telemetry.Enabled {
		rec, err := telemetry.NewRecorder(cfg.Telemetry.Dir)
		if err != nil {
			return nil, err
		}
		ss.recorder = rec
		ss.collector = telemetry.NewCollector(cfg.Telemetry.WindowTicks)
	}

	slog.Info("scene seeded", "width", width, "height", height, "fish", len(s.Fish), "arts", len(assets))
	return ss, nil
}

// tick steps the scene and feeds the census diff to audio and telemetry
func (ss *session) tick() {
	aquarium.Step(ss.state, ss.assets)
	cur := ss.state.Census()

	if ss.player != nil {
		ss.player.PlayAll(audio.CuesBetween(ss.last, cur))
	}
	if ss.collector != nil {
		if stats, ok := ss.collector.Observe(cur); ok {
			if err := ss.recorder.Write(stats); err != nil {
				slog.Error("telemetry write failed", "error", err)
			}
		}
	}
	ss.last = cur
}

func (ss *session) close() error {
	return ss.recorder.Close()
}

// runHeadless steps ticks times without a terminal and prints the final frame
func runHeadless(w io.Writer, cfg *config.Config, assets asset.Table, ticks int) error {
	ss, err := newSession(cfg, assets, cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return err
	}
	for i := 0; i < ticks; i++ {
		ss.tick()
	}
	if err := ss.close(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, render.Render(ss.state, ss.assets)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
