package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/audio"
	"github.com/lixenwraith/asciiquarium/config"
	"github.com/lixenwraith/asciiquarium/render"
	"github.com/lixenwraith/asciiquarium/terminal"
)

var (
	configFlag    = flag.String("config", "", "YAML file overlaying the built-in defaults")
	widthFlag     = flag.Int("width", 0, "Grid width in cells")
	heightFlag    = flag.Int("height", 0, "Grid height in cells")
	fishFlag      = flag.Int("fish", 0, "Fish seeded at start")
	seedFlag      = flag.Uint64("seed", 0, "Seed for initial fish placement")
	frameFlag     = flag.Int("frame", 0, "Milliseconds per tick")
	assetsFlag    = flag.String("assets", "", "Directory of extra art packs")
	debugFlag     = flag.Bool("debug", false, "Write debug logs")
	soundFlag     = flag.Bool("sound", false, "Play arrival cues")
	telemetryFlag = flag.Bool("telemetry", false, "Record census windows to CSV")
	headlessFlag  = flag.Bool("headless", false, "Run without a terminal and print the final frame")
	ticksFlag     = flag.Int("ticks", 300, "Ticks to simulate in headless mode")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) { applyFlag(cfg, f.Name) })
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Bad flags: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	assets, err := loadAssets(cfg.Assets.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load art: %v\n", err)
		os.Exit(1)
	}

	if *headlessFlag {
		err = runHeadless(os.Stdout, cfg, assets, *ticksFlag)
	} else {
		err = run(cfg, assets)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "asciiquarium: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlag copies one explicitly set flag onto cfg
func applyFlag(cfg *config.Config, name string) {
	switch name {
	case "width":
		cfg.Grid.Width = *widthFlag
		cfg.Grid.FitTerminal = false
	case "height":
		cfg.Grid.Height = *heightFlag
		cfg.Grid.FitTerminal = false
	case "fish":
		cfg.Simulation.Fish = *fishFlag
	case "seed":
		cfg.Simulation.Seed = *seedFlag
	case "frame":
		cfg.Simulation.FrameMS = *frameFlag
	case "assets":
		cfg.Assets.Dir = *assetsFlag
	case "debug":
		cfg.Log.Debug = *debugFlag
	case "sound":
		cfg.Sound.Enabled = *soundFlag
	case "telemetry":
		cfg.Telemetry.Enabled = *telemetryFlag
	}
}

// run drives the scene on the terminal until quit
func run(cfg *config.Config, assets asset.Table) error {
	theme, err := terminal.NewTheme(cfg.Theme, int64(cfg.Simulation.Seed))
	if err != nil {
		return err
	}
	scr, err := terminal.New(theme)
	if err != nil {
		return err
	}
	defer scr.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			scr.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mASCIIQUARIUM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	width, height := cfg.Grid.Width, cfg.Grid.Height
	if cfg.Grid.FitTerminal {
		width, height = scr.Size()
	}
	ss, err := newSession(cfg, assets, width, height)
	if err != nil {
		return err
	}
	defer func() {
		if err := ss.close(); err != nil {
			slog.Error("closing telemetry", "error", err)
		}
	}()

	if cfg.Sound.Enabled {
		player := audio.NewPlayer(cfg.Sound.Volume)
		if err := player.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			ss.player = player
			defer player.Cleanup()
		}
	}

	events := make(chan terminal.Event, 16)
	// Input polling uses a raw goroutine as it talks to the terminal directly
	go func() {
		defer func() {
			if r := recover(); r != nil {
				scr.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		scr.PollEvents(events)
	}()

	compositor := render.NewDefaultCompositor()
	ticker := time.NewTicker(time.Duration(cfg.Simulation.FrameMS) * time.Millisecond)
	defer ticker.Stop()

	paused := false
	for {
		select {
		case ev := <-events:
			switch ev.Action {
			case terminal.ActionQuit:
				return nil
			case terminal.ActionPause:
				paused = !paused
				slog.Debug("pause toggled", "paused", paused, "tick", ss.state.Tick)
			case terminal.ActionResize:
				if cfg.Grid.FitTerminal {
					ss.state.Resize(ev.Width, ev.Height)
				}
				scr.Sync()
			}

		case <-ticker.C:
			if !paused {
				ss.tick()
			}
			scr.Draw(compositor.Compose(ss.state, ss.assets), ss.state.Tick)
		}
	}
}
