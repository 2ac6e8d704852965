package telemetry

import (
	"testing"

	"github.com/lixenwraith/asciiquarium/aquarium"
	"github.com/lixenwraith/asciiquarium/asset"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(3)
	samples := []aquarium.Census{
		{Tick: 1, Normal: 2, Bubbles: 1, SchoolDue: 900},
		{Tick: 2, Normal: 2, Transit: 5, Bubbles: 4, Ships: 1, SchoolDue: 2700},
		{Tick: 3, Normal: 2, Transit: 4, Bubbles: 1, Ships: 1, Speeds: []float64{1, 2, 3}, SchoolDue: 2700},
	}

	for i, s := range samples[:2] {
		if _, ok := c.Observe(s); ok {
			t.Fatalf("Sample %d: window closed early", i)
		}
	}
	ws, ok := c.Observe(samples[2])
	if !ok {
		t.Fatal("Expected window to close on third sample")
	}

	if ws.WindowStart != 1 || ws.WindowEnd != 3 || ws.Ticks != 3 {
		t.Errorf("Unexpected window bounds: %+v", ws)
	}
	if ws.Schools != 1 || ws.ShipArrivals != 1 {
		t.Errorf("Expected 1 school and 1 ship, got %d and %d", ws.Schools, ws.ShipArrivals)
	}
	if ws.BubblesMax != 4 || ws.BubblesMean != 2 {
		t.Errorf("Expected bubbles max 4 mean 2, got %d %v", ws.BubblesMax, ws.BubblesMean)
	}
	if ws.FishMean != 5 {
		t.Errorf("Expected fish mean 5, got %v", ws.FishMean)
	}
	if ws.SpeedMean != 2 {
		t.Errorf("Expected speed mean 2, got %v", ws.SpeedMean)
	}

	// Counters reset, previous census carries over
	ws, ok = c.Observe(aquarium.Census{Tick: 4, Ships: 1, SchoolDue: 2700})
	if ok {
		t.Fatal("Expected a fresh window")
	}
	if ws.Schools != 0 {
		t.Errorf("Expected zero value on open window, got %+v", ws)
	}
}

func TestCollectorOverSimulation(t *testing.T) {
	assets := asset.Fish()
	s := aquarium.NewState(80, 24)
	aquarium.SeedFish(s, assets, 6, 5)

	c := NewCollector(1000)
	var windows []WindowStats
	for i := 0; i < 1000; i++ {
		aquarium.Step(s, assets)
		if ws, ok := c.Observe(s.Census()); ok {
			windows = append(windows, ws)
		}
	}
	if len(windows) != 1 {
		t.Fatalf("Expected 1 window, got %d", len(windows))
	}
	ws := windows[0]
	if ws.Schools != 1 {
		t.Errorf("Expected the first school by tick 1000, got %d", ws.Schools)
	}
	if ws.ShipArrivals != 1 || ws.SharkArrivals != 1 || ws.WhaleArrivals != 1 {
		t.Errorf("Expected one of each creature, got ship=%d shark=%d whale=%d",
			ws.ShipArrivals, ws.SharkArrivals, ws.WhaleArrivals)
	}
	if ws.Normal != 6 {
		t.Errorf("Expected 6 normal fish, got %d", ws.Normal)
	}
}

func TestNewCollectorClampsWindow(t *testing.T) {
	c := NewCollector(0)
	if _, ok := c.Observe(aquarium.Census{}); !ok {
		t.Error("Expected every sample to close a window of 1")
	}
}
