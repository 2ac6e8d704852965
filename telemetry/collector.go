package telemetry

import "github.com/lixenwraith/asciiquarium/aquarium"

// Collector folds per-tick census samples into fixed-size windows
type Collector struct {
	window int
	prev   *aquarium.Census

	ticks     int
	start     uint64
	fishSum   int
	bubbleSum int
	bubbleMax int
	schools   int
	ships     int
	sharks    int
	whales    int
}

// NewCollector creates a collector emitting one WindowStats per window ticks
// A non-positive window is treated as 1
func NewCollector(window int) *Collector {
	return &Collector{window: max(window, 1)}
}

// Observe records one census and returns the completed window, if any
func (c *Collector) Observe(cur aquarium.Census) (WindowStats, bool) {
	if c.ticks == 0 {
		c.start = cur.Tick
	}
	c.ticks++

	fish := cur.Normal + cur.Transit
	c.fishSum += fish
	c.bubbleSum += cur.Bubbles
	c.bubbleMax = max(c.bubbleMax, cur.Bubbles)

	if p := c.prev; p != nil {
		if cur.SchoolDue > p.SchoolDue {
			c.schools++
		}
		c.ships += arrivals(p.Ships, cur.Ships)
		c.sharks += arrivals(p.Sharks, cur.Sharks)
		c.whales += arrivals(p.Whales, cur.Whales)
	}
	snapshot := cur
	c.prev = &snapshot

	if c.ticks < c.window {
		return WindowStats{}, false
	}
	return c.flush(cur), true
}

func arrivals(before, after int) int {
	if after > before {
		return after - before
	}
	return 0
}

func (c *Collector) flush(end aquarium.Census) WindowStats {
	n := float64(c.ticks)
	ws := WindowStats{
		WindowStart:   c.start,
		WindowEnd:     end.Tick,
		Ticks:         c.ticks,
		Normal:        end.Normal,
		Transit:       end.Transit,
		Seaweed:       end.Seaweed,
		FishMean:      float64(c.fishSum) / n,
		BubblesMean:   float64(c.bubbleSum) / n,
		BubblesMax:    c.bubbleMax,
		Schools:       c.schools,
		ShipArrivals:  c.ships,
		SharkArrivals: c.sharks,
		WhaleArrivals: c.whales,
	}
	ws.SpeedMean, ws.SpeedStd, ws.SpeedP50, ws.SpeedP90 = ComputeSpeedStats(end.Speeds)

	prev := c.prev
	*c = Collector{window: c.window, prev: prev}
	return ws
}
