package aquarium

import (
	"math"

	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/constants"
	"github.com/lixenwraith/asciiquarium/vmath"
)

// NewState creates an empty scene with the castle shown and staggered first spawns
func NewState(width, height int) *State {
	s := &State{
		Env: Environment{
			CastleVisible:  true,
			NextShipTick:   constants.FirstShipTick,
			NextSharkTick:  constants.FirstSharkTick,
			NextWhaleTick:  constants.FirstWhaleTick,
			NextSchoolTick: constants.FirstSchoolTick,
		},
	}
	s.Resize(width, height)
	return s
}

// Resize changes the grid; seaweed follows on the next Step
func (s *State) Resize(width, height int) {
	s.Width = max(width, 0)
	s.Height = max(height, 0)
}

func (s *State) empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// AddFish appends a fish with its behavior, keeping both lists aligned
func (s *State) AddFish(f Fish, b Behavior) {
	s.syncBehaviors()
	s.Fish = append(s.Fish, f)
	s.Behaviors = append(s.Behaviors, b)
}

// ClearFish drops every fish and bubble
func (s *State) ClearFish() {
	s.Fish = s.Fish[:0]
	s.Behaviors = s.Behaviors[:0]
	s.Bubbles = s.Bubbles[:0]
}

// SeedFish adds n Normal fish with random art, position and velocity from seed
// Velocities below the minimum magnitude are pushed out so no fish idles
func SeedFish(s *State, assets asset.Table, n int, seed uint64) {
	if len(assets) == 0 || n <= 0 {
		return
	}
	rng := vmath.NewFastRand(seed)
	maxX := vmath.SatSub(s.Width, 1)
	maxY := vmath.SatSub(s.Height, 1)

	for i := 0; i < n; i++ {
		idx := rng.Intn(len(assets))
		x := float32(rng.Intn(maxX + 1))
		y := float32(rng.Intn(maxY + 1))

		vx := rng.Float32Range(-constants.SeedMaxVX, constants.SeedMaxVX)
		vy := rng.Float32Range(-constants.SeedMaxVY, constants.SeedMaxVY)
		vx = awayFromZero(vx, constants.SeedMinVX, constants.SeedFallbackVX)
		vy = awayFromZero(vy, constants.SeedMinVY, constants.SeedFallbackVY)

		s.AddFish(Fish{
			ArtIndex: idx,
			Position: Vec2{X: x, Y: y},
			Velocity: Vec2{X: vx, Y: vy},
		}, BehaviorNormal)
	}
}

func awayFromZero(v, minAbs, fallback float32) float32 {
	if vmath.Abs32(v) >= minAbs {
		return v
	}
	if v < 0 {
		return -fallback
	}
	return fallback
}

// Census is a point-in-time population count
type Census struct {
	Tick      uint64
	Normal    int
	Transit   int
	Bubbles   int
	Seaweed   int
	Ships     int
	Sharks    int
	Whales    int
	Speeds    []float64 // per-fish speed, cells per unit time
	SchoolDue uint64
}

// Census counts entities without mutating state
func (s *State) Census() Census {
	c := Census{
		Tick:      s.Tick,
		Bubbles:   len(s.Bubbles),
		Seaweed:   len(s.Env.Seaweed),
		Ships:     len(s.Env.Ships),
		Sharks:    len(s.Env.Sharks),
		Whales:    len(s.Env.Whales),
		Speeds:    make([]float64, 0, len(s.Fish)),
		SchoolDue: s.Env.NextSchoolTick,
	}
	for i, f := range s.Fish {
		if i < len(s.Behaviors) && s.Behaviors[i] == BehaviorTransit {
			c.Transit++
		} else {
			c.Normal++
		}
		vx, vy := float64(f.Velocity.X), float64(f.Velocity.Y)
		c.Speeds = append(c.Speeds, math.Hypot(vx, vy))
	}
	return c
}
