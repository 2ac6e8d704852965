package aquarium

import (
	"math"
	"testing"

	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/constants"
)

// quietState builds a grid with every spawn schedule pushed out of reach
func quietState(w, h int) *State {
	s := &State{}
	s.Resize(w, h)
	s.Env.NextShipTick = math.MaxUint64
	s.Env.NextSharkTick = math.MaxUint64
	s.Env.NextWhaleTick = math.MaxUint64
	s.Env.NextSchoolTick = math.MaxUint64
	return s
}

func mkAssets() asset.Table {
	return asset.FromTexts("<>")
}

func TestBounceAtRightEdge(t *testing.T) {
	assets := mkAssets()
	s := &State{Width: 10, Height: 3}
	s.Fish = []Fish{{ArtIndex: 0, Position: Vec2{X: 8.5, Y: 1.0}, Velocity: Vec2{X: 1.0}}}

	Step(s, assets)

	f := s.Fish[0]
	if f.Position.X != 8.0 {
		t.Errorf("Expected x to clamp to 8.0, got %f", f.Position.X)
	}
	if f.Velocity.X >= 0 {
		t.Errorf("Expected x velocity to invert to negative, got %f", f.Velocity.X)
	}
}

func TestReflectionLaw(t *testing.T) {
	assets := mkAssets() // 2x1
	tests := []struct {
		name  string
		pos   Vec2
		vel   Vec2
		check func(v Vec2) bool
	}{
		{"right", Vec2{X: 7.9, Y: 1}, Vec2{X: 1}, func(v Vec2) bool { return v.X < 0 }},
		{"left", Vec2{X: 0.1, Y: 1}, Vec2{X: -1}, func(v Vec2) bool { return v.X > 0 }},
		{"top", Vec2{X: 4, Y: 0.1}, Vec2{Y: -1}, func(v Vec2) bool { return v.Y > 0 }},
		{"bottom", Vec2{X: 4, Y: 1.9}, Vec2{Y: 1}, func(v Vec2) bool { return v.Y < 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := quietState(10, 3)
			s.Fish = []Fish{{Position: tt.pos, Velocity: tt.vel}}
			Step(s, assets)
			if !tt.check(s.Fish[0].Velocity) {
				t.Errorf("Velocity not reflected: %+v", s.Fish[0].Velocity)
			}
		})
	}
}

func TestBehaviorListLockStep(t *testing.T) {
	assets := asset.Fish()

	s := quietState(40, 12)
	s.Fish = make([]Fish, 3)
	s.Behaviors = []Behavior{BehaviorTransit}
	Step(s, assets)
	if len(s.Fish) != len(s.Behaviors) {
		t.Fatalf("Expected equal lengths, got fish=%d behaviors=%d", len(s.Fish), len(s.Behaviors))
	}
	for i := 1; i < len(s.Behaviors); i++ {
		if s.Behaviors[i] != BehaviorNormal {
			t.Errorf("Padded behavior %d: expected normal, got %v", i, s.Behaviors[i])
		}
	}

	s = quietState(40, 12)
	s.Fish = make([]Fish, 2)
	s.Behaviors = make([]Behavior, 5)
	Step(s, assets)
	if len(s.Behaviors) != 2 {
		t.Errorf("Expected truncation to 2, got %d", len(s.Behaviors))
	}

	// Full lifecycle with schools arriving and leaving
	s = NewState(60, 20)
	SeedFish(s, assets, 6, 42)
	s.Behaviors = s.Behaviors[:2]
	for i := 0; i < 4000; i++ {
		Step(s, assets)
		if len(s.Fish) != len(s.Behaviors) {
			t.Fatalf("Tick %d: fish=%d behaviors=%d", s.Tick, len(s.Fish), len(s.Behaviors))
		}
	}
}

func TestNormalFishContainment(t *testing.T) {
	assets := asset.Fish()
	s := NewState(80, 24)
	SeedFish(s, assets, 12, 7)

	for i := 0; i < 3000; i++ {
		Step(s, assets)
		for j, f := range s.Fish {
			if s.Behaviors[j] != BehaviorNormal {
				continue
			}
			w, h, _ := assets.Footprint(f.ArtIndex)
			if f.Position.X < 0 || f.Position.X+float32(w) > float32(s.Width) {
				t.Fatalf("Tick %d fish %d x out of bounds: %f (w=%d)", s.Tick, j, f.Position.X, w)
			}
			if f.Position.Y < 0 || f.Position.Y+float32(h) > float32(s.Height) {
				t.Fatalf("Tick %d fish %d y out of bounds: %f (h=%d)", s.Tick, j, f.Position.Y, h)
			}
		}
	}
}

func TestTransitFishRemoval(t *testing.T) {
	assets := mkAssets()
	s := quietState(10, 3)
	s.Fish = []Fish{
		{Position: Vec2{X: -5, Y: 1}, Velocity: Vec2{X: 1}},  // fully left, heading in
		{Position: Vec2{X: 10, Y: 1}, Velocity: Vec2{X: -1}}, // fully right, heading in
		{Position: Vec2{X: 4, Y: 1}, Velocity: Vec2{X: 1}},   // on grid
	}
	s.Behaviors = []Behavior{BehaviorTransit, BehaviorTransit, BehaviorTransit}

	Step(s, assets)

	if len(s.Fish) != 1 {
		t.Fatalf("Expected 1 surviving fish, got %d", len(s.Fish))
	}
	if s.Fish[0].Position.X < 4 {
		t.Errorf("Expected the on-grid fish to survive, got x=%f", s.Fish[0].Position.X)
	}
}

func TestTransitFishLeavesAfterCrossing(t *testing.T) {
	assets := mkAssets()
	s := quietState(10, 3)
	s.Fish = []Fish{{Position: Vec2{X: 9.5, Y: 1}, Velocity: Vec2{X: 2}}}
	s.Behaviors = []Behavior{BehaviorTransit}

	Step(s, assets)
	if len(s.Fish) != 0 {
		t.Errorf("Expected transit fish to despawn past the right edge, got %+v", s.Fish)
	}
}

func TestBubbleCulling(t *testing.T) {
	s := quietState(10, 5)
	s.Bubbles = []Bubble{
		{Position: Vec2{X: 1, Y: -0.01}},
		{Position: Vec2{X: 2, Y: 0.0}},
	}
	Step(s, nil)

	if len(s.Bubbles) != 1 {
		t.Fatalf("Expected 1 bubble, got %d", len(s.Bubbles))
	}
	if s.Bubbles[0].Position.X != 2 {
		t.Errorf("Expected the bubble at y=0 to remain, got %+v", s.Bubbles[0])
	}
}

func TestBubbleEmission(t *testing.T) {
	assets := asset.FromTexts("abc\ndef\nghi") // 3x3
	s := quietState(40, 20)
	s.Fish = []Fish{
		{Position: Vec2{X: 10, Y: 10}, Velocity: Vec2{X: 0.1}},
		{Position: Vec2{X: 20, Y: 10}, Velocity: Vec2{X: -0.1}},
	}

	// Tick 0: fish 0 emits, fish 1 is staggered
	Step(s, assets)
	if len(s.Bubbles) != 1 {
		t.Fatalf("Expected 1 bubble at tick 0, got %d", len(s.Bubbles))
	}
	b := s.Bubbles[0]
	if b.Position.X < 13 || b.Position.X > 13.2 {
		t.Errorf("Expected bubble at leading edge x~13, got %f", b.Position.X)
	}
	if b.Velocity.Y >= 0 {
		t.Errorf("Expected rising bubble, got vy=%f", b.Velocity.Y)
	}

	// Fish 1 emits when (tick + 7) % 45 == 0
	s.Tick = constants.BubblePeriod - constants.BubbleStagger
	s.Bubbles = nil
	Step(s, assets)
	if len(s.Bubbles) != 1 {
		t.Fatalf("Expected 1 bubble from fish 1, got %d", len(s.Bubbles))
	}
	if s.Bubbles[0].Position.X > s.Fish[1].Position.X {
		t.Errorf("Expected leftward fish to emit from its left side, bubble x=%f fish x=%f",
			s.Bubbles[0].Position.X, s.Fish[1].Position.X)
	}
}

func TestBadArtIndexFallsBackToUnitFootprint(t *testing.T) {
	s := quietState(5, 5)
	s.Fish = []Fish{{ArtIndex: 99, Position: Vec2{X: 4.9, Y: 4.9}, Velocity: Vec2{X: 1, Y: 1}}}
	Step(s, mkAssets())

	f := s.Fish[0]
	if f.Position.X != 4 || f.Position.Y != 4 {
		t.Errorf("Expected 1x1 clamp to (4,4), got (%f,%f)", f.Position.X, f.Position.Y)
	}
}

func TestZeroGridDoesNotPanic(t *testing.T) {
	assets := asset.Fish()
	for _, size := range []Size{{0, 10}, {10, 0}, {0, 0}, {-3, 4}} {
		s := NewState(size.W, size.H)
		s.Env.NextShipTick, s.Env.NextSchoolTick = 0, 0
		s.Fish = []Fish{{ArtIndex: 1, Velocity: Vec2{X: 1}}, {ArtIndex: -4}}
		for i := 0; i < 50; i++ {
			Step(s, assets)
		}
		if len(s.Env.Seaweed) != 0 {
			t.Errorf("Size %v: expected no seaweed, got %d", size, len(s.Env.Seaweed))
		}
		if len(s.Env.Ships) != 0 {
			t.Errorf("Size %v: expected no ship spawn on empty grid", size)
		}
	}
	Step(nil, assets)
}

func TestPhaseAndTickAdvance(t *testing.T) {
	s := quietState(10, 10)
	for i := 0; i < 8; i++ {
		Step(s, nil)
	}
	if s.Tick != 8 {
		t.Errorf("Expected tick 8, got %d", s.Tick)
	}
	// Increments at ticks 0 and 4
	if s.Env.WaterPhase != 2 {
		t.Errorf("Expected water phase 2, got %d", s.Env.WaterPhase)
	}

	s.Tick = math.MaxUint64 - 3 // divisible by 4
	s.Env.WaterPhase = 255
	Step(s, nil)
	if s.Env.WaterPhase != 0 {
		t.Errorf("Expected water phase to wrap to 0, got %d", s.Env.WaterPhase)
	}
	s.Tick = math.MaxUint64
	Step(s, nil)
	if s.Tick != 0 {
		t.Errorf("Expected tick to wrap to 0, got %d", s.Tick)
	}
}

func TestSeaweedFollowsGridSize(t *testing.T) {
	s := quietState(60, 20)
	Step(s, nil)
	if len(s.Env.Seaweed) != 4 {
		t.Fatalf("Expected 4 stalks for width 60, got %d", len(s.Env.Seaweed))
	}

	// Same count target, different height still regenerates
	s.Resize(60, 30)
	Step(s, nil)
	if s.Env.SeaweedGrid != (Size{W: 60, H: 30}) {
		t.Errorf("Expected layout regenerated for 60x30, got %v", s.Env.SeaweedGrid)
	}
	want := GenerateSeaweed(60, 30)
	for i := range want {
		if s.Env.Seaweed[i] != want[i] {
			t.Errorf("Stalk %d: expected %+v, got %+v", i, want[i], s.Env.Seaweed[i])
		}
	}

	s.Resize(150, 30)
	Step(s, nil)
	if len(s.Env.Seaweed) != 10 {
		t.Errorf("Expected 10 stalks for width 150, got %d", len(s.Env.Seaweed))
	}
}
