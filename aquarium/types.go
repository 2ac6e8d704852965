// Package aquarium is the simulation core: entity model, seeded placement and the per-tick step.
// All functions are total: bad art indices and zero-sized grids degrade, they never panic.
package aquarium

// Vec2 is a sub-cell coordinate or velocity
type Vec2 struct {
	X, Y float32
}

// Size is a grid size in cells
type Size struct {
	W, H int
}

// Behavior selects a fish lifecycle
type Behavior uint8

const (
	// BehaviorNormal bounces at walls and persists
	BehaviorNormal Behavior = iota
	// BehaviorTransit crosses once and is removed off-grid
	BehaviorTransit
)

func (b Behavior) String() string {
	switch b {
	case BehaviorNormal:
		return "normal"
	case BehaviorTransit:
		return "transit"
	default:
		return "unknown"
	}
}

// Fish is one swimming instance, referencing its art by table index
type Fish struct {
	ArtIndex int
	Position Vec2 // top-left, cells
	Velocity Vec2 // cells per unit time
}

// Bubble rises from a fish mouth until it crosses the top row
type Bubble struct {
	Position Vec2
	Velocity Vec2
}

// Seaweed is one stalk anchored to the floor
type Seaweed struct {
	X         int
	Height    int
	SwayPhase uint8
}

// Creature is a single-slot species entity: ship, shark or whale
type Creature struct {
	X  float32
	Y  int
	VX float32
}

// Environment holds scenery, single-slot creatures and spawn schedules
type Environment struct {
	WaterPhase    uint8
	Seaweed       []Seaweed
	SeaweedGrid   Size // grid the current seaweed layout was generated for
	CastleVisible bool

	Ships  []Creature
	Sharks []Creature
	Whales []Creature

	NextShipTick   uint64
	NextSharkTick  uint64
	NextWhaleTick  uint64
	NextSchoolTick uint64
}

// State is the caller-owned aggregate mutated by Step and read by the compositor
// Behaviors is the companion of Fish and is resynced to its length on every Step
type State struct {
	Width, Height int

	Fish      []Fish
	Behaviors []Behavior
	Bubbles   []Bubble

	Env  Environment
	Tick uint64
}
