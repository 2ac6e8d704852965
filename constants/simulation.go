package constants

// Integration
const (
	// TimeStep is the logical time advanced per tick
	TimeStep float32 = 1.0 / 3.0

	// SpeedMultiplier scales fish velocity on top of TimeStep
	SpeedMultiplier float32 = 1.5

	// JitterAmplitude is the peak-to-peak positional wiggle applied to fish each tick
	JitterAmplitude float32 = 0.04

	// BounceFlipPercent is the chance a wall bounce also flips the orthogonal axis
	BounceFlipPercent = 10
)

// Bubbles
const (
	BubblePeriod  = 45
	BubbleStagger = 7
)

// BubbleRise is the upward speed of a fresh bubble
const BubbleRise float32 = 0.6

// Seaweed layout
const (
	SeaweedColumnsPer   = 15
	SeaweedRetries      = 4
	SeaweedMinHeight    = 3
	SeaweedMaxHeight    = 6
	SeaweedMaxSwayPhase = 31
)

// SeaweedSeed is mixed with the grid size to seed stalk placement
const SeaweedSeed uint64 = 0x9E3779B97F4A7C15

// Water animation
const (
	// WaterPhaseDivisor advances the water phase once every N ticks
	WaterPhaseDivisor = 4
)

// Species cooldowns in ticks, counted from the tick an entity leaves the grid
const (
	ShipCooldown  = 600
	SharkCooldown = 900
	WhaleCooldown = 1200
)

// Species direction epochs: direction flips with the parity of tick/epoch
const (
	ShipEpoch   = 700
	SharkEpoch  = 500
	WhaleEpoch  = 900
	SchoolEpoch = 1200
)

// Species speeds in cells per unit time
const (
	ShipSpeed  float32 = 1.0
	SharkSpeed float32 = 1.5
	WhaleSpeed float32 = 0.75
)

// First-spawn thresholds for a fresh scene
const (
	FirstShipTick   = 200
	FirstSharkTick  = 450
	FirstWhaleTick  = 700
	FirstSchoolTick = 900
)

// Fish schools
const (
	SchoolMinCount  = 5
	SchoolCountSpan = 6 // count = SchoolMinCount + tick % SchoolCountSpan
	SchoolInterval  = 1800
	SchoolSpacing   = 2
)

// School speed bounds
const (
	SchoolMinSpeed float32 = 0.35
	SchoolMaxSpeed float32 = 0.55
)

// Scene seeding bounds, matching the historical demo
const (
	SeedMaxVX      float32 = 0.5
	SeedMaxVY      float32 = 0.25
	SeedMinVX      float32 = 0.05
	SeedMinVY      float32 = 0.02
	SeedFallbackVX float32 = 0.08
	SeedFallbackVY float32 = 0.03
)
