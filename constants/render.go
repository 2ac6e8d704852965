package constants

// Waterline geometry
const (
	// WaterlineTop is the row of the first waterline pattern
	WaterlineTop = 5

	// WavePeriod is the length of the triangular column wave
	WavePeriod = 24

	// WaveStep is the width of each plateau of the wave
	WaveStep = 6
)

// Creature animation
const (
	// BobDivisor slows the 0/1 vertical bob of surface and deep creatures
	BobDivisor = 8

	// SpoutDivisor is the number of ticks each whale spout frame is held
	SpoutDivisor = 12
)

// Seaweed animation
const (
	// SwayDivisor slows the 3-phase seaweed sway relative to the water phase
	SwayDivisor = 4

	// SeaweedDenseEvery marks one in N stalks for a second column
	SeaweedDenseEvery = 3
)

// Glyphs
const (
	BlankGlyph  = ' '
	BubbleGlyph = '.'
	WeedLeft    = '('
	WeedRight   = ')'
)
