package aquarium

import (
	"sort"

	"github.com/lixenwraith/asciiquarium/constants"
	"github.com/lixenwraith/asciiquarium/vmath"
)

// SeaweedTarget is the stalk count a grid of the given size should hold
func SeaweedTarget(width, height int) int {
	if width < 3 || height <= 0 {
		return 0
	}
	return width / constants.SeaweedColumnsPer
}

// GenerateSeaweed lays out stalks deterministically from the grid size alone
func GenerateSeaweed(width, height int) []Seaweed {
	n := SeaweedTarget(width, height)
	if n == 0 {
		return nil
	}

	seed := constants.SeaweedSeed ^ uint64(width) ^ (uint64(height) << 32)
	rng := vmath.NewLCG(seed)

	used := make(map[int]bool, n)
	stalks := make([]Seaweed, 0, n)
	for i := 0; i < n; i++ {
		x := rng.Range(1, width-2)
		// Duplicates survive past the retry budget
		for retry := 0; retry < constants.SeaweedRetries && used[x]; retry++ {
			x = rng.Range(1, width-2)
		}
		used[x] = true

		stalks = append(stalks, Seaweed{
			X:         x,
			Height:    rng.Range(constants.SeaweedMinHeight, constants.SeaweedMaxHeight),
			SwayPhase: uint8(rng.Range(0, constants.SeaweedMaxSwayPhase)),
		})
	}

	sort.SliceStable(stalks, func(i, j int) bool { return stalks[i].X < stalks[j].X })
	return stalks
}

// syncSeaweed regenerates the layout when the stalk count or grid size drifted
func (s *State) syncSeaweed() {
	grid := Size{W: s.Width, H: s.Height}
	if len(s.Env.Seaweed) == SeaweedTarget(s.Width, s.Height) && s.Env.SeaweedGrid == grid {
		return
	}
	s.Env.Seaweed = GenerateSeaweed(s.Width, s.Height)
	s.Env.SeaweedGrid = grid
}
