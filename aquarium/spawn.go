package aquarium

import (
	"math"

	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/constants"
	"github.com/lixenwraith/asciiquarium/vmath"
)

// species describes one single-slot creature kind
type species struct {
	art      asset.Art
	epoch    uint64
	speed    float32
	cooldown uint64
	row      func(height, artHeight int) int
}

var (
	shipSpecies = species{
		art:      asset.Ship,
		epoch:    constants.ShipEpoch,
		speed:    constants.ShipSpeed,
		cooldown: constants.ShipCooldown,
		row:      func(int, int) int { return 0 },
	}
	sharkSpecies = species{
		art:      asset.Shark,
		epoch:    constants.SharkEpoch,
		speed:    constants.SharkSpeed,
		cooldown: constants.SharkCooldown,
		row: func(h, ah int) int {
			return min(h*3/5, vmath.SatSub(h, ah))
		},
	}
	whaleSpecies = species{
		art:      asset.Whale,
		epoch:    constants.WhaleEpoch,
		speed:    constants.WhaleSpeed,
		cooldown: constants.WhaleCooldown,
		row: func(h, ah int) int {
			return min(h/6+1, vmath.SatSub(h, ah))
		},
	}
)

// Salt for school hashing so it never correlates with fish jitter
const schoolSalt = 0x5C4001

// slot binds a species to its live list and schedule in the environment
type slot struct {
	kind *species
	list *[]Creature
	next *uint64
}

func (s *State) slots() [3]slot {
	return [3]slot{
		{kind: &shipSpecies, list: &s.Env.Ships, next: &s.Env.NextShipTick},
		{kind: &sharkSpecies, list: &s.Env.Sharks, next: &s.Env.NextSharkTick},
		{kind: &whaleSpecies, list: &s.Env.Whales, next: &s.Env.NextWhaleTick},
	}
}

// spawn places a creature just outside the edge it enters from
// Direction follows the parity of tick/epoch
func (s *State) spawn(sl slot) {
	if len(*sl.list) > 0 || s.Tick < *sl.next || s.empty() {
		return
	}
	sp := sl.kind
	c := Creature{Y: sp.row(s.Height, sp.art.Height)}
	if (s.Tick/sp.epoch)%2 == 0 {
		c.X = -float32(sp.art.Width)
		c.VX = sp.speed
	} else {
		c.X = float32(s.Width)
		c.VX = -sp.speed
	}
	*sl.list = append(*sl.list, c)
}

// move advances creatures and retires those fully past the edge they head for
func (s *State) move(sl slot) {
	kept := (*sl.list)[:0]
	for _, c := range *sl.list {
		c.X += c.VX * constants.TimeStep
		if exitedAhead(c.X, c.VX, sl.kind.art.Width, s.Width) {
			*sl.next = s.Tick + sl.kind.cooldown
			continue
		}
		kept = append(kept, c)
	}
	*sl.list = kept
}

func exitedAhead(x, vx float32, width, gridWidth int) bool {
	if vx >= 0 {
		return x >= float32(gridWidth)
	}
	return x+float32(width) <= 0
}

// spawnSchool inserts a batch of Transit fish sharing one heading and speed
// Followers trail the leader SchoolSpacing cells apart with the tail at the entry edge
// Spacing shrinks on narrow grids; every fish keeps a distinct offset and at least
// one column on the grid
func (s *State) spawnSchool(assets asset.Table) {
	if s.Tick < s.Env.NextSchoolTick || len(assets) == 0 || s.empty() {
		return
	}

	count := constants.SchoolMinCount + int(s.Tick%constants.SchoolCountSpan)
	h := vmath.Hash(s.Tick, schoolSalt, 0)
	speed := constants.SchoolMinSpeed + (vmath.Unit(h)+0.5)*(constants.SchoolMaxSpeed-constants.SchoolMinSpeed)
	rightward := (s.Tick/constants.SchoolEpoch)%2 == 0
	baseRow := int((h >> 8) % uint64(s.Height))
	first := int(s.Tick % uint64(len(assets)))

	// Narrowest member bounds how far past the left edge the tail may sit
	minW := math.MaxInt
	for k := 0; k < count; k++ {
		fw, _, _ := assets.Footprint((first + k) % len(assets))
		minW = min(minW, fw)
	}
	lo := float32(1 - minW)
	hi := float32(s.Width - 1)
	spacing := float32(constants.SchoolSpacing)
	if count > 1 {
		spacing = min(spacing, (hi-lo)/float32(count-1))
	}

	for k := 0; k < count; k++ {
		idx := (first + k) % len(assets)
		_, fh, _ := assets.Footprint(idx)
		back := float32(count-1-k) * spacing

		f := Fish{ArtIndex: idx}
		if rightward {
			f.Position.X = lo + back
			f.Velocity.X = speed
		} else {
			f.Position.X = hi - back
			f.Velocity.X = -speed
		}
		row := baseRow + k%3 - 1
		f.Position.Y = float32(vmath.Clamp(row, 0, vmath.SatSub(s.Height, fh)))

		s.AddFish(f, BehaviorTransit)
	}

	s.Env.NextSchoolTick = s.Tick + constants.SchoolInterval
}
