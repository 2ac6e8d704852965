package aquarium

import (
	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/constants"
	"github.com/lixenwraith/asciiquarium/vmath"
)

// Hash salts for per-axis jitter and per-side bounce decisions
const (
	saltJitterX uint64 = iota + 1
	saltJitterY
	saltLeft
	saltRight
	saltTop
	saltBottom
)

// Step advances the scene by one tick
// Order: seaweed sync, behavior sync, species spawn, school spawn, fish, bubble emission,
// bubbles, species movement, phase and tick advance
func Step(s *State, assets asset.Table) {
	if s == nil {
		return
	}

	s.syncSeaweed()
	s.syncBehaviors()

	slots := s.slots()
	for _, sl := range slots {
		s.spawn(sl)
	}
	s.spawnSchool(assets)

	s.moveFish(assets)
	s.emitBubbles(assets)
	s.moveBubbles()

	for _, sl := range slots {
		s.move(sl)
	}

	if s.Tick%constants.WaterPhaseDivisor == 0 {
		s.Env.WaterPhase++
	}
	s.Tick++
}

// syncBehaviors pads with Normal or truncates so Behaviors matches Fish
func (s *State) syncBehaviors() {
	n := len(s.Fish)
	switch {
	case len(s.Behaviors) > n:
		s.Behaviors = s.Behaviors[:n]
	case len(s.Behaviors) < n:
		for len(s.Behaviors) < n {
			s.Behaviors = append(s.Behaviors, BehaviorNormal)
		}
	}
}

// offGrid reports a box fully outside either horizontal edge
func offGrid(x, w, gridW float32) bool {
	return x+w <= 0 || x >= gridW
}

func jitter(tick uint64, artIndex int, salt uint64) float32 {
	return vmath.Unit(vmath.Hash(tick, uint64(artIndex), salt)) * constants.JitterAmplitude
}

// moveFish integrates every fish, culls exited Transit fish and bounces Normal ones
// Filters in place so Fish and Behaviors shrink together
func (s *State) moveFish(assets asset.Table) {
	gw, gh := float32(s.Width), float32(s.Height)
	scale := constants.TimeStep * constants.SpeedMultiplier

	keptFish := s.Fish[:0]
	keptBehaviors := s.Behaviors[:0]
	for i := range s.Fish {
		f := s.Fish[i]
		b := s.Behaviors[i]
		fw, fh, _ := assets.Footprint(f.ArtIndex)
		w, h := float32(fw), float32(fh)

		if b == BehaviorTransit && offGrid(f.Position.X, w, gw) {
			continue
		}

		f.Position.X += f.Velocity.X*scale + jitter(s.Tick, f.ArtIndex, saltJitterX)
		f.Position.Y += f.Velocity.Y*scale + jitter(s.Tick, f.ArtIndex, saltJitterY)

		if b == BehaviorTransit {
			if offGrid(f.Position.X, w, gw) {
				continue
			}
		} else {
			s.bounce(&f, w, h, gw, gh)
		}

		keptFish = append(keptFish, f)
		keptBehaviors = append(keptBehaviors, b)
	}
	s.Fish = keptFish
	s.Behaviors = keptBehaviors
}

// bounce clamps a Normal fish inside the grid and reflects velocity per edge
// A y bounce only varies vx when no x bounce happened this tick
func (s *State) bounce(f *Fish, w, h, gw, gh float32) {
	bouncedX := false
	if f.Position.X < 0 {
		f.Position.X = 0
		f.Velocity.X = vmath.Abs32(f.Velocity.X)
		s.maybeFlip(&f.Velocity.Y, f.ArtIndex, saltLeft)
		bouncedX = true
	} else if f.Position.X+w > gw {
		f.Position.X = max(gw-w, 0)
		f.Velocity.X = -vmath.Abs32(f.Velocity.X)
		s.maybeFlip(&f.Velocity.Y, f.ArtIndex, saltRight)
		bouncedX = true
	}

	if f.Position.Y < 0 {
		f.Position.Y = 0
		f.Velocity.Y = vmath.Abs32(f.Velocity.Y)
		if !bouncedX {
			s.maybeFlip(&f.Velocity.X, f.ArtIndex, saltTop)
		}
	} else if f.Position.Y+h > gh {
		f.Position.Y = max(gh-h, 0)
		f.Velocity.Y = -vmath.Abs32(f.Velocity.Y)
		if !bouncedX {
			s.maybeFlip(&f.Velocity.X, f.ArtIndex, saltBottom)
		}
	}
}

func (s *State) maybeFlip(v *float32, artIndex int, side uint64) {
	if vmath.Percent(vmath.Hash(s.Tick, uint64(artIndex), side), constants.BounceFlipPercent) {
		*v = -*v
	}
}

// emitBubbles releases one bubble per fish per period, staggered by list position
func (s *State) emitBubbles(assets asset.Table) {
	for i, f := range s.Fish {
		if (s.Tick+uint64(i)*constants.BubbleStagger)%constants.BubblePeriod != 0 {
			continue
		}
		fw, fh, _ := assets.Footprint(f.ArtIndex)

		mouth := Vec2{Y: f.Position.Y + float32(fh/2)}
		if f.Velocity.X >= 0 {
			mouth.X = f.Position.X + float32(fw)
		} else {
			mouth.X = f.Position.X - 1
		}
		s.Bubbles = append(s.Bubbles, Bubble{
			Position: mouth,
			Velocity: Vec2{Y: -constants.BubbleRise},
		})
	}
}

// moveBubbles keeps a bubble while it is at or below row 0
func (s *State) moveBubbles() {
	kept := s.Bubbles[:0]
	for _, b := range s.Bubbles {
		b.Position.X += b.Velocity.X * constants.TimeStep
		b.Position.Y += b.Velocity.Y * constants.TimeStep
		if b.Position.Y >= 0 {
			kept = append(kept, b)
		}
	}
	s.Bubbles = kept
}
