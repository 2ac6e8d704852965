package render

import (
	"github.com/lixenwraith/asciiquarium/aquarium"
	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/constants"
	"github.com/lixenwraith/asciiquarium/vmath"
)

// sprite caches both facings of right-facing scenery art
type sprite struct {
	art   asset.Art
	right []string
	left  []string
}

func newSprite(a asset.Art) sprite {
	return sprite{
		art:   a,
		right: asset.Lines(a.Text),
		left:  asset.Lines(Mirror(a.Text)),
	}
}

func (s sprite) lines(vx float32) []string {
	if vx < 0 {
		return s.left
	}
	return s.right
}

var (
	shipSprite   = newSprite(asset.Ship)
	sharkSprite  = newSprite(asset.Shark)
	whaleSprite  = newSprite(asset.Whale)
	castleLines  = asset.Lines(asset.Castle.Text)
	spoutFrames  = splitTable(asset.WhaleSpout)
	waterPattern = toRunes(asset.Waterlines)
)

func splitTable(t asset.Table) [][]string {
	out := make([][]string, len(t))
	for i, a := range t {
		out[i] = asset.Lines(a.Text)
	}
	return out
}

func toRunes(patterns []string) [][]rune {
	out := make([][]rune, len(patterns))
	for i, p := range patterns {
		out[i] = []rune(p)
	}
	return out
}

// bob is the 0/1 row offset shared by ships, whales and sharks
func bob(tick uint64, x float32) int {
	parity := uint64(vmath.Floor(x) & 1)
	return int(((tick / constants.BobDivisor) + parity) & 1)
}

// waveOffset is the triangular wave 0,+1,+2,+1 in plateaus of WaveStep columns
func waveOffset(phase uint8, col int) int {
	step := ((int(phase) + col) % constants.WavePeriod) / constants.WaveStep
	if step == 3 {
		return 1
	}
	return step
}

func drawWater(f Frame, c *Canvas) {
	s := f.State
	phase := s.Env.WaterPhase
	for i, pattern := range waterPattern {
		n := len(pattern)
		if n == 0 {
			continue
		}
		shift := int(phase) % n
		for col := 0; col < c.Width(); col++ {
			y := constants.WaterlineTop + i + waveOffset(phase, col)
			c.Set(col, y, pattern[(col+shift)%n])
		}
	}
}

func drawShips(f Frame, c *Canvas) {
	drawCreatures(f.State.Env.Ships, shipSprite, f.State.Tick, c)
}

func drawSharks(f Frame, c *Canvas) {
	drawCreatures(f.State.Env.Sharks, sharkSprite, f.State.Tick, c)
}

func drawCreatures(list []aquarium.Creature, sp sprite, tick uint64, c *Canvas) {
	for _, cr := range list {
		c.DrawLines(vmath.Floor(cr.X), cr.Y+bob(tick, cr.X), sp.lines(cr.VX))
	}
}

// drawWhales draws each whale with the current spout frame above its blowhole
func drawWhales(f Frame, c *Canvas) {
	s := f.State
	frame := spoutFrames[int((s.Tick/constants.SpoutDivisor)%uint64(len(spoutFrames)))]

	for _, w := range s.Env.Whales {
		x := vmath.Floor(w.X)
		y := w.Y + bob(s.Tick, w.X)
		c.DrawLines(x, y, whaleSprite.lines(w.VX))

		head := asset.WhaleSpoutHead
		if w.VX < 0 {
			head = whaleSprite.art.Width - 1 - head
		}
		c.DrawLines(x+head-asset.WhaleSpoutCenter, y-len(frame), frame)
	}
}

func drawCastle(f Frame, c *Canvas) {
	if !f.State.Env.CastleVisible {
		return
	}
	x := vmath.SatSub(c.Width(), asset.Castle.Width)
	y := vmath.SatSub(c.Height(), asset.Castle.Height)
	c.DrawLines(x, y, castleLines)
}

// drawSeaweed grows each stalk up from the floor, alternating bracket glyphs
func drawSeaweed(f Frame, c *Canvas) {
	s := f.State
	for _, sw := range s.Env.Seaweed {
		sway := (int(s.Env.WaterPhase)+int(sw.SwayPhase))/constants.SwayDivisor%3 - 1
		x := sw.X + sway
		dense := (sw.X+int(sw.SwayPhase))%constants.SeaweedDenseEvery == 0
		top := c.Height() - sw.Height

		for k := 0; k < sw.Height; k++ {
			glyph, other := rune(constants.WeedLeft), rune(constants.WeedRight)
			if k%2 == 1 {
				glyph, other = other, glyph
			}
			c.Set(x, top+k, glyph)
			if dense {
				c.Set(x+1, top+k, other)
			}
		}
	}
}
