package render

import (
	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/constants"
	"github.com/lixenwraith/asciiquarium/vmath"
)

// FishPass draws every fish facing its direction of travel
// Facing defaults to FacesRight when nil
type FishPass struct {
	Facing Facing
}

func (p *FishPass) Draw(f Frame, c *Canvas) {
	facing := p.Facing
	if facing == nil {
		facing = FacesRight
	}

	for _, fish := range f.State.Fish {
		art, ok := f.Assets.Get(fish.ArtIndex)
		if !ok {
			continue
		}
		text := art.Text
		if facing(text) != (fish.Velocity.X >= 0) {
			text = Mirror(text)
		}
		c.DrawLines(vmath.Floor(fish.Position.X), vmath.Floor(fish.Position.Y), asset.Lines(text))
	}
}

func drawBubbles(f Frame, c *Canvas) {
	for _, b := range f.State.Bubbles {
		c.Set(vmath.Floor(b.Position.X), vmath.Floor(b.Position.Y), constants.BubbleGlyph)
	}
}
