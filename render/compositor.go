package render

import (
	"github.com/lixenwraith/asciiquarium/aquarium"
	"github.com/lixenwraith/asciiquarium/asset"
)

// Frame is the read-only input of one composition, passed by value
type Frame struct {
	State  *aquarium.State
	Assets asset.Table
}

// Pass draws one layer of the scene
type Pass interface {
	Draw(f Frame, c *Canvas)
}

// PassFunc adapts a plain function to Pass
type PassFunc func(f Frame, c *Canvas)

func (p PassFunc) Draw(f Frame, c *Canvas) { p(f, c) }

type passEntry struct {
	pass  Pass
	layer Layer
}

// Compositor runs registered passes in layer order over a reused canvas
// Not safe for concurrent use; Render builds a fresh one per call
type Compositor struct {
	canvas *Canvas
	passes []passEntry
}

// NewCompositor creates a compositor with no passes
func NewCompositor() *Compositor {
	return &Compositor{
		canvas: NewCanvas(0, 0),
		passes: make([]passEntry, 0, 8),
	}
}

// NewDefaultCompositor registers the standard scene passes
func NewDefaultCompositor() *Compositor {
	c := NewCompositor()
	c.Register(PassFunc(drawWater), LayerWater)
	c.Register(PassFunc(drawShips), LayerShip)
	c.Register(PassFunc(drawCastle), LayerCastle)
	c.Register(PassFunc(drawSeaweed), LayerSeaweed)
	c.Register(PassFunc(drawWhales), LayerCreature)
	c.Register(PassFunc(drawSharks), LayerCreature)
	c.Register(&FishPass{}, LayerFish)
	c.Register(PassFunc(drawBubbles), LayerBubble)
	return c
}

// Register adds a pass at the given layer; equal layers draw in registration order
func (c *Compositor) Register(p Pass, layer Layer) {
	pos := len(c.passes)
	for i, e := range c.passes {
		if layer < e.layer {
			pos = i
			break
		}
	}

	c.passes = append(c.passes, passEntry{})
	copy(c.passes[pos+1:], c.passes[pos:])
	c.passes[pos] = passEntry{pass: p, layer: layer}
}

// Compose draws the state and returns the canvas, valid until the next call
// A nil state or a zero-sized grid yields an empty canvas
func (c *Compositor) Compose(s *aquarium.State, assets asset.Table) *Canvas {
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		c.canvas.Resize(0, 0)
		return c.canvas
	}
	if c.canvas.Width() != s.Width || c.canvas.Height() != s.Height {
		c.canvas.Resize(s.Width, s.Height)
	} else {
		c.canvas.Clear()
	}

	f := Frame{State: s, Assets: assets}
	for _, e := range c.passes {
		c.canvas.pen = e.layer
		e.pass.Draw(f, c.canvas)
	}
	c.canvas.pen = LayerNone
	return c.canvas
}

// Render composites the state into newline-joined rows
func Render(s *aquarium.State, assets asset.Table) string {
	return NewDefaultCompositor().Compose(s, assets).String()
}
