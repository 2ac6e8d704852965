package render

import (
	"testing"

	"github.com/lixenwraith/asciiquarium/aquarium"
)

func glyphPass(r rune) PassFunc {
	return func(f Frame, c *Canvas) { c.Set(0, 0, r) }
}

func TestCompositorLayerOrder(t *testing.T) {
	c := NewCompositor()
	c.Register(glyphPass('B'), LayerBubble)
	c.Register(glyphPass('W'), LayerWater)
	c.Register(glyphPass('F'), LayerFish)

	canvas := c.Compose(&aquarium.State{Width: 1, Height: 1}, nil)
	if got := canvas.Get(0, 0); got != 'B' {
		t.Errorf("Expected bubble layer on top, got %q", got)
	}
	if canvas.LayerAt(0, 0) != LayerBubble {
		t.Errorf("Expected owner bubble, got %v", canvas.LayerAt(0, 0))
	}
}

func TestCompositorStableWithinLayer(t *testing.T) {
	c := NewCompositor()
	c.Register(glyphPass('1'), LayerCreature)
	c.Register(glyphPass('2'), LayerCreature)

	if got := c.Compose(&aquarium.State{Width: 1, Height: 1}, nil).Get(0, 0); got != '2' {
		t.Errorf("Expected later registration to draw last, got %q", got)
	}
}

func TestCompositorInterleavedRegistration(t *testing.T) {
	var order []string
	record := func(name string) PassFunc {
		return func(f Frame, c *Canvas) { order = append(order, name) }
	}

	c := NewCompositor()
	c.Register(record("whale"), LayerCreature)
	c.Register(record("bubble"), LayerBubble)
	c.Register(record("water"), LayerWater)
	c.Register(record("shark"), LayerCreature)
	c.Register(record("fish"), LayerFish)
	c.Compose(&aquarium.State{Width: 1, Height: 1}, nil)

	want := []string{"water", "whale", "shark", "fish", "bubble"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d passes, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Pass %d: expected %s, got %s (order %v)", i, want[i], order[i], order)
		}
	}
}

func TestCompositorResizeBetweenFrames(t *testing.T) {
	c := NewCompositor()
	c.Register(glyphPass('x'), LayerFish)

	if out := c.Compose(&aquarium.State{Width: 3, Height: 1}, nil).String(); out != "x  " {
		t.Errorf("Expected %q, got %q", "x  ", out)
	}
	if out := c.Compose(&aquarium.State{Width: 1, Height: 2}, nil).String(); out != "x\n " {
		t.Errorf("Expected %q, got %q", "x\n ", out)
	}
	if out := c.Compose(&aquarium.State{}, nil).String(); out != "" {
		t.Errorf("Expected empty, got %q", out)
	}
}

func TestCanvasSetSkipsBlankAndClips(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(1, 1, 'a')
	c.Set(1, 1, ' ')
	c.Set(-1, 0, 'z')
	c.Set(3, 0, 'z')
	c.Set(0, 2, 'z')

	if got := c.Get(1, 1); got != 'a' {
		t.Errorf("Expected blank not to overdraw, got %q", got)
	}
	if out := c.String(); out != "   \n a " {
		t.Errorf("Expected %q, got %q", "   \n a ", out)
	}
	if got := c.Get(9, 9); got != ' ' {
		t.Errorf("Expected blank out of bounds, got %q", got)
	}
}

func TestCanvasDrawLinesClipsNegative(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawLines(-1, -1, []string{"abc", "déf"})
	if out := c.String(); out != "éf \n   " {
		t.Errorf("Expected %q, got %q", "éf \n   ", out)
	}
}

func TestNewCanvasNegativeSize(t *testing.T) {
	c := NewCanvas(-2, 5)
	if c.Width() != 0 || c.String() != "" {
		t.Errorf("Expected empty canvas, got width %d", c.Width())
	}
}

func TestLayerString(t *testing.T) {
	if LayerFish.String() != "fish" || Layer(99).String() != "unknown" {
		t.Errorf("Unexpected layer names: %s %s", LayerFish, Layer(99))
	}
}
