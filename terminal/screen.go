package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asciiquarium/render"
)

// Screen draws canvases onto a tcell screen
type Screen struct {
	screen tcell.Screen
	theme  *Theme
}

// New opens the controlling terminal
func New(theme *Theme) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewWithScreen(s, theme)
}

// NewWithScreen initialises a caller-provided screen, e.g. a simulation screen
func NewWithScreen(s tcell.Screen, theme *Theme) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.HideCursor()
	s.SetStyle(theme.Base())
	s.Clear()
	return &Screen{screen: s, theme: theme}, nil
}

// Size returns the screen size in cells
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Draw paints every cell of the canvas and shows the frame
// Cells outside the canvas are cleared to the base style
func (s *Screen) Draw(c *render.Canvas, tick uint64) {
	w, h := s.screen.Size()
	base := s.theme.Base()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := c.Get(x, y)
			st := base
			if r != ' ' {
				st = s.theme.Style(c.LayerAt(x, y), x, y, tick)
			}
			s.screen.SetContent(x, y, r, nil, st)
		}
	}
	s.screen.Show()
}

// Sync redraws the whole terminal, used after a resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

// PollEvents forwards translated events until the screen is finalised
func (s *Screen) PollEvents(out chan<- Event) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if e, ok := Translate(ev); ok {
			out <- e
		}
	}
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}
