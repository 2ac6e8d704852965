package render

import (
	"strings"

	"github.com/lixenwraith/asciiquarium/constants"
)

// Canvas is a rune grid with per-cell layer ownership
// Blank glyphs never overdraw, everything outside the grid is clipped
type Canvas struct {
	cells  []rune
	owners []Layer
	width  int
	height int
	pen    Layer // layer stamped on cells written by the current pass
}

// NewCanvas creates a blank canvas; negative sizes become 0
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]rune, size)
		c.owners = make([]Layer, size)
	} else {
		c.cells = c.cells[:size]
		c.owners = c.owners[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Clear resets all cells to blank using exponential copy
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = constants.BlankGlyph
	c.owners[0] = LayerNone
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
	for filled := 1; filled < len(c.owners); filled *= 2 {
		copy(c.owners[filled:], c.owners[:filled])
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes one glyph; blanks and out-of-bounds writes are dropped
func (c *Canvas) Set(x, y int, r rune) {
	if r == constants.BlankGlyph || !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	c.cells[idx] = r
	c.owners[idx] = c.pen
}

// Get returns the glyph at (x, y), blank when out of bounds
func (c *Canvas) Get(x, y int) rune {
	if !c.inBounds(x, y) {
		return constants.BlankGlyph
	}
	return c.cells[y*c.width+x]
}

// LayerAt returns the layer that last wrote (x, y)
func (c *Canvas) LayerAt(x, y int) Layer {
	if !c.inBounds(x, y) {
		return LayerNone
	}
	return c.owners[y*c.width+x]
}

// DrawLines draws pre-split lines with their top-left cell at (x, y)
func (c *Canvas) DrawLines(x, y int, lines []string) {
	for row, line := range lines {
		py := y + row
		if py < 0 || py >= c.height {
			continue
		}
		col := 0
		for _, r := range line {
			c.Set(x+col, py, r)
			col++
		}
	}
}

// String joins rows with newlines, no trailing newline
func (c *Canvas) String() string {
	if c.width == 0 || c.height == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow((c.width + 1) * c.height)
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range c.cells[y*c.width : (y+1)*c.width] {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
