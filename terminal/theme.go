package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/asciiquarium/config"
	"github.com/lixenwraith/asciiquarium/render"
)

// Shimmer field scale: columns, rows and ticks per noise unit
const (
	shimmerScaleX = 0.12
	shimmerScaleY = 0.6
	shimmerScaleT = 0.015
)

// Theme maps scene layers to styles
type Theme struct {
	base    tcell.Style
	layers  map[render.Layer]tcell.Style
	water   tcell.Color
	shimmer float64
	noise   opensimplex.Noise
}

// NewTheme parses hex colours from cfg; seed fixes the shimmer field
func NewTheme(cfg config.ThemeConfig, seed int64) (*Theme, error) {
	fg, err := parseColor("foreground", cfg.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor("background", cfg.Background)
	if err != nil {
		return nil, err
	}
	base := tcell.StyleDefault.Foreground(fg).Background(bg)

	t := &Theme{
		base:    base,
		layers:  make(map[render.Layer]tcell.Style),
		shimmer: cfg.Shimmer,
		noise:   opensimplex.NewNormalized(seed),
	}

	layerColors := []struct {
		layer render.Layer
		name  string
		hex   string
	}{
		{render.LayerWater, "water", cfg.Water},
		{render.LayerShip, "creature", cfg.Creature},
		{render.LayerCastle, "castle", cfg.Castle},
		{render.LayerSeaweed, "seaweed", cfg.Seaweed},
		{render.LayerCreature, "creature", cfg.Creature},
		{render.LayerFish, "fish", cfg.Fish},
		{render.LayerBubble, "bubble", cfg.Bubble},
	}
	for _, lc := range layerColors {
		c, err := parseColor(lc.name, lc.hex)
		if err != nil {
			return nil, err
		}
		t.layers[lc.layer] = base.Foreground(c)
		if lc.layer == render.LayerWater {
			t.water = c
		}
	}
	return t, nil
}

func parseColor(name, hex string) (tcell.Color, error) {
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault || !c.Valid() {
		return tcell.ColorDefault, fmt.Errorf("theme %s: unrecognised colour %q", name, hex)
	}
	return c.TrueColor(), nil
}

// Base is the style of blank cells
func (t *Theme) Base() tcell.Style {
	return t.base
}

// Style returns the style for a cell owned by layer
// Water cells brighten and darken with a slowly drifting noise field
func (t *Theme) Style(layer render.Layer, x, y int, tick uint64) tcell.Style {
	st, ok := t.layers[layer]
	if !ok {
		return t.base
	}
	if layer != render.LayerWater || t.shimmer <= 0 {
		return st
	}
	n := t.noise.Eval3(float64(x)*shimmerScaleX, float64(y)*shimmerScaleY, float64(tick)*shimmerScaleT)
	return st.Foreground(scaleColor(t.water, 1+t.shimmer*(2*n-1)))
}

func scaleColor(c tcell.Color, f float64) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(scale8(r, f), scale8(g, f), scale8(b, f))
}

func scale8(v int32, f float64) int32 {
	return int32(min(max(float64(v)*f, 0), 255))
}
