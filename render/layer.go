package render

// Layer determines draw order. Lower values draw first and are overdrawn by higher ones
type Layer int

const (
	LayerNone Layer = iota
	LayerWater
	LayerShip
	LayerCastle
	LayerSeaweed
	LayerCreature
	LayerFish
	LayerBubble
)

var layerNames = [...]string{
	LayerNone:     "none",
	LayerWater:    "water",
	LayerShip:     "ship",
	LayerCastle:   "castle",
	LayerSeaweed:  "seaweed",
	LayerCreature: "creature",
	LayerFish:     "fish",
	LayerBubble:   "bubble",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}
