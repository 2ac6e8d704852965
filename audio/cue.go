// Package audio synthesises short cues for scene events and plays them through beep.
package audio

import "github.com/lixenwraith/asciiquarium/aquarium"

// Cue identifies a scene event with a sound
type Cue int

const (
	CueShipHorn Cue = iota
	CueSharkSting
	CueWhaleCall
	CueSchool
)

func (c Cue) String() string {
	switch c {
	case CueShipHorn:
		return "ship_horn"
	case CueSharkSting:
		return "shark_sting"
	case CueWhaleCall:
		return "whale_call"
	case CueSchool:
		return "school"
	default:
		return "unknown"
	}
}

// CuesBetween derives cues from two consecutive census snapshots
// Arrivals are a slot going from empty to occupied, schools a rescheduled school tick
func CuesBetween(before, after aquarium.Census) []Cue {
	var cues []Cue
	if before.Ships == 0 && after.Ships > 0 {
		cues = append(cues, CueShipHorn)
	}
	if before.Sharks == 0 && after.Sharks > 0 {
		cues = append(cues, CueSharkSting)
	}
	if before.Whales == 0 && after.Whales > 0 {
		cues = append(cues, CueWhaleCall)
	}
	if after.SchoolDue > before.SchoolDue {
		cues = append(cues, CueSchool)
	}
	return cues
}
