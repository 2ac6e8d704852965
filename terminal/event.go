package terminal

import "github.com/gdamore/tcell/v2"

// Action is the demo-level meaning of an input event
type Action int

const (
	ActionQuit Action = iota
	ActionPause
	ActionResize
)

// Event is an action with the new size for ActionResize
type Event struct {
	Action        Action
	Width, Height int
}

// Translate reduces a tcell event to an Event; ok=false for ignored input
// Quit: Esc, Ctrl-C, q. Pause: space, p
func Translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Event{Action: ActionQuit}, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return Event{Action: ActionQuit}, true
			case ' ', 'p', 'P':
				return Event{Action: ActionPause}, true
			}
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Action: ActionResize, Width: w, Height: h}, true
	}
	return Event{}, false
}
