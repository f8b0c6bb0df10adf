// Package app provides the Goblin King menu loop.
package app

// State represents what the menu screen is currently showing.
type State int

const (
	// StateMenu is the bare menu waiting for a choice.
	StateMenu State = iota
	// StateResults shows the output of the last roll below the menu.
	StateResults
	// StateNotice shows a message about an invalid or unavailable choice.
	StateNotice
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateResults:
		return "results"
	case StateNotice:
		return "notice"
	default:
		return "unknown"
	}
}
