package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings of the board.
type KeyMap struct {
	// Quit exits the game from any screen.
	Quit key.Binding

	// Submit sends the typed guess.
	Submit key.Binding

	// Replay starts a new round after a game ends.
	Replay key.Binding

	// Decline ends the program after a game ends.
	Decline key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		Replay: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "play again"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "N", "q", "enter"),
			key.WithHelp("n", "quit"),
		),
	}
}

// helpLine renders "key desc • key desc" for the given bindings.
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
