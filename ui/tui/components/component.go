package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a widget laid out by the screen. The screen owns its size
// and calls Resize whenever the terminal changes.
type Component interface {
	tea.Model
	Resize(width, height int)
}
