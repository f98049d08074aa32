package views

import (
	"weatherdeck/internal/header"
	"weatherdeck/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	Offset       float64
	Presentation header.Presentation

	// Component States
	ClockView   string
	SpinnerView string
	Refreshing  bool
	Panels      []string
}

// View defines the contract for any renderable part of the screen.
type View interface {
	Render(s state.ScreenState, props ViewProps) string
}
