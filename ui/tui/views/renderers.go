package views

import (
	"weatherdeck/internal/header"
	"weatherdeck/ui/tui/state"
)

func RenderScreen(s state.ScreenState, width, height int, offset float64, clockView, spinnerView string, refreshing bool, panels []string) string {
	v := ScreenView{}
	return v.Render(s, ViewProps{
		Width:        width,
		Height:       height,
		Offset:       offset,
		Presentation: header.DeriveAll(offset),
		ClockView:    clockView,
		SpinnerView:  spinnerView,
		Refreshing:   refreshing,
		Panels:       panels,
	})
}

func RenderHeader(s state.ScreenState, width int, offset float64, clockView string) string {
	v := HeaderView{}
	return v.Render(s, ViewProps{
		Width:        width,
		Offset:       offset,
		Presentation: header.DeriveAll(offset),
		ClockView:    clockView,
	})
}
