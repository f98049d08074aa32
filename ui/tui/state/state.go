package state

import (
	"time"

	"weatherdeck/internal/weather"
)

// ScreenState holds what the screen knows about the weather.
type ScreenState struct {
	Reading     weather.Reading
	Source      string
	LastRefresh time.Time
	Err         error
}
