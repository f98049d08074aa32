// Package weather supplies the readings shown in the screen header.
package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

const DegreeSymbol = "°"

var ErrEmptyLocation = errors.New("reading has no location")

// Reading is the current conditions for one place.
type Reading struct {
	Location    string    `yaml:"location"`
	Temperature float64   `yaml:"temperature"`
	Low         float64   `yaml:"low"`
	High        float64   `yaml:"high"`
	Unit        string    `yaml:"unit"` // "C" or "F"; empty shows only the degree sign
	ObservedAt  time.Time `yaml:"observed_at"`
}

// Validate checks that the reading can be displayed.
func (r Reading) Validate() error {
	if r.Location == "" {
		return ErrEmptyLocation
	}
	if r.Low > r.High {
		return fmt.Errorf("low %.1f above high %.1f", r.Low, r.High)
	}
	return nil
}

// FormatTemp renders the current temperature, e.g. "8°".
func (r Reading) FormatTemp() string {
	return formatDegrees(r.Temperature) + r.Unit
}

// FormatRange renders the low and high, e.g. "6° / 10°".
func (r Reading) FormatRange() string {
	return fmt.Sprintf("%s / %s", formatDegrees(r.Low), formatDegrees(r.High))
}

func formatDegrees(v float64) string {
	return fmt.Sprintf("%d%s", int(math.Round(v)), DegreeSymbol)
}

// Source produces readings on demand.
type Source interface {
	Name() string
	Current(ctx context.Context) (Reading, error)
}

// Placeholder is the reading shown before any source has answered.
func Placeholder() Reading {
	return Reading{
		Location:    "Lokalizacja",
		Temperature: 8,
		Low:         6,
		High:        10,
	}
}
