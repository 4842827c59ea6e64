package output

import (
	"github.com/fatih/color"

	"github.com/maxvaer/pather/internal/scanner"
)

// Style is how one result class is presented on a terminal.
type Style struct {
	Marker string
	Color  *color.Color
}

// Styles maps each result class to its presentation.
type Styles map[scanner.Class]Style

// DefaultStyles returns the standard palette. Each call returns fresh color
// values so callers may adjust them without affecting other writers.
func DefaultStyles() Styles {
	c := func(attr color.Attribute) *color.Color {
		col := color.New(attr)
		col.EnableColor()
		return col
	}
	return Styles{
		scanner.Success:     {Marker: "[+]", Color: c(color.FgHiGreen)},
		scanner.ClientError: {Marker: "[-]", Color: c(color.FgHiRed)},
		scanner.Other:       {Marker: "[-]", Color: c(color.FgHiBlue)},
		scanner.Redirect:    {Marker: "[!]", Color: c(color.FgHiYellow)},
	}
}

// For returns the style of class, falling back to the Other style.
func (s Styles) For(class scanner.Class) Style {
	if st, ok := s[class]; ok {
		return st
	}
	if st, ok := s[scanner.Other]; ok {
		return st
	}
	return Style{Marker: "[-]"}
}
