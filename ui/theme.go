// Package ui provides the 2D overlay: narrative panel, console feed,
// activity monitors, and projected 3D annotations.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	AccentPhone   rl.Color
	AccentSport   rl.Color
	GraphBg       rl.Color
	GraphGrid     rl.Color
	ConsoleText   rl.Color
	ConsoleTime   rl.Color

	FontSize       int32
	HeaderFontSize int32
	LineHeight     int32
	Padding        int32
}

// DefaultTheme returns the standard dark theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 16, G: 18, B: 28, A: 225},
		PanelBorder:   rl.Color{R: 60, G: 64, B: 86, A: 255},
		SectionHeader: rl.Color{R: 210, G: 214, B: 232, A: 255},
		LabelColor:    rl.Color{R: 160, G: 164, B: 182, A: 255},
		ValueColor:    rl.Color{R: 235, G: 238, B: 250, A: 255},
		AccentPhone:   rl.Color{R: 255, G: 107, B: 74, A: 255},
		AccentSport:   rl.Color{R: 74, G: 222, B: 128, A: 255},
		GraphBg:       rl.Color{R: 12, G: 13, B: 21, A: 255},
		GraphGrid:     rl.Color{R: 40, G: 42, B: 56, A: 255},
		ConsoleText:   rl.Color{R: 140, G: 220, B: 160, A: 255},
		ConsoleTime:   rl.Color{R: 100, G: 104, B: 124, A: 255},

		FontSize:       12,
		HeaderFontSize: 18,
		LineHeight:     16,
		Padding:        10,
	}
}
