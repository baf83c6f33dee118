package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CoverTheme paints window backgrounds with the cover fill so the
// overlay shows nothing but its own surface.
type CoverTheme struct {
	fyne.Theme
	fill color.Color
}

// NewCoverTheme creates a theme whose background is fully transparent, or
// opaque black when transparent is false.
func NewCoverTheme(transparent bool) fyne.Theme {
	return &CoverTheme{Theme: theme.DefaultTheme(), fill: CoverFill(transparent)}
}

// Color returns the cover fill for backgrounds and defers to the default
// theme for everything else.
func (t *CoverTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return t.fill
	}
	return t.Theme.Color(name, variant)
}
