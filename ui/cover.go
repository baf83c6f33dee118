// Package ui builds what the overlay window displays. Rendering real pixel
// content is left to whoever embeds a backend here; the cover itself is a
// single filled surface.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"ScreenCover/overlay"
)

// CoverFill is the surface colour of the overlay.
func CoverFill(transparent bool) color.Color {
	if transparent {
		return color.Transparent
	}
	return color.Black
}

// NewCover returns the content of a cover window for attrs.
func NewCover(attrs overlay.Attributes) fyne.CanvasObject {
	return canvas.NewRectangle(CoverFill(attrs.Transparent))
}
