package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ScreenCover/overlay"
)

func TestNewCover_Fill(t *testing.T) {
	attrs := overlay.CoverAttributes("cover")
	rect, ok := NewCover(attrs).(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, color.Transparent, rect.FillColor)

	attrs.Transparent = false
	rect = NewCover(attrs).(*canvas.Rectangle)
	assert.Equal(t, color.Black, rect.FillColor)
}

func TestCoverTheme_Background(t *testing.T) {
	test.NewTempApp(t)

	th := NewCoverTheme(false)
	assert.Equal(t, color.Black, th.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantDark),
		th.Color(theme.ColorNameForeground, theme.VariantDark))
}
