package overlay

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFyneFactory_CreatesFullscreenWindow(t *testing.T) {
	app := test.NewTempApp(t)
	cover := canvas.NewRectangle(color.Transparent)
	f := NewFyneFactory(app, func(Attributes) fyne.CanvasObject { return cover })

	win, err := f.Create(CoverAttributes("cover"), nil)
	require.NoError(t, err)

	fw, ok := win.(*fyneWindow)
	require.True(t, ok)
	assert.True(t, fw.FullScreen())
	assert.Equal(t, "cover", fw.Title())
	assert.Same(t, cover, fw.Content())

	win.Close()
}

func TestFyneFactory_WindowedWhenRequested(t *testing.T) {
	app := test.NewTempApp(t)
	f := NewFyneFactory(app, nil)

	attrs := CoverAttributes("plain")
	attrs.Fullscreen = Windowed
	win, err := f.Create(attrs, nil)
	require.NoError(t, err)
	assert.False(t, win.(*fyneWindow).FullScreen())
	win.Close()
}

func TestFyneFactory_ControllerLifecycle(t *testing.T) {
	app := test.NewTempApp(t)
	c, _, _ := newTestController(NewFyneFactory(app, nil), Lazy)

	require.NoError(t, c.Activate())
	first := c.Window()
	require.NotNil(t, first)

	c.Deactivate()
	require.NoError(t, c.Activate())
	assert.NotSame(t, first.(*fyneWindow), c.Window().(*fyneWindow))
	c.Deactivate()
	assert.Nil(t, c.Window())
}
