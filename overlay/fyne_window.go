package overlay

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// ContentFunc builds what the cover window displays.
type ContentFunc func(Attributes) fyne.CanvasObject

// FyneFactory creates cover windows through the fyne driver.
type FyneFactory struct {
	app     fyne.App
	content ContentFunc
}

// NewFyneFactory creates a factory. content may be nil.
func NewFyneFactory(app fyne.App, content ContentFunc) *FyneFactory {
	return &FyneFactory{app: app, content: content}
}

type fyneWindow struct {
	fyne.Window
}

// Create builds, shows and raises a window. Must run on the main thread.
func (f *FyneFactory) Create(attrs Attributes, onClose func()) (win Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			win, err = nil, fmt.Errorf("driver panic: %v", r)
		}
	}()

	w := f.newWindow(attrs)
	if w == nil {
		return nil, errors.New("driver returned no window")
	}

	w.SetTitle(attrs.Title)
	w.SetPadded(false)
	if f.content != nil {
		w.SetContent(f.content(attrs))
	}
	w.SetFullScreen(attrs.Fullscreen == BorderlessFullscreen)
	if onClose != nil {
		w.SetCloseIntercept(onClose)
	}
	w.Show()

	if attrs.AlwaysOnTop {
		if err := keepAbove(w); err != nil {
			log.Printf("[overlay] could not raise window level: %v", err)
		}
	}
	w.RequestFocus()
	return &fyneWindow{Window: w}, nil
}

func (f *FyneFactory) newWindow(attrs Attributes) fyne.Window {
	if !attrs.Decorated {
		if drv, ok := f.app.Driver().(desktop.Driver); ok {
			return drv.CreateSplashWindow()
		}
	}
	return f.app.NewWindow(attrs.Title)
}
