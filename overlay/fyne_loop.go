package overlay

import (
	"fyne.io/fyne/v2"
)

// FyneLoop runs the overlay on the fyne main loop.
type FyneLoop struct {
	app    fyne.App
	anchor fyne.Window
}

// NewFyneLoop wraps app. fyne quits when its last window goes away, so a
// never-shown anchor window keeps the loop alive while the overlay is Hidden.
// Must be called on the main goroutine before Run.
func NewFyneLoop(app fyne.App) *FyneLoop {
	anchor := app.NewWindow(app.Metadata().Name)
	anchor.SetCloseIntercept(anchor.Hide)
	return &FyneLoop{app: app, anchor: anchor}
}

// Do schedules fn on the fyne main thread.
func (l *FyneLoop) Do(fn func()) {
	fyne.Do(fn)
}

// OnStarted registers fn for the application started lifecycle event.
func (l *FyneLoop) OnStarted(fn func()) {
	l.app.Lifecycle().SetOnStarted(fn)
}

// Run blocks in the fyne event loop.
func (l *FyneLoop) Run() {
	l.app.Run()
}

// Quit stops the event loop.
func (l *FyneLoop) Quit() {
	l.app.Quit()
}
