package overlay

import "fmt"

// FullscreenMode selects how the window covers the screen.
type FullscreenMode int

const (
	Windowed FullscreenMode = iota
	BorderlessFullscreen
)

// Attributes are the creation parameters of the overlay window.
type Attributes struct {
	Title       string
	Decorated   bool
	Fullscreen  FullscreenMode
	Transparent bool
	AlwaysOnTop bool
}

// CoverAttributes returns the attributes every overlay window is created
// with: undecorated, borderless full-screen, transparent, above all others.
func CoverAttributes(title string) Attributes {
	return Attributes{
		Title:       title,
		Decorated:   false,
		Fullscreen:  BorderlessFullscreen,
		Transparent: true,
		AlwaysOnTop: true,
	}
}

// Window is a live platform window. Close releases it; it must only be
// called on the event-loop thread.
type Window interface {
	Close()
}

// Factory creates platform windows on the event-loop thread. onClose is
// invoked, on the same thread, when the platform or the user asks for the
// window to be closed.
type Factory interface {
	Create(attrs Attributes, onClose func()) (Window, error)
}

// WindowError describes a failed window operation. It is fatal: there is
// no fallback surface.
type WindowError struct {
	Op  string
	Err error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("overlay window %s failed: %v", e.Op, e.Err)
}

func (e *WindowError) Unwrap() error {
	return e.Err
}
