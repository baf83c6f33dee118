package overlay

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

var (
	errNotNative        = errors.New("window exposes no native handle")
	errLevelUnsupported = errors.New("always-on-top is not supported for this window system")
)

// keepAbove forces w above all other windows using the native handle.
func keepAbove(w fyne.Window) error {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return errNotNative
	}
	err := errNotNative
	nw.RunNative(func(ctx any) {
		err = setTopmost(ctx)
	})
	return err
}
