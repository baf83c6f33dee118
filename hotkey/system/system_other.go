//go:build !darwin && !linux && !windows

package system

import (
	"fmt"
	"runtime"

	screenhotkey "ScreenCover/hotkey"
)

// NewSource creates a source whose Listen always fails: no global key hook
// exists on this platform.
func NewSource(bindings screenhotkey.Bindings) *screenhotkey.GrabSource {
	return screenhotkey.NewGrabSource(bindings, func(screenhotkey.Binding) ([]screenhotkey.Grab, error) {
		return nil, fmt.Errorf("unsupported platform %s", runtime.GOOS)
	})
}
