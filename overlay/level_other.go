//go:build !linux && !windows

package overlay

// setTopmost has no implementation here; fyne already keeps full-screen
// windows above the menu bar and dock on macOS.
func setTopmost(any) error {
	return errLevelUnsupported
}
