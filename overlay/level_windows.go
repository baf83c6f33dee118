//go:build windows

package overlay

import (
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos = user32.NewProc("SetWindowPos")
)

const (
	hwndTopmost   = ^uintptr(0) // HWND_TOPMOST (-1)
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpShowWindow = 0x0040
)

// setTopmost moves the window into the topmost z-order band.
func setTopmost(ctx any) error {
	win, ok := ctx.(driver.WindowsWindowContext)
	if !ok || win.HWND == 0 {
		return errLevelUnsupported
	}
	ret, _, err := procSetWindowPos.Call(win.HWND, hwndTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpShowWindow)
	if ret == 0 {
		return err
	}
	return nil
}
