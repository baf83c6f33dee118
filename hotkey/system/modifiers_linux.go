//go:build linux

package system

import "golang.design/x/hotkey"

// Alt and Super are Mod1 and Mod4 on X11.
const (
	modCtrl  = hotkey.ModCtrl
	modShift = hotkey.ModShift
	modAlt   = hotkey.Mod1
	modSuper = hotkey.Mod4

	// LockMask from X.h; the library has no name for it.
	modCapsLock = hotkey.Modifier(1 << 1)
	modNumLock  = hotkey.Mod2
)

// XGrabKey matches the modifier mask exactly, so NumLock and CapsLock get a
// grab of their own.
var lockModifiers = []hotkey.Modifier{modNumLock, modCapsLock}
