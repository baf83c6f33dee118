//go:build windows

package system

import "golang.design/x/hotkey"

const (
	modCtrl  = hotkey.ModCtrl
	modShift = hotkey.ModShift
	modAlt   = hotkey.ModAlt
	modSuper = hotkey.ModWin
)

// RegisterHotKey ignores lock keys.
var lockModifiers []hotkey.Modifier
