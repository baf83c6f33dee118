//go:build darwin

package system

import "golang.design/x/hotkey"

const (
	modCtrl  = hotkey.ModCtrl
	modShift = hotkey.ModShift
	modAlt   = hotkey.ModOption
	modSuper = hotkey.ModCmd
)

var lockModifiers []hotkey.Modifier
