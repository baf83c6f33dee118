//go:build darwin || linux || windows

// Package system grabs the bound combinations through
// golang.design/x/hotkey. It is kept apart from package hotkey because the
// library needs a display as soon as it is loaded on Linux.
package system

import (
	"fmt"

	"golang.design/x/hotkey"

	screenhotkey "ScreenCover/hotkey"
)

var keyCodes = map[string]hotkey.Key{
	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,
	"Escape": hotkey.KeyEscape,
}

// NewSource creates a source that registers every binding globally.
func NewSource(bindings screenhotkey.Bindings) *screenhotkey.GrabSource {
	return screenhotkey.NewGrabSource(bindings, grabsFor)
}

func grabsFor(b screenhotkey.Binding) ([]screenhotkey.Grab, error) {
	key, ok := keyCodes[b.Key]
	if !ok {
		return nil, fmt.Errorf("no key code for %q", b.Key)
	}
	base := nativeModifiers(b.Modifiers)

	var grabs []screenhotkey.Grab
	for _, lock := range screenhotkey.LockCombinations(lockModifiers...) {
		mods := append([]hotkey.Modifier(nil), base...)
		if lock != 0 {
			mods = append(mods, lock)
		}
		grabs = append(grabs, &grab{hk: hotkey.New(mods, key)})
	}
	return grabs, nil
}

func nativeModifiers(m screenhotkey.Modifiers) []hotkey.Modifier {
	var mods []hotkey.Modifier
	if m.Ctrl {
		mods = append(mods, modCtrl)
	}
	if m.Shift {
		mods = append(mods, modShift)
	}
	if m.Alt {
		mods = append(mods, modAlt)
	}
	if m.Super {
		mods = append(mods, modSuper)
	}
	return mods
}

// grab adapts a library hotkey to screenhotkey.Grab.
type grab struct {
	hk   *hotkey.Hotkey
	down chan struct{}
	stop chan struct{}
}

func (g *grab) Register() error {
	if err := g.hk.Register(); err != nil {
		return err
	}
	g.down = make(chan struct{})
	g.stop = make(chan struct{})
	go func() {
		for {
			select {
			case <-g.stop:
				return
			case <-g.hk.Keydown():
				select {
				case g.down <- struct{}{}:
				case <-g.stop:
					return
				}
			}
		}
	}()
	return nil
}

func (g *grab) Unregister() error {
	close(g.stop)
	return g.hk.Unregister()
}

func (g *grab) Keydown() <-chan struct{} {
	return g.down
}
