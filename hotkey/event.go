package hotkey

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Modifiers are the modifier flags attached to a single key event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Super bool
}

func (m Modifiers) String() string {
	var parts []string
	if m.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if m.Alt {
		parts = append(parts, "Alt")
	}
	if m.Super {
		parts = append(parts, "Super")
	}
	if m.Shift {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// UnmarshalJSON reads modifiers written as a list of names.
func (m *Modifiers) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*m = Modifiers{}
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			m.Shift = true
		case "ctrl", "control":
			m.Ctrl = true
		case "alt", "option":
			m.Alt = true
		case "super", "cmd", "win":
			m.Super = true
		default:
			return fmt.Errorf("unknown modifier %q", name)
		}
	}
	return nil
}

// KeyEvent is one raw key event observed system-wide.
type KeyEvent struct {
	Key       string
	Modifiers Modifiers
	Down      bool
}

func (e KeyEvent) String() string {
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + e.Key
	}
	return e.Key
}
