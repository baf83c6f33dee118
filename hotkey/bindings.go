// Package hotkey observes keyboard events system-wide, independent of which
// application has focus, and translates a fixed set of key combinations into
// control commands.
//
// The listener runs on its own OS thread for the lifetime of the process.
// Its only permitted side effect is sending commands into the control queue;
// it never touches windows.
package hotkey

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"ScreenCover/control"
)

//go:embed bindings.json
var bindingsJSON []byte

// Binding maps one key combination to a command.
type Binding struct {
	Key       string          `json:"key"`
	Modifiers Modifiers       `json:"modifiers"`
	Command   control.Command `json:"command"`
}

func (b Binding) String() string {
	return fmt.Sprintf("%s -> %s", KeyEvent{Key: b.Key, Modifiers: b.Modifiers}, b.Command)
}

// Bindings is the fixed table the listener filters against.
type Bindings []Binding

// ParseBindings decodes a bindings table.
func ParseBindings(data []byte) (Bindings, error) {
	var b Bindings
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bindings: %w", err)
	}
	for _, binding := range b {
		if binding.Key == "" {
			return nil, fmt.Errorf("binding for %s has no key", binding.Command)
		}
	}
	return b, nil
}

// DefaultBindings returns the table compiled into the binary:
// Shift+L activates, Escape deactivates, Ctrl+Shift+Q exits.
func DefaultBindings() Bindings {
	b, err := ParseBindings(bindingsJSON)
	if err != nil {
		panic(err)
	}
	return b
}

// Translate returns the command bound to ev. Only key-down events with an
// exact modifier match produce a command; everything else is ignored.
func (b Bindings) Translate(ev KeyEvent) (control.Command, bool) {
	if !ev.Down {
		return 0, false
	}
	for _, binding := range b {
		if binding.Key == ev.Key && binding.Modifiers == ev.Modifiers {
			return binding.Command, true
		}
	}
	return 0, false
}
