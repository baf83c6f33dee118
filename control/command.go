// Package control defines the command messages the global hotkey listener
// sends to the overlay controller, and the queue that carries them across
// threads. The queue is the only value shared between the listener thread
// and the event-loop thread; window state never crosses it.
package control

import "fmt"

// Command enumerates the logical instructions derived from raw key events.
type Command int

const (
	CmdActivate Command = iota
	CmdDeactivate
	CmdExit
)

var commandNames = map[Command]string{
	CmdActivate:   "activate",
	CmdDeactivate: "deactivate",
	CmdExit:       "exit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand converts a command name back into a Command.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// UnmarshalText lets commands be named in embedded JSON tables.
func (c *Command) UnmarshalText(text []byte) error {
	parsed, err := ParseCommand(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
