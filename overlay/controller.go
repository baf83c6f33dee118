// Package overlay owns the single full-screen cover window and the state
// machine that creates and destroys it.
//
// Maintenance notes:
//   - Every Controller method except Start and Pump must run on the
//     event-loop thread. Windows cannot be moved between threads on most
//     platforms, so the handle never leaves the Controller and nothing else
//     is allowed to create or close it.
//   - The hotkey listener only ever reaches the Controller through the
//     control queue; Pump turns queue activity into Poll calls scheduled with
//     Loop.Do.
package overlay

import (
	"context"
	"log"
	"time"

	"ScreenCover/control"
)

// State is the visibility of the overlay.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Policy decides when the first window is created.
type Policy int

const (
	// Lazy starts Hidden and waits for an Activate command.
	Lazy Policy = iota
	// Eager creates the window as soon as the event loop is running.
	Eager
)

// Options configure a Controller.
type Options struct {
	Policy     Policy
	Attributes Attributes
	// OnChange is called on the loop thread after every transition.
	OnChange func(State)
}

// Controller drives the Hidden/Visible state machine. The window handle is
// nil exactly when the state is Hidden.
type Controller struct {
	factory  Factory
	commands control.Receiver
	loop     Loop
	policy   Policy
	attrs    Attributes
	onChange func(State)

	window Window
	exited bool
	err    error
}

// NewController creates a Controller in the Hidden state.
func NewController(factory Factory, commands control.Receiver, loop Loop, opts Options) *Controller {
	return &Controller{
		factory:  factory,
		commands: commands,
		loop:     loop,
		policy:   opts.Policy,
		attrs:    opts.Attributes,
		onChange: opts.OnChange,
	}
}

// Start hooks the controller into the loop's start callback and launches
// the wake pump. Call it before Loop.Run.
func (c *Controller) Start(ctx context.Context, nudge time.Duration) {
	c.loop.OnStarted(func() {
		if err := c.Resumed(); err != nil {
			c.fail(err)
			return
		}
		c.Poll()
	})
	go c.Pump(ctx, nudge)
}

// State reports the current state.
func (c *Controller) State() State {
	if c.window != nil {
		return Visible
	}
	return Hidden
}

// Visible reports whether a window currently exists.
func (c *Controller) Visible() bool {
	return c.window != nil
}

// Window returns the live window handle, or nil when Hidden.
func (c *Controller) Window() Window {
	return c.window
}

// Err returns the fatal error that stopped the loop, if any.
func (c *Controller) Err() error {
	return c.err
}

// Activate creates the cover window. It is a no-op while Visible.
func (c *Controller) Activate() error {
	if c.window != nil {
		return nil
	}

	var w Window
	w, err := c.factory.Create(c.attrs, func() { c.CloseRequested(w) })
	if err != nil {
		return &WindowError{Op: "create", Err: err}
	}
	c.window = w
	log.Printf("[overlay] cover window shown")
	c.changed()
	return nil
}

// Deactivate destroys the cover window. It is a no-op while Hidden.
func (c *Controller) Deactivate() {
	if c.window == nil {
		return
	}
	w := c.window
	c.window = nil
	w.Close()
	log.Printf("[overlay] cover window closed")
	c.changed()
}

// CloseRequested handles a close issued by the platform or the user for w.
// Requests for a window that is no longer current are ignored.
func (c *Controller) CloseRequested(w Window) {
	if w == nil || w != c.window {
		log.Printf("[overlay] ignoring close request for stale window")
		return
	}
	c.window = nil
	w.Close()
	log.Printf("[overlay] cover window closed by platform")
	c.changed()
}

// Resumed is called once the event loop runs. Under the Eager policy it
// creates the window; Activate's idempotence keeps that to one window even
// if an Activate command is handled first.
func (c *Controller) Resumed() error {
	if c.policy != Eager {
		return nil
	}
	return c.Activate()
}

// Apply performs the transition for cmd. exit reports that the loop should
// stop.
func (c *Controller) Apply(cmd control.Command) (exit bool, err error) {
	switch cmd {
	case control.CmdActivate:
		return false, c.Activate()
	case control.CmdDeactivate:
		c.Deactivate()
	case control.CmdExit:
		c.Deactivate()
		return true, nil
	default:
		log.Printf("[overlay] unknown command %s", cmd)
	}
	return false, nil
}

// Poll takes at most one pending command and applies it. It never blocks.
func (c *Controller) Poll() {
	if c.exited {
		return
	}
	cmd, ok := c.commands.TryRecv()
	if !ok {
		return
	}
	if c.commands.Pending() > 0 {
		c.commands.Wake()
	}

	exit, err := c.Apply(cmd)
	if err != nil {
		c.fail(err)
		return
	}
	if exit {
		log.Printf("[overlay] exit requested")
		c.exited = true
		c.commands.Close()
		c.loop.Quit()
	}
}

func (c *Controller) fail(err error) {
	log.Printf("[overlay] fatal: %v", err)
	if c.err == nil {
		c.err = err
	}
	c.exited = true
	c.commands.Close()
	c.loop.Quit()
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange(c.State())
	}
}
