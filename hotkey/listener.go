package hotkey

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"

	"ScreenCover/control"
)

// ErrHookSubscription is wrapped by every failure to attach to the
// system-wide key stream.
var ErrHookSubscription = errors.New("global key hook subscription failed")

// Source delivers raw key events. Listen blocks until ctx is done or the
// subscription breaks, calling emit synchronously for every event.
type Source interface {
	Listen(ctx context.Context, emit func(KeyEvent)) error
}

// Listener filters a Source through Bindings and forwards the resulting
// commands to a control.Sender.
type Listener struct {
	source   Source
	bindings Bindings
	out      control.Sender
}

// NewListener creates a listener. It does nothing until Run is called.
func NewListener(source Source, bindings Bindings, out control.Sender) *Listener {
	return &Listener{source: source, bindings: bindings, out: out}
}

// Run subscribes to the source and blocks. It returns nil when ctx ends,
// an error wrapping ErrHookSubscription when the hook cannot be attached,
// and control.ErrReceiverGone once the consumer dropped the queue.
func (l *Listener) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sendErr error
	err := l.source.Listen(ctx, func(ev KeyEvent) {
		if sendErr != nil {
			return
		}
		cmd, ok := l.bindings.Translate(ev)
		if !ok {
			return
		}
		log.Printf("[hotkey] %s pressed, sending %s", ev, cmd)
		if err := l.out.Send(cmd); err != nil {
			if errors.Is(err, control.ErrQueueFull) {
				return
			}
			sendErr = err
			cancel()
		}
	})

	if sendErr != nil {
		return fmt.Errorf("hotkey listener stopped: %w", sendErr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, ErrHookSubscription) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrHookSubscription, err)
	}
	return nil
}

// Degraded reports whether err, returned by Run, leaves the process running
// without keyboard control. Stopping on purpose (ctx done, nil error) or
// because the consumer went away is not a degraded state.
func Degraded(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	return !errors.Is(err, control.ErrReceiverGone)
}
