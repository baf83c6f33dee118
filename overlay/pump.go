package overlay

import (
	"context"
	"time"
)

// DefaultNudge is the fallback wake interval used when commands are pending
// but the platform loop is otherwise asleep.
const DefaultNudge = 100 * time.Millisecond

// Pump schedules Poll on the loop thread whenever the queue signals and,
// while commands are pending, on every nudge tick. It returns when ctx ends
// and never schedules after that, since a loop that stopped may run Do
// inline on the caller.
func (c *Controller) Pump(ctx context.Context, nudge time.Duration) {
	if nudge <= 0 {
		nudge = DefaultNudge
	}
	ticker := time.NewTicker(nudge)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.commands.Ready():
		case <-ticker.C:
			if c.commands.Pending() == 0 {
				continue
			}
		}
		if ctx.Err() != nil {
			return
		}
		c.loop.Do(c.Poll)
	}
}
