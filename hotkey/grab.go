package hotkey

import (
	"context"
	"fmt"
	"log"
)

// Grab is one exclusive, system-wide key registration.
type Grab interface {
	Register() error
	Unregister() error
	Keydown() <-chan struct{}
}

// GrabFunc builds the grabs needed to observe b. Hooks that match the
// modifier mask exactly return one grab per lock-key combination.
type GrabFunc func(b Binding) ([]Grab, error)

// GrabSource is a Source backed by global grabs. Only bound combinations
// are ever observed.
type GrabSource struct {
	bindings Bindings
	grab     GrabFunc
}

// NewGrabSource creates a source registering grab(b) for every binding.
func NewGrabSource(bindings Bindings, grab GrabFunc) *GrabSource {
	return &GrabSource{bindings: bindings, grab: grab}
}

// Listen registers every grab and blocks until ctx is done.
//
// Grabs are released in the background: on X11 Unregister only returns once
// the grabbed key is released again, which may never happen.
func (s *GrabSource) Listen(ctx context.Context, emit func(KeyEvent)) error {
	var registered []Grab
	defer func() {
		go release(registered)
	}()

	events := make(chan KeyEvent)
	for _, b := range s.bindings {
		grabs, err := s.grab(b)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrHookSubscription, b, err)
		}
		ev := KeyEvent{Key: b.Key, Modifiers: b.Modifiers, Down: true}
		for _, g := range grabs {
			if err := g.Register(); err != nil {
				return fmt.Errorf("%w: register %s: %v", ErrHookSubscription, b, err)
			}
			registered = append(registered, g)
			go forward(ctx, g.Keydown(), ev, events)
		}
		log.Printf("[hotkey] registered %s (%d grabs)", b, len(grabs))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			emit(ev)
		}
	}
}

func forward(ctx context.Context, down <-chan struct{}, ev KeyEvent, events chan<- KeyEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-down:
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func release(grabs []Grab) {
	for _, g := range grabs {
		if err := g.Unregister(); err != nil {
			log.Printf("[hotkey] unregister failed: %v", err)
		}
	}
}

// LockCombinations returns the OR of every subset of locks, starting with
// zero. Adding each result to a binding's modifier mask keeps the binding
// working whatever state NumLock or CapsLock are in.
func LockCombinations[M ~uint8 | ~uint16 | ~uint32](locks ...M) []M {
	combos := []M{0}
	for _, l := range locks {
		for _, c := range combos {
			combos = append(combos, c|l)
		}
	}
	return combos
}
