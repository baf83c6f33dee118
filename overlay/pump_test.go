package overlay

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ScreenCover/control"
)

// testLoop is a single-threaded event loop: every scheduled function runs
// on the goroutine that called Run, in order.
type testLoop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	started func()
	quit    bool
}

func newTestLoop() *testLoop {
	return &testLoop{wake: make(chan struct{}, 1)}
}

func (l *testLoop) Do(fn func()) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
	l.signal()
}

func (l *testLoop) OnStarted(fn func()) {
	l.started = fn
}

func (l *testLoop) Quit() {
	l.mu.Lock()
	l.quit = true
	l.mu.Unlock()
	l.signal()
}

func (l *testLoop) quitCalled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.quit
}

func (l *testLoop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *testLoop) Run() {
	if l.started != nil {
		l.started()
	}
	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		quit := l.quit
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
		if quit {
			return
		}
		if len(batch) == 0 {
			<-l.wake
		}
	}
}

func runLoop(t *testing.T, loop *testLoop) <-chan struct{} {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run()
	}()
	return done
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not stop")
	}
}

func TestPump_DeliversCommandsThroughLoop(t *testing.T) {
	f := &fakeFactory{}
	c, q, loop := newTestController(f, Lazy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx, 10*time.Millisecond)
	done := runLoop(t, loop)

	require.NoError(t, q.Send(control.CmdActivate))
	require.NoError(t, q.Send(control.CmdActivate))
	require.NoError(t, q.Send(control.CmdDeactivate))
	require.NoError(t, q.Send(control.CmdActivate))
	require.NoError(t, q.Send(control.CmdExit))
	waitFor(t, done)

	assert.NoError(t, c.Err())
	assert.Equal(t, 2, f.created())
	assert.Equal(t, 0, f.live())
}

func TestPump_NudgeDrainsWithoutSignal(t *testing.T) {
	f := &fakeFactory{}
	q := control.NewQueue()
	loop := newTestLoop()
	c := NewController(f, &silentReceiver{Queue: q}, loop, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx, 5*time.Millisecond)
	done := runLoop(t, loop)

	require.NoError(t, q.Send(control.CmdActivate))
	require.NoError(t, q.Send(control.CmdExit))
	waitFor(t, done)

	assert.Equal(t, 1, f.created())
}

// silentReceiver never raises the ready signal, leaving the nudge ticker
// as the only wake source.
type silentReceiver struct {
	*control.Queue
}

func (s *silentReceiver) Ready() <-chan struct{} {
	return nil
}

func (s *silentReceiver) Wake() {}

func TestPump_EagerResumeRacingActivateCreatesOneWindow(t *testing.T) {
	for i := 0; i < 50; i++ {
		f := &fakeFactory{}
		c, q, loop := newTestController(f, Eager)

		ctx, cancel := context.WithCancel(context.Background())
		c.Start(ctx, time.Millisecond)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, q.Send(control.CmdActivate))
		}()
		done := runLoop(t, loop)
		wg.Wait()

		loop.Do(func() {
			for q.Pending() > 0 {
				c.Poll()
			}
			loop.Quit()
		})
		waitFor(t, done)
		cancel()

		require.Equal(t, 1, f.created(), "iteration %d", i)
		require.Equal(t, Visible, c.State())
	}
}

func TestPump_StartupFailureStopsLoop(t *testing.T) {
	f := &fakeFactory{err: assert.AnError}
	c, _, loop := newTestController(f, Eager)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx, 10*time.Millisecond)
	waitFor(t, runLoop(t, loop))

	var werr *WindowError
	require.ErrorAs(t, c.Err(), &werr)
	assert.ErrorIs(t, c.Err(), assert.AnError)
}

// inlineLoop runs Do on the caller, the way fyne.Do behaves once the
// application loop has returned.
type inlineLoop struct {
	testLoop
	calls int
}

func (l *inlineLoop) Do(fn func()) {
	l.calls++
	fn()
}

func TestPump_NothingScheduledAfterCancel(t *testing.T) {
	f := &fakeFactory{}
	q := control.NewQueue()
	loop := &inlineLoop{}
	c := NewController(f, q, loop, Options{})

	require.NoError(t, q.Send(control.CmdActivate))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 20; i++ {
		c.Pump(ctx, time.Millisecond)
	}

	assert.Zero(t, loop.calls)
	assert.Zero(t, f.created())
	assert.Equal(t, 1, q.Pending())
}
