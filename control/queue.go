package control

import (
	"errors"
	"log"
	"sync"
	"time"
)

// QueueSize is the buffer of the command queue. Hotkeys arrive at human
// speed, so the buffer only has to absorb key repeat bursts.
const QueueSize = 64

// sendTimeout bounds how long a producer waits on a full queue.
const sendTimeout = 150 * time.Millisecond

var (
	// ErrReceiverGone is returned by Send once the consumer closed the queue.
	ErrReceiverGone = errors.New("command receiver is gone")
	// ErrQueueFull is returned when a command was dropped on a full queue.
	ErrQueueFull = errors.New("command queue is full")
)

// Sender is the producer half of the queue.
type Sender interface {
	Send(cmd Command) error
}

// Receiver is the consumer half of the queue. TryRecv never blocks.
type Receiver interface {
	TryRecv() (Command, bool)
	Pending() int
	Ready() <-chan struct{}
	Wake()
	Close()
}

// Queue is a single-producer/single-consumer command channel. Ready raises
// a coalesced signal on every send so the consumer can wake its event loop.
type Queue struct {
	ch    chan Command
	ready chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		ch:    make(chan Command, QueueSize),
		ready: make(chan struct{}, 1),
	}
}

// Send enqueues cmd without blocking the caller for long. If the queue
// stays full for sendTimeout the command is dropped.
func (q *Queue) Send(cmd Command) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrReceiverGone
	}

	select {
	case q.ch <- cmd:
	case <-time.After(sendTimeout):
		log.Printf("[control] queue full, dropping %s", cmd)
		return ErrQueueFull
	}
	q.Wake()
	return nil
}

// TryRecv returns the oldest pending command, if any.
func (q *Queue) TryRecv() (Command, bool) {
	select {
	case cmd := <-q.ch:
		return cmd, true
	default:
		return 0, false
	}
}

// Pending reports how many commands are waiting.
func (q *Queue) Pending() int {
	return len(q.ch)
}

// Ready is signalled at least once after each Send or Wake.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Wake raises the ready signal. Repeated calls coalesce.
func (q *Queue) Wake() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Close drops the receiving side. Later sends fail with ErrReceiverGone.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
