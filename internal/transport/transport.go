// Package transport defines the byte-stream abstraction the game loop
// consumes. Concrete servers (tcp, ws) accept connections, run one
// reader goroutine per connection that fills its inbound buffer, and
// surface Open/Data/Close events on a shared channel; the inbound
// buffers are the only cross-thread shared resource, so all game-state
// mutation stays on the tick loop's goroutine.
package transport

import "sync"

type EventKind int

const (
	Open EventKind = iota
	Data
	Close
)

// Event is one connection lifecycle notification delivered to the game
// loop's poll.
type Event struct {
	Kind EventKind
	Conn Conn
}

// Conn is one client byte stream. Inbound bytes accumulate in a buffer
// the game loop consumes prefix-at-a-time; outbound frames are queued
// and flushed by the transport's writer.
type Conn interface {
	ID() string

	// Peek returns the buffered inbound bytes without consuming them.
	Peek() []byte
	// Discard drops exactly n bytes from the front of the inbound buffer.
	Discard(n int)

	// Send queues one outbound frame. It never blocks; frames for a
	// consumer too slow to drain its queue are dropped.
	Send(frame []byte)

	Close()
}

// Buffer is a connection's inbound byte queue, shared between the
// transport's reader goroutine and the game loop.
type Buffer struct {
	mu   sync.Mutex
	data []byte
}

func (that *Buffer) Append(p []byte) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.data = append(that.data, p...)
}

func (that *Buffer) Peek() []byte {
	that.mu.Lock()
	defer that.mu.Unlock()
	return append([]byte(nil), that.data...)
}

func (that *Buffer) Discard(n int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if n > len(that.data) {
		n = len(that.data)
	}
	that.data = that.data[n:]
}

func (that *Buffer) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()
	return len(that.data)
}
