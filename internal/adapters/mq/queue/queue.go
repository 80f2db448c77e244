// Package queue defines the contract for feeding candidate trace pairs
// to comparison workers.
//
// The in-memory implementation is a bounded channel sized for one batch.
package queue

import (
	"context"
	"sync"

	"github.com/okian/mimic/internal/domain/compare"
	"github.com/okian/mimic/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultCapacity = 65536
)

// Pair is the payload type flowing through the queue.
type Pair = compare.Pair

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a pair to the queue.
	// Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, p Pair) bool

	// Dequeue returns a channel receiving pairs as they become available.
	// The channel is closed once the queue is closed and drained.
	Dequeue(ctx context.Context) <-chan Pair

	// Len returns the current number of queued pairs.
	Len(ctx context.Context) int

	// Close stops the queue. No new pairs can be enqueued afterwards;
	// already queued pairs are still delivered.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	pairs    chan Pair
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.pairs = make(chan Pair, q.capacity)
	return q
}

// Enqueue adds a pair to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, p Pair) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	if ctx.Err() != nil {
		return false
	}

	select {
	case q.pairs <- p:
		metrics.UpdateQueueSize(len(q.pairs))
		return true
	default:
		return false
	}
}

// Dequeue returns the delivery channel.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan Pair {
	return q.pairs
}

// Len returns the current number of queued pairs.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.pairs)
}

// Close stops the queue. Idempotent.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	close(q.pairs)
	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
