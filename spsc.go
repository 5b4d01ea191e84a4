package ringbuffer

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// SPSC is a lock-free, fixed-capacity FIFO for exactly one producer
// goroutine and one consumer goroutine. Push may only be called by the
// producer and Pop only by the consumer; Len and Cap are safe from anywhere.
//
// head and tail are free-running counters; a slot index is counter mod
// capacity, and the buffer is full when head-tail == capacity, so no
// separate full flag is needed.
type SPSC[T any] struct {
	// head counts pushes. Written only by the producer.
	head atomic.Uint64

	_ cpu.CacheLinePad

	// tail counts pops. Written only by the consumer.
	tail atomic.Uint64

	_ cpu.CacheLinePad

	capacity uint64
	data     []T
}

// NewSPSC creates an SPSC buffer for capacity items.
func NewSPSC[T any](capacity int) (*SPSC[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	return &SPSC[T]{
		capacity: uint64(capacity),
		data:     make([]T, capacity),
	}, nil
}

// Push adds item, or returns ErrFull. Producer only.
func (q *SPSC[T]) Push(item T) error {
	head := q.head.Load()
	if head-q.tail.Load() == q.capacity {
		return ErrFull
	}
	q.data[head%q.capacity] = item
	q.head.Store(head + 1)
	return nil
}

// Pop removes and returns the oldest item, or returns ErrEmpty. Consumer
// only.
func (q *SPSC[T]) Pop() (T, error) {
	var item T
	tail := q.tail.Load()
	if tail == q.head.Load() {
		return item, ErrEmpty
	}
	idx := tail % q.capacity
	item = q.data[idx]
	// Drop the reference so the slot does not pin item for the GC.
	var zero T
	q.data[idx] = zero
	q.tail.Store(tail + 1)
	return item, nil
}

// Len returns a snapshot of the number of buffered items.
func (q *SPSC[T]) Len() int {
	tail := q.tail.Load()
	head := q.head.Load()
	return int(min(head-tail, q.capacity))
}

// Cap returns the capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.capacity)
}
