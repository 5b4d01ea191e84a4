package ringbuffer

import "fmt"

// RingBuffer is a generic, fixed-capacity FIFO ring buffer. It is not safe
// for concurrent use; see Serialized and SPSC for goroutine-safe variants.
//
// The zero value is an uninitialized descriptor: bind it to storage with
// Init, or create an owning buffer with New.
type RingBuffer[T any] struct {
	data []T
	cursors
}

// New creates a RingBuffer that owns storage for capacity items. All slots
// are allocated here; Push and Pop never allocate.
func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	rb := &RingBuffer[T]{}
	if err := rb.Init(make([]T, capacity)); err != nil {
		return nil, err
	}
	return rb, nil
}

// Init binds rb to storage, using every slot of it. Any previously buffered
// items are discarded. The contents of storage are not cleared, and the
// caller must not touch storage while rb is in use.
//
// On error rb is left unchanged.
func (rb *RingBuffer[T]) Init(storage []T) error {
	switch {
	case rb == nil:
		return fmt.Errorf("%w: nil ring buffer", ErrInvalidArgument)
	case storage == nil:
		return fmt.Errorf("%w: nil storage", ErrInvalidArgument)
	case len(storage) == 0:
		return fmt.Errorf("%w: capacity must be positive, got 0", ErrInvalidArgument)
	}
	rb.data = storage
	rb.reset(len(storage))
	return nil
}

// Push appends item at the head. It returns ErrFull, leaving the buffer
// untouched, when the buffer already holds Cap items.
func (rb *RingBuffer[T]) Push(item T) error {
	if rb == nil || rb.capacity == 0 {
		return fmt.Errorf("%w: uninitialized ring buffer", ErrInvalidArgument)
	}
	if rb.isFull {
		return ErrFull
	}
	rb.data[rb.head] = item
	rb.advanceHead()
	return nil
}

// Pop removes and returns the oldest item. If the buffer is empty it
// returns the zero value and ErrEmpty.
func (rb *RingBuffer[T]) Pop() (T, error) {
	var item T
	err := rb.PopInto(&item)
	return item, err
}

// PopInto removes the oldest item and stores it in *out. If the buffer is
// empty *out is left unmodified and ErrEmpty is returned.
func (rb *RingBuffer[T]) PopInto(out *T) error {
	if rb == nil || rb.capacity == 0 {
		return fmt.Errorf("%w: uninitialized ring buffer", ErrInvalidArgument)
	}
	if out == nil {
		return fmt.Errorf("%w: nil output", ErrInvalidArgument)
	}
	if rb.empty() {
		return ErrEmpty
	}
	*out = rb.data[rb.tail]
	rb.advanceTail()
	return nil
}

// Peek returns the oldest item without removing it.
func (rb *RingBuffer[T]) Peek() (T, error) {
	var item T
	if rb == nil || rb.capacity == 0 {
		return item, fmt.Errorf("%w: uninitialized ring buffer", ErrInvalidArgument)
	}
	if rb.empty() {
		return item, ErrEmpty
	}
	return rb.data[rb.tail], nil
}

// Status reports whether the buffer is full. It is the minimal status query;
// Len and State give the exact fill level.
func (rb *RingBuffer[T]) Status() (bool, error) {
	if rb == nil {
		return false, fmt.Errorf("%w: nil ring buffer", ErrInvalidArgument)
	}
	return rb.isFull, nil
}

// Reset discards all buffered items. Slot contents are left in place.
func (rb *RingBuffer[T]) Reset() {
	rb.reset(rb.capacity)
}

// Len returns the number of buffered items.
func (rb *RingBuffer[T]) Len() int { return rb.len() }

// Cap returns the capacity fixed at initialization.
func (rb *RingBuffer[T]) Cap() int { return rb.capacity }

// Free returns the number of pushes that would currently succeed.
func (rb *RingBuffer[T]) Free() int { return rb.capacity - rb.len() }

func (rb *RingBuffer[T]) IsEmpty() bool { return rb.empty() }

func (rb *RingBuffer[T]) IsFull() bool { return rb.isFull }

// State returns the current fill state.
func (rb *RingBuffer[T]) State() State { return rb.state() }
