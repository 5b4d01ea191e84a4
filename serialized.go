package ringbuffer

import "sync"

// Cleanable is an interface for types that require explicit cleanup when
// they are dropped by a Serialized buffer on Stop.
type Cleanable interface {
	// Cleanup performs any necessary resource release.
	Cleanup()
}

type pushRequest[T any] struct {
	item T
	resp chan error
}

type popResponse[T any] struct {
	item T
	err  error
}

// Serialized wraps a RingBuffer so that any number of goroutines can share
// it. A single owner goroutine holds the buffer and serves requests over
// channels, so no locks are taken. Every call returns as soon as the owner
// has served it; nothing waits for space or data.
type Serialized[T any] struct {
	rb *RingBuffer[T]

	pushChan  chan pushRequest[T]
	popChan   chan chan popResponse[T]
	drainChan chan chan []T
	lenChan   chan chan int

	stopOnce sync.Once
	done     chan struct{}
	exited   chan struct{}
}

// NewSerialized creates a Serialized buffer holding up to capacity items and
// starts its owner goroutine. Call Stop to release the goroutine.
func NewSerialized[T any](capacity int) (*Serialized[T], error) {
	rb, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	s := &Serialized[T]{
		rb:        rb,
		pushChan:  make(chan pushRequest[T]),
		popChan:   make(chan chan popResponse[T]),
		drainChan: make(chan chan []T),
		lenChan:   make(chan chan int),
		done:      make(chan struct{}),
		exited:    make(chan struct{}),
	}

	go s.run()

	return s, nil
}

// TryPush adds item, or returns ErrFull if the buffer is at capacity.
func (s *Serialized[T]) TryPush(item T) error {
	resp := make(chan error, 1)
	select {
	case s.pushChan <- pushRequest[T]{item: item, resp: resp}:
	case <-s.done:
		return ErrStopped
	}
	return <-resp
}

// TryPop removes and returns the oldest item, or returns ErrEmpty.
func (s *Serialized[T]) TryPop() (T, error) {
	resp := make(chan popResponse[T], 1)
	select {
	case s.popChan <- resp:
	case <-s.done:
		var zero T
		return zero, ErrStopped
	}
	r := <-resp
	return r.item, r.err
}

// Drain removes all buffered items and returns them oldest first. It
// returns nil when the buffer is empty or stopped. Cleanup is not called on
// drained items.
func (s *Serialized[T]) Drain() []T {
	resp := make(chan []T, 1)
	select {
	case s.drainChan <- resp:
	case <-s.done:
		return nil
	}
	return <-resp
}

// Len returns the number of buffered items, or 0 once stopped.
func (s *Serialized[T]) Len() int {
	resp := make(chan int, 1)
	select {
	case s.lenChan <- resp:
	case <-s.done:
		return 0
	}
	return <-resp
}

// Cap returns the capacity.
func (s *Serialized[T]) Cap() int {
	return s.rb.Cap()
}

// Full reports whether the buffer currently holds Cap items.
func (s *Serialized[T]) Full() bool {
	return s.Len() == s.Cap()
}

// Stop shuts down the owner goroutine and calls Cleanup on any remaining
// items that implement Cleanable. It returns once cleanup has finished and
// is safe to call more than once.
func (s *Serialized[T]) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	<-s.exited
}

// run is the owner loop. Each request is answered inside its own case, so
// an accepted request always gets a reply even if Stop races with it.
func (s *Serialized[T]) run() {
	defer close(s.exited)

	for {
		select {
		case req := <-s.pushChan:
			req.resp <- s.rb.Push(req.item)

		case resp := <-s.popChan:
			item, err := s.rb.Pop()
			resp <- popResponse[T]{item: item, err: err}

		case resp := <-s.drainChan:
			if s.rb.IsEmpty() {
				resp <- nil
				continue
			}
			items := make([]T, 0, s.rb.Len())
			for {
				item, err := s.rb.Pop()
				if err != nil {
					break
				}
				items = append(items, item)
			}
			resp <- items

		case resp := <-s.lenChan:
			resp <- s.rb.Len()

		case <-s.done:
			for {
				item, err := s.rb.Pop()
				if err != nil {
					break
				}
				if cleanable, ok := any(item).(Cleanable); ok {
					cleanable.Cleanup()
				}
			}
			return
		}
	}
}
