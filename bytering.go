package ringbuffer

import "fmt"

// ByteRing is a fixed-capacity FIFO ring buffer of opaque, fixed-size
// elements stored in a caller-supplied byte region. Each slot is a block of
// ElementSize bytes; push and pop are plain byte copies, so the ring has no
// knowledge of what the bytes represent. Callers must use one element size
// and one representation for everything pushed to a given ring.
//
// Like RingBuffer, a ByteRing is not safe for concurrent use.
type ByteRing struct {
	storage     []byte
	elementSize int
	cursors
}

// NewByteRing creates a ByteRing that owns capacity*elementSize bytes of
// storage.
func NewByteRing(capacity, elementSize int) (*ByteRing, error) {
	if capacity <= 0 || elementSize <= 0 {
		return nil, fmt.Errorf("%w: capacity %d, element size %d", ErrInvalidArgument, capacity, elementSize)
	}
	br := &ByteRing{}
	if err := br.Init(make([]byte, capacity*elementSize), capacity, elementSize); err != nil {
		return nil, err
	}
	return br, nil
}

// Init binds br to storage, which must hold at least capacity*elementSize
// bytes. Previously buffered elements are discarded and storage is not
// cleared. On error br is left unchanged.
func (br *ByteRing) Init(storage []byte, capacity, elementSize int) error {
	switch {
	case br == nil:
		return fmt.Errorf("%w: nil ring", ErrInvalidArgument)
	case storage == nil:
		return fmt.Errorf("%w: nil storage", ErrInvalidArgument)
	case capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	case elementSize <= 0:
		return fmt.Errorf("%w: element size must be positive, got %d", ErrInvalidArgument, elementSize)
	case len(storage)/elementSize < capacity:
		return fmt.Errorf("%w: storage of %d bytes cannot hold %d elements of %d bytes",
			ErrInvalidArgument, len(storage), capacity, elementSize)
	}
	br.storage = storage
	br.elementSize = elementSize
	br.reset(capacity)
	return nil
}

// slot returns the bytes of slot i.
func (br *ByteRing) slot(i int) []byte {
	off := i * br.elementSize
	return br.storage[off : off+br.elementSize : off+br.elementSize]
}

// Push copies the first ElementSize bytes of elem into the slot at the head.
// It returns ErrFull when the ring already holds Cap elements; nothing is
// copied in that case.
func (br *ByteRing) Push(elem []byte) error {
	if br == nil || br.capacity == 0 {
		return fmt.Errorf("%w: uninitialized ring", ErrInvalidArgument)
	}
	if len(elem) < br.elementSize {
		return fmt.Errorf("%w: element of %d bytes, want %d", ErrInvalidArgument, len(elem), br.elementSize)
	}
	if br.isFull {
		return ErrFull
	}
	copy(br.slot(br.head), elem)
	br.advanceHead()
	return nil
}

// Pop copies the oldest element into the first ElementSize bytes of out and
// removes it. It returns ErrEmpty, leaving out untouched, when the ring
// holds no elements.
func (br *ByteRing) Pop(out []byte) error {
	if br == nil || br.capacity == 0 {
		return fmt.Errorf("%w: uninitialized ring", ErrInvalidArgument)
	}
	if len(out) < br.elementSize {
		return fmt.Errorf("%w: output of %d bytes, want %d", ErrInvalidArgument, len(out), br.elementSize)
	}
	if br.empty() {
		return ErrEmpty
	}
	copy(out, br.slot(br.tail))
	br.advanceTail()
	return nil
}

// Status reports whether the ring is full.
func (br *ByteRing) Status() (bool, error) {
	if br == nil {
		return false, fmt.Errorf("%w: nil ring", ErrInvalidArgument)
	}
	return br.isFull, nil
}

// Reset discards all buffered elements without touching storage.
func (br *ByteRing) Reset() {
	br.reset(br.capacity)
}

func (br *ByteRing) Len() int         { return br.len() }
func (br *ByteRing) Cap() int         { return br.capacity }
func (br *ByteRing) ElementSize() int { return br.elementSize }
func (br *ByteRing) IsEmpty() bool    { return br.empty() }
func (br *ByteRing) IsFull() bool     { return br.isFull }
func (br *ByteRing) State() State     { return br.state() }
