package ringbuffer

// State is the fill level of a buffer.
type State int

const (
	StateEmpty State = iota
	StatePartial
	StateFull
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	}
	return "unknown"
}

// cursors holds the head/tail/full bookkeeping shared by RingBuffer and
// ByteRing. The element count is always derived, never stored.
type cursors struct {
	// head is the index where the next item will be written.
	head int
	// tail is the index of the next item to be read.
	tail int
	// capacity is the slot count, fixed at initialization.
	capacity int
	// isFull tells a full buffer apart from an empty one when head == tail.
	isFull bool
}

func (c *cursors) reset(capacity int) {
	c.head = 0
	c.tail = 0
	c.capacity = capacity
	c.isFull = false
}

func (c *cursors) empty() bool {
	return !c.isFull && c.head == c.tail
}

// advanceHead moves the write cursor after a slot has been filled.
func (c *cursors) advanceHead() {
	c.head++
	if c.head == c.capacity {
		c.head = 0
	}
	c.isFull = c.head == c.tail
}

// advanceTail moves the read cursor after a slot has been consumed. A pop
// always frees a slot, so the buffer can never stay full.
func (c *cursors) advanceTail() {
	c.tail++
	if c.tail == c.capacity {
		c.tail = 0
	}
	c.isFull = false
}

func (c *cursors) len() int {
	if c.isFull {
		return c.capacity
	}
	if c.head >= c.tail {
		return c.head - c.tail
	}
	return c.capacity - c.tail + c.head
}

func (c *cursors) state() State {
	switch {
	case c.isFull:
		return StateFull
	case c.head == c.tail:
		return StateEmpty
	}
	return StatePartial
}
