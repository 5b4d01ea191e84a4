/*
Package ringbuffer provides fixed-capacity circular buffers with FIFO
push/pop semantics and explicit full/empty tracking.

Storage is bounded and allocated once, either by the constructor or by the
caller. Push and Pop never allocate and never block: they succeed, or fail
at once with ErrFull or ErrEmpty.

Usage:

Create a buffer that owns its storage:

	rb, err := ringbuffer.New[int](32)
	if err != nil {
		return err
	}
	if err := rb.Push(42); errors.Is(err, ringbuffer.ErrFull) {
		// back off and retry later
	}
	v, err := rb.Pop() // 42

Or bind a zero-value descriptor to storage you already have:

	var slots [32]int
	var rb ringbuffer.RingBuffer[int]
	if err := rb.Init(slots[:]); err != nil {
		return err
	}

Opaque Elements:

ByteRing stores fixed-size byte blocks in a caller-supplied region, for
element types known only by their size:

	storage := make([]byte, 16*8)
	var br ringbuffer.ByteRing
	_ = br.Init(storage, 16, 8)
	_ = br.Push(elem)   // copies 8 bytes in
	_ = br.Pop(out)     // copies 8 bytes out

Status:

Status returns only the full flag. Len, Free and State report the exact
fill level:

	full, _ := rb.Status()
	fmt.Println(full, rb.Len(), rb.State()) // false 0 empty

Concurrency:

RingBuffer and ByteRing are not safe for concurrent use. Serialized wraps a
RingBuffer behind an owner goroutine for any number of goroutines, and SPSC
is a lock-free variant for one producer and one consumer. Both keep the
same non-blocking ErrFull/ErrEmpty contract.

	s, _ := ringbuffer.NewSerialized[string](10)
	defer s.Stop()

	go func() { _ = s.TryPush("hello") }()

	if item, err := s.TryPop(); err == nil {
		fmt.Println(item)
	}

Types that hold resources can implement Cleanable; Serialized calls
Cleanup on items still buffered when Stop is called.
*/
package ringbuffer
