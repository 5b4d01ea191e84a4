package ringbuffer

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func TestNewSPSCInvalidSize(t *testing.T) {
	if _, err := NewSPSC[int](0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSPSCScenario(t *testing.T) {
	q, _ := NewSPSC[int32](5)
	for _, v := range []int32{0, 1, 2} {
		_ = q.Push(v)
	}
	for _, want := range []int32{0, 1} {
		if got, _ := q.Pop(); got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
	_ = q.Push(99)
	_ = q.Push(100)
	for _, want := range []int32{2, 99, 100} {
		got, err := q.Pop()
		if err != nil || got != want {
			t.Errorf("expected %d, got %d (%v)", want, got, err)
		}
	}
	if _, err := q.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestSPSCFull(t *testing.T) {
	// A capacity that is not a power of two.
	q, _ := NewSPSC[int](3)
	for i := 0; i < 3; i++ {
		if err := q.Push(i); err != nil {
			t.Fatal(err)
		}
	}
	if err := q.Push(3); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
	if q.Len() != 3 || q.Cap() != 3 {
		t.Errorf("expected len 3 cap 3, got len %d cap %d", q.Len(), q.Cap())
	}
}

// TestSPSCConcurrent runs one producer against one consumer and checks the
// consumer sees every value exactly once, in order.
func TestSPSCConcurrent(t *testing.T) {
	const total = 100000
	q, _ := NewSPSC[int](64)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			for errors.Is(q.Push(i), ErrFull) {
				runtime.Gosched()
			}
		}
	}()

	for want := 0; want < total; {
		got, err := q.Pop()
		if errors.Is(err, ErrEmpty) {
			runtime.Gosched()
			continue
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
		want++
	}
	wg.Wait()

	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
}

func BenchmarkSPSC(b *testing.B) {
	q, _ := NewSPSC[int](1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = q.Push(i)
		_, _ = q.Pop()
	}
}
