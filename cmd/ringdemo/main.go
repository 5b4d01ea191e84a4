// Command ringdemo pushes and pops a few element types through the ring
// buffers and prints what comes back out.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"log"
	"math"

	ringbuffer "github.com/jonoton/go-fixedring"
)

type record struct {
	ID   int32
	Name [16]byte
}

func newRecord(id int32, name string) record {
	r := record{ID: id}
	copy(r.Name[:], name)
	return r
}

func (r record) name() string {
	n := 0
	for n < len(r.Name) && r.Name[n] != 0 {
		n++
	}
	return string(r.Name[:n])
}

func main() {
	capacity := flag.Int("capacity", 32, "slots per ring")
	n := flag.Int("n", 1, "elements pushed per demo")
	flag.Parse()

	if err := run(*capacity, *n); err != nil {
		log.Fatalf("ringdemo: %v", err)
	}
}

func run(capacity, n int) error {
	ints := make([]int32, capacity)
	var intRing ringbuffer.RingBuffer[int32]
	if err := intRing.Init(ints); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		pushLog(intRing.Push(int32(i-1)), "int", i-1)
	}
	drain(intRing.Pop, "int")

	floats, err := ringbuffer.New[float32](capacity)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		v := float32(i) + 0.5
		pushLog(floats.Push(v), "float", v)
	}
	drain(floats.Pop, "float")

	records := make([]record, capacity)
	var recordRing ringbuffer.RingBuffer[record]
	if err := recordRing.Init(records); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		r := newRecord(int32(i+1), "Test")
		if err := recordRing.Push(r); err != nil {
			log.Printf("failed to push struct: %v", err)
			continue
		}
		log.Printf("pushed: id=%d, name=%s", r.ID, r.name())
	}
	for {
		r, err := recordRing.Pop()
		if err != nil {
			logEmpty(err, "struct")
			break
		}
		log.Printf("popped: id=%d, name=%s", r.ID, r.name())
	}

	return runBytes(capacity, n)
}

// runBytes stores float32 values as raw 4-byte blocks in a ByteRing.
func runBytes(capacity, n int) error {
	const size = 4
	storage := make([]byte, capacity*size)
	var br ringbuffer.ByteRing
	if err := br.Init(storage, capacity, size); err != nil {
		return err
	}
	var elem [size]byte
	for i := 0; i < n; i++ {
		v := float32(i) * 1.25
		binary.LittleEndian.PutUint32(elem[:], math.Float32bits(v))
		pushLog(br.Push(elem[:]), "bytes", v)
	}
	for {
		if err := br.Pop(elem[:]); err != nil {
			logEmpty(err, "bytes")
			break
		}
		log.Printf("popped bytes: %v", math.Float32frombits(binary.LittleEndian.Uint32(elem[:])))
	}
	return nil
}

func pushLog(err error, kind string, v any) {
	if err != nil {
		log.Printf("failed to push %s %v: %v", kind, v, err)
		return
	}
	log.Printf("pushed %s: %v", kind, v)
}

func drain[T any](pop func() (T, error), kind string) {
	for {
		v, err := pop()
		if err != nil {
			logEmpty(err, kind)
			return
		}
		log.Printf("popped %s: %v", kind, v)
	}
}

func logEmpty(err error, kind string) {
	if !errors.Is(err, ringbuffer.ErrEmpty) {
		log.Printf("failed to pop %s: %v", kind, err)
	}
}
