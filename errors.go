package ringbuffer

import "errors"

var (
	// ErrInvalidArgument is returned when a required reference is missing or
	// a size is zero. Validation happens before any state is touched.
	ErrInvalidArgument = errors.New("ringbuffer: invalid argument")
	// ErrFull is returned by a push when the buffer already holds Cap items.
	ErrFull = errors.New("ringbuffer: buffer is full")
	// ErrEmpty is returned by a pop when the buffer holds no items.
	ErrEmpty = errors.New("ringbuffer: buffer is empty")
	// ErrStopped is returned by a Serialized buffer after Stop.
	ErrStopped = errors.New("ringbuffer: buffer is stopped")
)
