package queue

import "errors"

var (
	// ErrAllocationFailure indicates that the queue's allocator refused a block the queue needed.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrAllocatorNil indicates that a nil allocator was provided.
	ErrAllocatorNil = errors.New("allocator is nil")

	// ErrLoggerNil indicates that a nil logger was provided.
	ErrLoggerNil = errors.New("logger is nil")
)
