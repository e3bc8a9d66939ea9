package queue

import (
	"github.com/arloliu/go-strqueue/alloc"
	"github.com/arloliu/go-strqueue/logger"
)

// Option represents a functional option for configuring a Queue.
type Option interface {
	apply(*Queue) error
}

type optFunc struct {
	name      string
	applyFunc func(*Queue) error
}

func (o *optFunc) apply(q *Queue) error { return o.applyFunc(q) }

func newOptFunc(name string, f func(*Queue) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithAllocator sets the allocator that accounts for the queue's blocks.
//
// Defaults to alloc.Default(), which never refuses a block.
func WithAllocator(a alloc.Allocator) Option {
	return newOptFunc("WithAllocator", func(q *Queue) error {
		if a == nil {
			return ErrAllocatorNil
		}
		q.allocator = a

		return nil
	})
}

// WithLogger sets the logger used to report refused allocations.
//
// Defaults to logger.GetLogger().
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(q *Queue) error {
		if l == nil {
			return ErrLoggerNil
		}
		q.logger = l

		return nil
	})
}
