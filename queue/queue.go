package queue

import (
	"fmt"

	"github.com/arloliu/go-strqueue/alloc"
	"github.com/arloliu/go-strqueue/internal/util"
	"github.com/arloliu/go-strqueue/logger"
)

// Queue is an ordered container of text values.
//
// The zero value is not usable; create queues with New.
type Queue struct {
	head  *element
	tail  *element
	count int

	allocator alloc.Allocator
	logger    logger.Logger
}

// New creates an empty queue configured by opts.
//
// It returns an error wrapping ErrAllocationFailure when the allocator refuses the queue
// block, or the error of the first invalid option. No queue is returned on error.
func New(opts ...Option) (*Queue, error) {
	q := &Queue{
		allocator: alloc.Default(),
		logger:    logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(q); err != nil {
			return nil, err
		}
	}

	if err := q.allocator.Acquire(alloc.QueueBlock, queueBlockSize); err != nil {
		q.logger.Debug("failed to allocate queue", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}

	return q, nil
}

// Destroy releases every element still held by the queue, then the queue itself.
//
// It is safe to call on an empty queue and on a nil queue. The queue must not be used
// after Destroy returns; doing so, including calling Destroy a second time, is a
// precondition violation with undefined results.
func (q *Queue) Destroy() {
	if q == nil {
		return
	}

	for q.head != nil {
		e := q.head
		q.head = e.next
		q.releaseElement(e)
	}
	q.tail = nil
	q.count = 0

	q.allocator.Release(alloc.QueueBlock, queueBlockSize)
}

// InsertHead copies value into a new element and links it in front of the head.
//
// It returns false and leaves the queue unchanged when q is nil or storage for the
// element cannot be allocated.
func (q *Queue) InsertHead(value string) bool {
	if q == nil {
		return false
	}

	e := q.newElement(value)
	if e == nil {
		return false
	}

	e.next = q.head
	q.head = e
	if q.tail == nil {
		q.tail = e
	}
	q.count++

	return true
}

// InsertTail copies value into a new element and links it after the tail.
//
// It runs in constant time and has the same failure behavior as InsertHead.
func (q *Queue) InsertTail(value string) bool {
	if q == nil {
		return false
	}

	e := q.newElement(value)
	if e == nil {
		return false
	}

	if q.tail == nil {
		q.head = e
	} else {
		q.tail.next = e
	}
	q.tail = e
	q.count++

	return true
}

// RemoveHead removes the head element and copies its value into buf.
//
// At most len(buf)-1 bytes of the value are copied, followed by a zero terminator; an
// empty buf receives nothing. A nil buf discards the value, but the element is still
// removed. RemoveHead returns false without changing anything when q is nil or empty.
func (q *Queue) RemoveHead(buf []byte) bool {
	e := q.unlinkHead()
	if e == nil {
		return false
	}

	if buf != nil {
		util.CopyTerminated(buf, e.value)
	}
	q.releaseElement(e)

	return true
}

// PopHead removes the head element and returns a copy of its whole value.
//
// It returns false when q is nil or empty.
func (q *Queue) PopHead() (string, bool) {
	e := q.unlinkHead()
	if e == nil {
		return "", false
	}

	value := string(e.value)
	q.releaseElement(e)

	return value, true
}

// Size returns the number of elements in the queue, or 0 for a nil queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.count
}

// IsEmpty returns true if the queue is nil or holds no element.
func (q *Queue) IsEmpty() bool {
	return q.Size() == 0
}

// Reverse reverses the order of the elements by relinking them in place.
//
// No element is allocated or released; the former tail becomes the head and the former
// head becomes the tail. It is a no-op for nil, empty and single-element queues.
func (q *Queue) Reverse() {
	if q == nil || q.count < 2 {
		return
	}

	var prev *element
	cur := q.head
	q.tail = cur
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	q.head = prev
}

// unlinkHead detaches the head element and returns it, or returns nil if there is none.
// The caller owns the returned element and must release it.
func (q *Queue) unlinkHead() *element {
	if q == nil || q.head == nil {
		return nil
	}

	e := q.head
	q.head = e.next
	e.next = nil
	q.count--
	if q.count == 0 {
		q.tail = nil
	}

	return e
}

// newElement acquires the element and value blocks and returns an unlinked element holding
// a copy of value. It returns nil if either block is refused, in which case nothing stays
// acquired.
func (q *Queue) newElement(value string) *element {
	if err := q.allocator.Acquire(alloc.ElementBlock, elementBlockSize); err != nil {
		q.logger.Debug("failed to allocate element", "error", err)
		return nil
	}

	if err := q.allocator.Acquire(alloc.ValueBlock, len(value)+1); err != nil {
		q.allocator.Release(alloc.ElementBlock, elementBlockSize)
		q.logger.Debug("failed to allocate element value", "size", len(value)+1, "error", err)
		return nil
	}

	e := getElement()
	e.value = []byte(value)
	e.next = nil

	return e
}

// releaseElement gives back the blocks held by an unlinked element.
func (q *Queue) releaseElement(e *element) {
	q.allocator.Release(alloc.ValueBlock, valueBlockSize(e.value))
	q.allocator.Release(alloc.ElementBlock, elementBlockSize)
	putElement(e)
}
