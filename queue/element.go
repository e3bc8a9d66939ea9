package queue

import (
	"sync"
	"unsafe"
)

// element is one stored value and the link to the element after it.
type element struct {
	value []byte
	next  *element
}

var (
	elementBlockSize = int(unsafe.Sizeof(element{}))
	queueBlockSize   = int(unsafe.Sizeof(Queue{}))
)

// valueBlockSize returns the block size accounted for a value, terminator included.
func valueBlockSize(value []byte) int {
	return len(value) + 1
}

var elementPool = sync.Pool{New: func() any { return &element{} }}

func getElement() *element {
	if usePool {
		e, _ := elementPool.Get().(*element)
		if e == nil {
			return &element{}
		}
		return e
	}

	return &element{}
}

// putElement clears e and hands it back to the pool. e must not be reachable from any queue.
func putElement(e *element) {
	e.value = nil
	e.next = nil
	if usePool {
		elementPool.Put(e)
	}
}

var usePool = true

// IsUsePool returns if elements are recycled through a pool.
func IsUsePool() bool {
	return usePool
}

// UsePool sets whether released elements are recycled through a pool.
//
// It should be set before any queue is created.
func UsePool(val bool) {
	usePool = val
}
