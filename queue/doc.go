// Package queue provides Queue, an ordered container of text values backed by a
// singly linked chain of elements.
//
// A Queue supports insertion at both ends, removal at the head, a constant time size
// query, in-place reversal and a stable ascending sort. Values are always copied: an
// insert copies the caller's string into storage owned by the queue, and a removal
// copies the stored value out to the caller before the element is released.
//
// Operations report failure through their boolean result rather than through errors:
// inserting fails when the queue's allocator refuses a block, and removal fails when the
// queue is empty. A failed operation leaves the queue unchanged. All methods are safe to
// call on a nil *Queue, which behaves as an empty queue that cannot be inserted into.
//
// A Queue is not safe for concurrent use. The caller must hold exclusive access to a
// queue for the duration of each call.
//
// Usage Example:
//
//	q, err := queue.New()
//	if err != nil {
//	    return err
//	}
//	defer q.Destroy()
//
//	q.InsertTail("c")
//	q.InsertTail("a")
//	q.InsertHead("b")
//	q.Sort()
//
//	buf := make([]byte, 16)
//	for q.RemoveHead(buf) {
//	    // buf holds "a", "b", "c" in turn, zero terminated
//	}
package queue
