// Package alloc accounts for the storage blocks owned by a queue.
//
// A queue never calls into the Go allocator blindly: every queue header, element and
// element value is first acquired from an Allocator and released back to it when the
// queue drops it. This makes two things observable that the Go runtime normally hides:
//
//   - Allocation failure: an Allocator may refuse a block, and the queue must then
//     report failure and leave itself unchanged.
//   - Leaks: a Tracker counts live blocks per kind, so a caller can verify that a
//     destroyed queue released everything it owned.
//
// Default returns an allocator that never fails and keeps no state. NewTracker returns
// a counting allocator with optional fault injection:
//
//	tracker, _ := alloc.NewTracker(alloc.WithFailProbability(10))
//	q, err := queue.New(queue.WithAllocator(tracker))
//	if err != nil {
//	    // the queue header was refused
//	}
//	q.InsertTail("hello") // may return false, roughly one time in ten
//	q.Destroy()
//	if err := tracker.Leaks(); err != nil {
//	    // some block was never released
//	}
package alloc
