package queue

import "bytes"

// Sort orders the elements ascending by byte-wise comparison of their values.
//
// The sort is a stable merge sort that relinks the existing elements; values are never
// copied and no element is allocated or released. It is a no-op for nil, empty and
// single-element queues.
func (q *Queue) Sort() {
	if q == nil || q.count < 2 {
		return
	}

	q.head = mergeSort(q.head)

	tail := q.head
	for tail.next != nil {
		tail = tail.next
	}
	q.tail = tail
}

// mergeSort sorts the nil-terminated chain starting at head and returns the new head.
func mergeSort(head *element) *element {
	if head == nil || head.next == nil {
		return head
	}

	// slow stops on the last element of the first half
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	second := slow.next
	slow.next = nil

	return merge(mergeSort(head), mergeSort(second))
}

// merge merges two sorted chains. On equal values the element from a comes first.
func merge(a, b *element) *element {
	var head element
	last := &head
	for a != nil && b != nil {
		if bytes.Compare(b.value, a.value) < 0 {
			last.next = b
			b = b.next
		} else {
			last.next = a
			a = a.next
		}
		last = last.next
	}

	if a != nil {
		last.next = a
	} else {
		last.next = b
	}

	return head.next
}
