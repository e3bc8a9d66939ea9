// Package qtest provides a small command interpreter for exercising a queue.Queue from a
// script or an interactive session.
//
// Each input line holds one command and its arguments separated by spaces. Blank lines and
// lines starting with '#' are ignored.
//
//	new             create a new queue, destroying the current one
//	free            destroy the current queue
//	ih str [n]      insert str at the head, n times (default 1)
//	it str [n]      insert str at the tail, n times (default 1)
//	rh [str]        remove the head, checking its value against str when given
//	rhq             remove the head without reading its value
//	size [n]        print the size, checking it against n when given
//	reverse         reverse the queue
//	sort            sort the queue ascending
//	option [n v]    print the options, or set option n to v
//	help            print the command list
//	quit            stop reading commands
//
// The queue is backed by an alloc.Tracker. With a fail probability set, inserts and queue
// creation may be refused; such refusals are reported but are not errors. Failed checks,
// use of a missing queue and leaked blocks after free are errors, and Run reports them
// through ErrCommandsFailed once the input is exhausted.
package qtest
