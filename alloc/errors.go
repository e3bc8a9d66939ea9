package alloc

import "errors"

var (
	// ErrAllocationRefused indicates that an allocator refused to hand out a block.
	ErrAllocationRefused = errors.New("allocation refused")

	// ErrLeak indicates that blocks acquired from a tracker were never released.
	ErrLeak = errors.New("blocks still allocated")
)

var (
	// ErrInvalidFailProbability indicates a fail probability outside of [0, 100].
	ErrInvalidFailProbability = errors.New("fail probability out of range [0, 100]")

	// ErrInvalidFailAfter indicates a negative fail-after count.
	ErrInvalidFailAfter = errors.New("fail after count should not be negative")
)
