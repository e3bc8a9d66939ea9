package alloc

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// Tracker is an Allocator that counts live blocks and can be told to refuse blocks,
// either at random with a fixed probability or deterministically after a number of
// successful acquires.
//
// The counters are safe to update from several goroutines, so one Tracker can back
// several queues. Each queue itself still has a single owner.
type Tracker struct {
	live      [numKinds]*xsync.Counter
	liveBytes *xsync.Counter
	acquired  *xsync.Counter
	released  *xsync.Counter

	mu          sync.Mutex
	rng         *rand.Rand
	failPercent int
	failAfter   int
	sinceFail   int
}

var _ Allocator = (*Tracker)(nil)

// NewTracker creates a Tracker that refuses nothing, then applies opts.
func NewTracker(opts ...TrackerOption) (*Tracker, error) {
	t := &Tracker{
		liveBytes: xsync.NewCounter(),
		acquired:  xsync.NewCounter(),
		released:  xsync.NewCounter(),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec
	}
	for i := range t.live {
		t.live[i] = xsync.NewCounter()
	}

	for _, opt := range opts {
		if err := opt.apply(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Acquire implements Allocator.
//
// It returns ErrAllocationRefused when fault injection decides that this block fails.
// A refused block is not counted.
func (t *Tracker) Acquire(kind Kind, size int) error {
	if t.shouldFail() {
		return fmt.Errorf("%w: %s block of %d bytes", ErrAllocationRefused, kind, size)
	}

	t.live[kind].Inc()
	t.liveBytes.Add(int64(size))
	t.acquired.Inc()

	return nil
}

// Release implements Allocator.
func (t *Tracker) Release(kind Kind, size int) {
	t.live[kind].Dec()
	t.liveBytes.Add(-int64(size))
	t.released.Inc()
}

func (t *Tracker) shouldFail() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failAfter > 0 {
		if t.sinceFail >= t.failAfter {
			t.sinceFail = 0
			return true
		}
		t.sinceFail++
	}

	if t.failPercent > 0 && t.rng.IntN(100) < t.failPercent {
		return true
	}

	return false
}

// Live returns the number of blocks of the given kind currently held.
func (t *Tracker) Live(kind Kind) int64 {
	if kind >= numKinds {
		return 0
	}
	return t.live[kind].Value()
}

// LiveBytes returns the total size of all blocks currently held.
func (t *Tracker) LiveBytes() int64 {
	return t.liveBytes.Value()
}

// Acquired returns the number of successful acquires since creation or the last Reset.
func (t *Tracker) Acquired() int64 {
	return t.acquired.Value()
}

// Released returns the number of releases since creation or the last Reset.
func (t *Tracker) Released() int64 {
	return t.released.Value()
}

// FailProbability returns the current fail probability in percent.
func (t *Tracker) FailProbability() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.failPercent
}

// SetFailProbability changes the fail probability, in percent, for subsequent acquires.
func (t *Tracker) SetFailProbability(percent int) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidFailProbability
	}

	t.mu.Lock()
	t.failPercent = percent
	t.mu.Unlock()

	return nil
}

// Leaks returns nil when no block is held, otherwise an error wrapping ErrLeak that
// lists the live count of every kind that still holds blocks.
func (t *Tracker) Leaks() error {
	var parts []string
	for k := Kind(0); k < numKinds; k++ {
		if n := t.live[k].Value(); n != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, n))
		}
	}
	if len(parts) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s (%d bytes)", ErrLeak, strings.Join(parts, ", "), t.liveBytes.Value())
}

// Reset clears all counters. The fault injection settings are kept.
func (t *Tracker) Reset() {
	for _, c := range t.live {
		c.Reset()
	}
	t.liveBytes.Reset()
	t.acquired.Reset()
	t.released.Reset()

	t.mu.Lock()
	t.sinceFail = 0
	t.mu.Unlock()
}
