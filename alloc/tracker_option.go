package alloc

import "math/rand/v2"

// TrackerOption represents a functional option for configuring a Tracker.
type TrackerOption interface {
	apply(*Tracker) error
}

type trackerOptFunc struct {
	name      string
	applyFunc func(*Tracker) error
}

func (o *trackerOptFunc) apply(t *Tracker) error { return o.applyFunc(t) }

func newTrackerOptFunc(name string, f func(*Tracker) error) *trackerOptFunc {
	return &trackerOptFunc{name: name, applyFunc: f}
}

// WithFailProbability sets the probability, in percent, that an acquire is refused.
// It should be between 0 and 100. Defaults to 0.
func WithFailProbability(percent int) TrackerOption {
	return newTrackerOptFunc("WithFailProbability", func(t *Tracker) error {
		if percent < 0 || percent > 100 {
			return ErrInvalidFailProbability
		}
		t.failPercent = percent

		return nil
	})
}

// WithFailAfter makes the tracker refuse the acquire that follows n successful acquires,
// then start counting again. Zero disables it. Defaults to 0.
func WithFailAfter(n int) TrackerOption {
	return newTrackerOptFunc("WithFailAfter", func(t *Tracker) error {
		if n < 0 {
			return ErrInvalidFailAfter
		}
		t.failAfter = n
		t.sinceFail = 0

		return nil
	})
}

// WithSeed seeds the random source used by WithFailProbability, making refusals reproducible.
func WithSeed(seed uint64) TrackerOption {
	return newTrackerOptFunc("WithSeed", func(t *Tracker) error {
		t.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec

		return nil
	})
}
