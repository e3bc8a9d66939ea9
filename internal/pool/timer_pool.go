package pool

import (
	"sync"
	"time"
)

var timerPool sync.Pool

// GetTimer returns a timer that fires after d, reusing a pooled timer when one is available.
//
// The console takes one timer per timed queue operation; return it with PutTimer.
func GetTimer(d time.Duration) *time.Timer {
	if v := timerPool.Get(); v != nil {
		t, _ := v.(*time.Timer) // only *time.Timer values are ever put into the pool
		if t.Reset(d) {
			// t was still active, drop a stale expiry
			select {
			case <-t.C:
			default:
			}
		}
		return t
	}
	return time.NewTimer(d)
}

// PutTimer stops t and returns it to the pool.
//
// t cannot be accessed after returning to the pool.
func PutTimer(t *time.Timer) {
	if !t.Stop() {
		// drain t.C if the expiry was never received
		select {
		case <-t.C:
		default:
		}
	}
	timerPool.Put(t)
}
