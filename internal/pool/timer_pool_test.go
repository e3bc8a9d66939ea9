package pool

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerPool(t *testing.T) {
	assert := assert.New(t)

	t.Run("Reuse Fires With New Duration", func(t *testing.T) {
		timer := GetTimer(time.Hour)
		assert.NotNil(timer)
		PutTimer(timer)

		begin := time.Now()
		timer = GetTimer(20 * time.Millisecond)
		defer PutTimer(timer)

		select {
		case <-timer.C:
			assert.GreaterOrEqual(time.Since(begin), 15*time.Millisecond)
		case <-time.After(time.Second):
			t.Error("timer should fire after 20ms")
		}
	})

	t.Run("Expired Timer Is Drained", func(t *testing.T) {
		timer := GetTimer(time.Millisecond)
		time.Sleep(10 * time.Millisecond) // let it expire without receiving
		PutTimer(timer)

		timer = GetTimer(100 * time.Millisecond)
		defer PutTimer(timer)

		select {
		case <-timer.C:
			t.Error("stale expiry should have been drained")
		case <-time.After(30 * time.Millisecond):
		}
	})

	t.Run("Concurrency", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				timer := GetTimer(5 * time.Millisecond)
				defer PutTimer(timer)
				<-timer.C
			}()
		}
		wg.Wait()
	})
}
