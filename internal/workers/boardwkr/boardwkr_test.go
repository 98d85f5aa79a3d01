package boardwkr

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	mu    sync.Mutex
	calls int
}

func (f *countingRefresher) Refresh(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

func (f *countingRefresher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestWorkerRefreshesUntilCancelled(t *testing.T) {
	fake := &countingRefresher{}
	w := &Worker{
		interval: time.Millisecond,
		timeout:  time.Second,
		board:    fake,
	}

	cancel := w.do()
	assert.Eventually(t, func() bool {
		return fake.count() > 0
	}, time.Second, time.Millisecond, "worker must run a refresh batch")

	cancel()
	time.Sleep(20 * time.Millisecond)

	settled := fake.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, fake.count(), "no refresh batches may run after cancellation")
}
