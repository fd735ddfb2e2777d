package hidapi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportQueue_FIFOOrder(t *testing.T) {
	q := newReportQueue()

	q.push([]byte{0x01, 0xaa})
	q.push([]byte{0x02, 0xbb})
	q.push([]byte{0x03, 0xcc})

	q.mu.Lock()
	first := q.popLocked()
	second := q.popLocked()
	third := q.popLocked()
	q.mu.Unlock()

	assert.Equal(t, []byte{0x01, 0xaa}, first)
	assert.Equal(t, []byte{0x02, 0xbb}, second)
	assert.Equal(t, []byte{0x03, 0xcc}, third)
	assert.Equal(t, 0, q.len())
}

func TestReportQueue_EvictsOldestWhenFull(t *testing.T) {
	q := newReportQueue()

	for i := 0; i < maxQueuedReports; i++ {
		dropped := q.push([]byte{byte(i)})
		assert.False(t, dropped, "push %d should not drop", i)
	}
	require.Equal(t, maxQueuedReports, q.len())

	// One past capacity: the oldest entry goes, the newest stays.
	dropped := q.push([]byte{0xff})
	assert.True(t, dropped)
	assert.Equal(t, maxQueuedReports, q.len())

	// Survivors are entries 1..29 in arrival order, then the new entry.
	for i := 1; i < maxQueuedReports; i++ {
		q.mu.Lock()
		rep := q.popLocked()
		q.mu.Unlock()
		assert.Equal(t, []byte{byte(i)}, rep)
	}
	q.mu.Lock()
	last := q.popLocked()
	q.mu.Unlock()
	assert.Equal(t, []byte{0xff}, last)
}

func TestReportQueue_PushWakesWaiter(t *testing.T) {
	q := newReportQueue()

	q.mu.Lock()
	wake := q.wake
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		<-wake
		close(done)
	}()

	q.push([]byte{0x01})
	<-done
}

func TestReportQueue_BroadcastReleasesAllWaiters(t *testing.T) {
	q := newReportQueue()

	q.mu.Lock()
	wake := q.wake
	q.mu.Unlock()

	done := make(chan struct{}, 3)
	for i := 0; i < 3; i++ {
		go func() {
			<-wake
			done <- struct{}{}
		}()
	}

	q.broadcast()
	for i := 0; i < 3; i++ {
		<-done
	}
}

func TestReportQueue_RoundTripBatch(t *testing.T) {
	q := newReportQueue()

	for i := 0; i < maxQueuedReports; i++ {
		q.push([]byte{0x01, byte(i)})
	}

	for i := 0; i < maxQueuedReports; i++ {
		q.mu.Lock()
		require.NotEmpty(t, q.reports)
		rep := q.popLocked()
		q.mu.Unlock()
		assert.Equal(t, []byte{0x01, byte(i)}, rep, fmt.Sprintf("report %d", i))
	}
	assert.Equal(t, 0, q.len())
}
