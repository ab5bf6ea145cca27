package audio

import (
	"sync"
	"sync/atomic"

	"github.com/spectralab/sgram/logging"
)

// CaptureQueue is the boundary between an audio-device callback and the
// processing pipeline. Push never blocks: when the queue is full the block
// is dropped so the device callback always returns immediately. Losing
// stale audio is preferred over stalling the capture stream.
type CaptureQueue struct {
	blocks  chan []float32
	dropped atomic.Uint64

	mtx    sync.RWMutex
	closed bool
}

// NewCaptureQueue creates a queue holding up to capacity mono blocks.
// Capacities below 1 are clamped to 1.
func NewCaptureQueue(capacity int) *CaptureQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &CaptureQueue{
		blocks: make(chan []float32, capacity),
	}
}

// Push copies block into the queue. It returns false when the block was
// dropped because the queue was full or closed. Safe to call from a
// realtime capture callback: it never blocks.
func (q *CaptureQueue) Push(block []float32) bool {
	q.mtx.RLock()
	defer q.mtx.RUnlock()

	if q.closed {
		return false
	}

	owned := make([]float32, len(block))
	copy(owned, block)

	select {
	case q.blocks <- owned:
		return true
	default:
		n := q.dropped.Add(1)
		logging.Debug("capture queue full, dropping block", logging.Fields{
			"dropped_total": n,
			"block_samples": len(block),
		})
		return false
	}
}

// Next blocks until a block is available. ok is false once the queue has
// been closed and drained.
func (q *CaptureQueue) Next() (block []float32, ok bool) {
	block, ok = <-q.blocks
	return block, ok
}

// Dropped returns how many blocks have been discarded so far.
func (q *CaptureQueue) Dropped() uint64 {
	return q.dropped.Load()
}

// Close stops the queue. Pending blocks remain readable through Next.
func (q *CaptureQueue) Close() {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	if !q.closed {
		q.closed = true
		close(q.blocks)
	}
}
