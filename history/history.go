// Package history keeps the bounded, newest-first sequence of spectral
// rows that render and export collaborators read from.
package history

import "math"

const (
	minCapacity = 16
	minZoom     = 1.0
	maxZoom     = 64.0
)

// Buffer is a bounded double-ended sequence of rows, newest first. It is
// owned and mutated by the consumer side of the pipeline only; readers get
// copies through Snapshot.
//
// Zoom truncation happens at push time: rows already stored keep whatever
// resolution they were captured at when the zoom changes later.
type Buffer struct {
	rows [][]float32 // oldest at index 0, newest at the end
	max  int
	zoom float64
}

// New creates a buffer holding up to maxHistory rows (minimum 16).
func New(maxHistory int) *Buffer {
	if maxHistory < minCapacity {
		maxHistory = minCapacity
	}
	return &Buffer{
		rows: make([][]float32, 0, maxHistory),
		max:  maxHistory,
		zoom: minZoom,
	}
}

// SetZoom updates the zoom factor applied to subsequently pushed rows,
// clamped to [1, 64].
func (b *Buffer) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	b.zoom = zoom
}

// Zoom returns the active zoom factor.
func (b *Buffer) Zoom() float64 { return b.zoom }

// Cap returns the maximum number of rows retained.
func (b *Buffer) Cap() int { return b.max }

// Len returns the number of rows currently stored.
func (b *Buffer) Len() int { return len(b.rows) }

// Push truncates row to round(bins/zoom) entries (minimum 1), inserts it
// as the newest row and evicts the oldest rows beyond capacity.
func (b *Buffer) Push(row []float32) {
	take := int(math.Round(float64(len(row)) / b.zoom))
	if take < 1 {
		take = 1
	}
	if take < len(row) {
		row = row[:take]
	}

	b.rows = append(b.rows, row)
	if over := len(b.rows) - b.max; over > 0 {
		b.rows = append(b.rows[:0], b.rows[over:]...)
	}
}

// At returns the i-th row, newest first. It returns nil when i is out of
// range.
func (b *Buffer) At(i int) []float32 {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[len(b.rows)-1-i]
}

// Snapshot returns a newest-first copy of the stored rows, safe to hand to
// render or export collaborators.
func (b *Buffer) Snapshot() [][]float32 {
	out := make([][]float32, len(b.rows))
	for i := range b.rows {
		src := b.rows[len(b.rows)-1-i]
		row := make([]float32, len(src))
		copy(row, src)
		out[i] = row
	}
	return out
}

// Clear empties the buffer immediately.
func (b *Buffer) Clear() {
	b.rows = b.rows[:0]
}
