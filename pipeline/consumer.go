package pipeline

import (
	"time"

	"github.com/spectralab/sgram/dsp/spectral"
	"github.com/spectralab/sgram/history"
)

// maxRowsPerTick bounds how many rows one tick may drain so a backlog
// cannot starve the render loop.
const maxRowsPerTick = 1024

// Consumer drains the row channel into a history buffer from a
// fixed-interval tick loop and keeps a rows-per-second statistic. It is
// the sole owner of the history buffer.
type Consumer struct {
	hist *history.Buffer

	rowsSinceStats int
	lastStats      time.Time
	rowsPerSec     float64
	totalRows      int
}

// NewConsumer creates a consumer feeding hist.
func NewConsumer(hist *history.Buffer) *Consumer {
	return &Consumer{
		hist:      hist,
		lastStats: time.Now(),
	}
}

// History returns the buffer this consumer feeds.
func (c *Consumer) History() *history.Buffer {
	return c.hist
}

// Tick drains whatever rows are currently available, up to the per-tick
// bound, without blocking. open is false once the channel has been closed
// and fully drained: the stream has ended and no further rows will come.
func (c *Consumer) Tick(rows <-chan spectral.Row) (drained int, open bool) {
	open = true

	for drained < maxRowsPerTick {
		select {
		case row, ok := <-rows:
			if !ok {
				open = false
				c.updateStats()
				return drained, open
			}
			c.hist.Push(row)
			drained++
			c.rowsSinceStats++
			c.totalRows++
		default:
			c.updateStats()
			return drained, open
		}
	}

	c.updateStats()
	return drained, open
}

// updateStats refreshes the rows-per-second figure once per second.
func (c *Consumer) updateStats() {
	now := time.Now()
	if elapsed := now.Sub(c.lastStats); elapsed >= time.Second {
		c.rowsPerSec = float64(c.rowsSinceStats) / elapsed.Seconds()
		c.rowsSinceStats = 0
		c.lastStats = now
	}
}

// RowsPerSecond returns the most recent once-per-second throughput figure.
func (c *Consumer) RowsPerSecond() float64 {
	return c.rowsPerSec
}

// TotalRows returns how many rows this consumer has drained overall.
func (c *Consumer) TotalRows() int {
	return c.totalRows
}
