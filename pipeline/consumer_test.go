package pipeline

import (
	"testing"

	"github.com/spectralab/sgram/dsp/spectral"
	"github.com/spectralab/sgram/history"
)

func TestConsumer_DrainsAvailableRows(t *testing.T) {
	t.Parallel()

	rows := make(chan spectral.Row, 8)
	for i := 0; i < 5; i++ {
		rows <- spectral.Row{float32(i)}
	}

	c := NewConsumer(history.New(16))
	drained, open := c.Tick(rows)

	if drained != 5 {
		t.Errorf("Tick() drained %d rows, want 5", drained)
	}
	if !open {
		t.Error("Tick() reported a closed channel, want open")
	}
	if c.History().Len() != 5 {
		t.Errorf("history holds %d rows, want 5", c.History().Len())
	}
	// Newest-first: the last row sent is at the front.
	if got := c.History().At(0)[0]; got != 4 {
		t.Errorf("History().At(0)[0] = %v, want 4", got)
	}
}

func TestConsumer_TickDoesNotBlockOnEmptyChannel(t *testing.T) {
	t.Parallel()

	rows := make(chan spectral.Row)
	c := NewConsumer(history.New(16))

	drained, open := c.Tick(rows)
	if drained != 0 || !open {
		t.Errorf("Tick() = (%d, %v), want (0, true)", drained, open)
	}
}

func TestConsumer_ObservesEndOfStream(t *testing.T) {
	t.Parallel()

	rows := make(chan spectral.Row, 2)
	rows <- spectral.Row{1}
	close(rows)

	c := NewConsumer(history.New(16))

	drained, open := c.Tick(rows)
	if drained != 1 {
		t.Errorf("Tick() drained %d rows, want 1", drained)
	}
	if open {
		t.Error("Tick() reported an open channel after close")
	}

	// History survives end-of-stream; the display freezes on it.
	if c.History().Len() != 1 {
		t.Errorf("history holds %d rows after end-of-stream, want 1", c.History().Len())
	}
}

func TestConsumer_BoundsRowsPerTick(t *testing.T) {
	t.Parallel()

	rows := make(chan spectral.Row, 2048)
	for i := 0; i < 2048; i++ {
		rows <- spectral.Row{0}
	}

	c := NewConsumer(history.New(4096))

	drained, open := c.Tick(rows)
	if drained != maxRowsPerTick {
		t.Errorf("Tick() drained %d rows, want %d", drained, maxRowsPerTick)
	}
	if !open {
		t.Error("Tick() reported a closed channel, want open")
	}

	drained, _ = c.Tick(rows)
	if drained != 2048-maxRowsPerTick {
		t.Errorf("second Tick() drained %d rows, want %d", drained, 2048-maxRowsPerTick)
	}

	if c.TotalRows() != 2048 {
		t.Errorf("TotalRows() = %d, want 2048", c.TotalRows())
	}
}
