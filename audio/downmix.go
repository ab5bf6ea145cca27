package audio

// Downmixer collapses interleaved multi-channel samples to mono by
// arithmetic mean across each channel frame. Partial frames at the end of
// a chunk are carried over to the next call, so chunk boundaries do not
// need to align with frame boundaries.
type Downmixer struct {
	channels int
	sum      float32
	have     int
}

// NewDownmixer creates a downmixer for the given channel count.
// Channel counts below 1 are clamped to 1.
func NewDownmixer(channels int) *Downmixer {
	if channels < 1 {
		channels = 1
	}
	return &Downmixer{channels: channels}
}

// Channels returns the input channel count.
func (d *Downmixer) Channels() int { return d.channels }

// Process consumes a chunk of interleaved samples and returns the mono
// samples completed by this chunk. Mono input is passed through as-is.
func (d *Downmixer) Process(in []float32) []float32 {
	if d.channels == 1 {
		return in
	}

	out := make([]float32, 0, len(in)/d.channels+1)
	for _, v := range in {
		d.sum += v
		d.have++
		if d.have == d.channels {
			out = append(out, d.sum/float32(d.channels))
			d.sum = 0
			d.have = 0
		}
	}
	return out
}

// Reset drops any partial frame carried between calls.
func (d *Downmixer) Reset() {
	d.sum = 0
	d.have = 0
}
