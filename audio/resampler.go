package audio

import "math"

// Resampler converts a mono stream from a source rate to a target rate by
// linear interpolation between neighboring samples. It keeps a buffer of
// pending samples and a fractional read position that persist across
// calls, so arbitrarily sized chunks resample into one continuous stream.
//
// There is no band-limiting before decimation; when downsampling, energy
// above the new Nyquist aliases into the output. That is the intended
// accuracy/complexity tradeoff of this interpolator.
type Resampler struct {
	sourceRate int
	targetRate int
	step       float64 // source samples consumed per output sample

	buf []float32
	pos float64
}

// NewResampler creates a streaming resampler from sourceRate to targetRate.
// Non-positive rates are clamped to 1.
func NewResampler(sourceRate, targetRate int) *Resampler {
	if sourceRate < 1 {
		sourceRate = 1
	}
	if targetRate < 1 {
		targetRate = 1
	}
	return &Resampler{
		sourceRate: sourceRate,
		targetRate: targetRate,
		step:       float64(sourceRate) / float64(targetRate),
		buf:        make([]float32, 0, 8192),
	}
}

// SourceRate returns the input sample rate in Hz.
func (r *Resampler) SourceRate() int { return r.sourceRate }

// TargetRate returns the output sample rate in Hz.
func (r *Resampler) TargetRate() int { return r.targetRate }

// Process appends a chunk of mono samples and returns every output sample
// that can be produced so far. The returned slice is freshly allocated and
// owned by the caller; it is empty when not enough input has accumulated.
func (r *Resampler) Process(in []float32) []float32 {
	r.buf = append(r.buf, in...)
	if len(r.buf) < 2 {
		return nil
	}

	out := make([]float32, 0, int(float64(len(r.buf))/r.step)+1)
	for r.pos+1 < float64(len(r.buf)) {
		i0 := int(r.pos)
		frac := float32(r.pos - float64(i0))
		out = append(out, r.buf[i0]*(1-frac)+r.buf[i0+1]*frac)
		r.pos += r.step
	}

	// Drop the consumed prefix, keeping one trailing sample for the next
	// interpolation, and shift the read position back accordingly.
	consumed := int(math.Floor(r.pos))
	if consumed > 0 && consumed < len(r.buf) {
		r.buf = append(r.buf[:0], r.buf[consumed:]...)
		r.pos -= float64(consumed)
	}

	return out
}

// Pending returns the number of buffered source samples not yet consumed.
func (r *Resampler) Pending() int { return len(r.buf) }

// Reset clears the buffer and fractional position.
func (r *Resampler) Reset() {
	r.buf = r.buf[:0]
	r.pos = 0
}
