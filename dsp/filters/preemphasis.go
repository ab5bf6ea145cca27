// Package filters holds the streaming sample filters applied ahead of
// spectral analysis.
package filters

// PreEmphasis implements a first-order high-pass filter that boosts higher
// frequencies before analysis:
//
//	y[n] = x[n] - coefficient*x[n-1]
//
// The previous input sample persists across calls so the filter stays
// continuous over chunk boundaries.
type PreEmphasis struct {
	coefficient float64
	lastSample  float64
}

// NewPreEmphasis creates a pre-emphasis filter with the given coefficient.
// Typical values are 0.9-0.99.
func NewPreEmphasis(coefficient float64) *PreEmphasis {
	return &PreEmphasis{coefficient: coefficient}
}

// Process filters a single sample.
func (pe *PreEmphasis) Process(input float64) float64 {
	output := input - pe.coefficient*pe.lastSample
	pe.lastSample = input
	return output
}

// ProcessBuffer filters an entire buffer of samples.
func (pe *PreEmphasis) ProcessBuffer(input []float64) []float64 {
	output := make([]float64, len(input))
	for i, sample := range input {
		output[i] = pe.Process(sample)
	}
	return output
}

// Reset clears the filter state. Call this when processing discontinuous
// audio segments.
func (pe *PreEmphasis) Reset() {
	pe.lastSample = 0
}

// Coefficient returns the filter coefficient.
func (pe *PreEmphasis) Coefficient() float64 {
	return pe.coefficient
}
