package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT provides the forward transform used by the spectrogram engine.
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Forward computes the forward FFT of a real signal using mjibson/go-dsp.
// The transform is unnormalized; go-dsp handles non-power-of-2 sizes.
func (f *FFT) Forward(x []float64) []complex128 {
	if len(x) == 0 {
		return nil
	}
	return fft.FFTReal(x)
}
