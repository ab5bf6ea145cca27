// Package windowing provides the analysis window functions applied to a
// frame before the spectral transform to reduce leakage. Windows are
// periodic (denominator N) since frames come from a continuous stream.
package windowing

import "fmt"

// Window is a precomputed window function of a fixed size.
type Window interface {
	// ApplyInPlace multiplies signal elementwise by the window coefficients.
	ApplyInPlace(signal []float64) error
	// Coefficients returns a copy of the window coefficients.
	Coefficients() []float64
	// Size returns the window length.
	Size() int
	// Type returns the window name.
	Type() string
}

// Kind selects a window function at construction time.
type Kind int

const (
	KindHann Kind = iota
	KindHamming
	KindBlackman
)

func (k Kind) String() string {
	switch k {
	case KindHann:
		return "hann"
	case KindHamming:
		return "hamming"
	case KindBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

// New creates a window of the given kind and size. Unknown kinds fall back
// to Hann.
func New(kind Kind, size int) Window {
	switch kind {
	case KindHamming:
		return NewHamming(size)
	case KindBlackman:
		return NewBlackman(size)
	default:
		return NewHann(size)
	}
}

func applyInPlace(signal, coefficients []float64, name string) error {
	if len(signal) != len(coefficients) {
		return fmt.Errorf("signal length (%d) doesn't match %s window size (%d)", len(signal), name, len(coefficients))
	}
	for i := range signal {
		signal[i] *= coefficients[i]
	}
	return nil
}

func copyCoefficients(coefficients []float64) []float64 {
	out := make([]float64, len(coefficients))
	copy(out, coefficients)
	return out
}
