package windowing

import "math"

// Hamming represents a periodic Hamming window function
type Hamming struct {
	size         int
	coefficients []float64
}

// NewHamming creates a new Hamming window
func NewHamming(size int) *Hamming {
	h := &Hamming{size: size}
	h.generate()
	return h
}

// generate creates Hamming window coefficients: 0.54 - 0.46*cos(2*pi*i/N)
func (h *Hamming) generate() {
	h.coefficients = make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		h.coefficients[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(h.size))
	}
}

// ApplyInPlace applies the window to a signal in-place
func (h *Hamming) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, h.coefficients, h.Type())
}

// Coefficients returns a copy of the window coefficients
func (h *Hamming) Coefficients() []float64 {
	return copyCoefficients(h.coefficients)
}

// Size returns the window size
func (h *Hamming) Size() int {
	return h.size
}

// Type returns the window type
func (h *Hamming) Type() string {
	return "hamming"
}
