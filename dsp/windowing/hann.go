package windowing

import "math"

// Hann represents a periodic Hann window function
type Hann struct {
	size         int
	coefficients []float64
}

// NewHann creates a new Hann window
func NewHann(size int) *Hann {
	h := &Hann{size: size}
	h.generate()
	return h
}

// generate creates Hann window coefficients: 0.5 - 0.5*cos(2*pi*i/N)
func (h *Hann) generate() {
	h.coefficients = make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		h.coefficients[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(h.size))
	}
}

// ApplyInPlace applies the window to a signal in-place
func (h *Hann) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, h.coefficients, h.Type())
}

// Coefficients returns a copy of the window coefficients
func (h *Hann) Coefficients() []float64 {
	return copyCoefficients(h.coefficients)
}

// Size returns the window size
func (h *Hann) Size() int {
	return h.size
}

// Type returns the window type
func (h *Hann) Type() string {
	return "hann"
}
