package windowing

import "math"

// Blackman represents a periodic Blackman window function
type Blackman struct {
	size         int
	coefficients []float64
}

// NewBlackman creates a new Blackman window
func NewBlackman(size int) *Blackman {
	b := &Blackman{size: size}
	b.generate()
	return b
}

// generate creates Blackman window coefficients:
// 0.42 - 0.5*cos(2*pi*i/N) + 0.08*cos(4*pi*i/N)
func (b *Blackman) generate() {
	b.coefficients = make([]float64, b.size)
	for i := 0; i < b.size; i++ {
		a := float64(i) / float64(b.size)
		b.coefficients[i] = 0.42 - 0.5*math.Cos(2*math.Pi*a) + 0.08*math.Cos(4*math.Pi*a)
	}
}

// ApplyInPlace applies the window to a signal in-place
func (b *Blackman) ApplyInPlace(signal []float64) error {
	return applyInPlace(signal, b.coefficients, b.Type())
}

// Coefficients returns a copy of the window coefficients
func (b *Blackman) Coefficients() []float64 {
	return copyCoefficients(b.coefficients)
}

// Size returns the window size
func (b *Blackman) Size() int {
	return b.size
}

// Type returns the window type
func (b *Blackman) Type() string {
	return "blackman"
}
