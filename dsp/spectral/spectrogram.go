// Package spectral converts a mono sample stream into log-magnitude rows:
// overlap-hop framing, windowing, zero-padded forward FFT and decibel
// conversion with epsilon floors.
package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/spectralab/sgram/dsp/filters"
	"github.com/spectralab/sgram/dsp/windowing"
)

// Epsilon floors keep every decibel value finite, even for silence.
const (
	powerFloor     = 1e-24
	magnitudeFloor = 1e-12
)

// Row is one spectral frame in decibels. Its length is FFTSize/2; index i
// covers frequency i*SampleRate/FFTSize Hz.
type Row []float32

// Config describes a spectrogram session. It is clamped once by
// NewSpectrogram and never revalidated: after clamping,
// 1 <= Hop <= FrameLen <= FFTSize always holds.
type Config struct {
	// FFTSize is the transform length; frames are zero-padded up to it.
	FFTSize int
	// FrameLen is the analysis frame length in samples (<= FFTSize).
	FrameLen int
	// Hop is the sample advance between successive frames (<= FrameLen).
	Hop int
	// SampleRate of the incoming mono stream in Hz.
	SampleRate int
	// Window selects the analysis window function.
	Window windowing.Kind
	// Exponent selects the magnitude law: 1 = amplitude dB (20*log10),
	// 2 = power dB (10*log10). Anything else is treated as 1.
	Exponent int
	// PreEmphasis is the first-order high-pass coefficient; 0 disables.
	PreEmphasis float64
	// ClampFloor clips every row value below DBFloor up to DBFloor.
	ClampFloor bool
	// Normalize subtracts each row's own maximum so its peak reads 0 dB.
	Normalize bool
	// DBFloor is the decibel floor used when ClampFloor is set.
	DBFloor float64
}

// clamped fills defaults and enforces the constructor invariants.
func (c Config) clamped() Config {
	if c.FFTSize <= 0 {
		c.FFTSize = 1024
	}
	if c.SampleRate <= 0 {
		c.SampleRate = 48000
	}
	if c.FrameLen <= 0 {
		c.FrameLen = c.FFTSize
	}
	if lo := min(16, c.FFTSize); c.FrameLen < lo {
		c.FrameLen = lo
	}
	if c.FrameLen > c.FFTSize {
		c.FrameLen = c.FFTSize
	}
	if c.Hop < 1 {
		c.Hop = 1
	}
	if c.Hop > c.FrameLen {
		c.Hop = c.FrameLen
	}
	if c.Exponent != 2 {
		c.Exponent = 1
	}
	if c.DBFloor == 0 {
		c.DBFloor = -80
	}
	if c.PreEmphasis < 0 {
		c.PreEmphasis = 0
	}
	return c
}

// Spectrogram is the streaming framer/window/FFT engine. It is pure batch
// logic: Process holds no knowledge of channels or goroutines and is meant
// to be called once per ingested chunk by a single owner.
type Spectrogram struct {
	cfg    Config
	window []float64
	fft    *FFT
	pre    *filters.PreEmphasis

	overlap []float32 // pending samples between calls
	frame   []float64 // reusable zero-padded working frame
}

// NewSpectrogram builds an engine from cfg, clamping it first.
func NewSpectrogram(cfg Config) *Spectrogram {
	cfg = cfg.clamped()

	s := &Spectrogram{
		cfg:    cfg,
		window: windowing.New(cfg.Window, cfg.FrameLen).Coefficients(),
		fft:    NewFFT(),
		frame:  make([]float64, cfg.FFTSize),
	}
	if cfg.PreEmphasis > 0 {
		s.pre = filters.NewPreEmphasis(cfg.PreEmphasis)
	}
	return s
}

// Config returns the active, clamped configuration.
func (s *Spectrogram) Config() Config {
	return s.cfg
}

// Bins returns the number of frequency bins per row (FFTSize/2).
func (s *Spectrogram) Bins() int {
	return s.cfg.FFTSize / 2
}

// Process ingests an arbitrary-length chunk of mono samples and returns
// the rows completed by it, in order. The result may be empty (not enough
// samples buffered yet) or hold several rows.
func (s *Spectrogram) Process(chunk []float32) []Row {
	if s.pre != nil {
		for _, x := range chunk {
			s.overlap = append(s.overlap, float32(s.pre.Process(float64(x))))
		}
	} else {
		s.overlap = append(s.overlap, chunk...)
	}

	var rows []Row
	for len(s.overlap) >= s.cfg.FrameLen {
		rows = append(rows, s.nextRow())

		hop := min(s.cfg.Hop, len(s.overlap))
		s.overlap = append(s.overlap[:0], s.overlap[hop:]...)
	}
	return rows
}

// nextRow windows the first FrameLen pending samples, zero-pads to
// FFTSize, transforms and converts bins 0..FFTSize/2 to decibels.
func (s *Spectrogram) nextRow() Row {
	for i := 0; i < s.cfg.FFTSize; i++ {
		if i < s.cfg.FrameLen {
			s.frame[i] = float64(s.overlap[i]) * s.window[i]
		} else {
			s.frame[i] = 0
		}
	}

	spec := s.fft.Forward(s.frame)

	nBins := s.cfg.FFTSize / 2
	db := make([]float64, nBins)
	for i := 0; i < nBins; i++ {
		re := real(spec[i])
		im := imag(spec[i])
		power := re*re + im*im

		if s.cfg.Exponent == 2 {
			db[i] = 10 * math.Log10(math.Max(power, powerFloor))
		} else {
			db[i] = 20 * math.Log10(math.Max(math.Sqrt(power), magnitudeFloor))
		}
	}

	if s.cfg.Normalize && nBins > 0 {
		peak := floats.Max(db)
		for i := range db {
			db[i] -= peak
		}
	}
	if s.cfg.ClampFloor {
		for i := range db {
			if db[i] < s.cfg.DBFloor {
				db[i] = s.cfg.DBFloor
			}
		}
	}

	row := make(Row, nBins)
	for i, v := range db {
		row[i] = float32(v)
	}
	return row
}

// Pending returns the number of samples buffered but not yet framed.
func (s *Spectrogram) Pending() int {
	return len(s.overlap)
}
