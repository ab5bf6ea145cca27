package spectral

import "math"

// FreqScale selects the presentation-layer frequency axis mapping shared
// by render and export collaborators. It is purely presentational: the
// engine itself always produces linearly spaced bins.
type FreqScale int

const (
	ScaleLinear FreqScale = iota
	ScaleLog
	ScaleMel
)

func (s FreqScale) String() string {
	switch s {
	case ScaleLinear:
		return "linear"
	case ScaleLog:
		return "log"
	case ScaleMel:
		return "mel"
	default:
		return "unknown"
	}
}

// HzToMel converts frequency in Hz to the mel scale.
func HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts the mel scale back to frequency in Hz.
func MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

// FrequencyAt maps a fraction of the display axis (0..1) to a frequency in
// Hz under the given scale. The visible range tops out at Nyquist/zoom;
// log and mel axes start at 20 Hz, linear at 0 Hz.
func FrequencyAt(scale FreqScale, frac float64, sampleRate int, zoom float64) float64 {
	if zoom < 1 {
		zoom = 1
	}
	fmax := float64(sampleRate) / 2 / zoom

	switch scale {
	case ScaleLog:
		fmin := 20.0
		a := math.Max(fmax/fmin, 1.01)
		return fmin * math.Pow(a, frac)
	case ScaleMel:
		mmin := HzToMel(20.0)
		mmax := HzToMel(fmax)
		return MelToHz(mmin + frac*(mmax-mmin))
	default:
		return frac * fmax
	}
}

// BinAt maps a fraction of the display axis to a bin index within a row of
// bins entries captured at the given zoom. Both render and export use this
// so the two surfaces agree on which bin a pixel or cell shows.
func BinAt(scale FreqScale, frac float64, sampleRate int, zoom float64, bins int) int {
	if bins < 1 {
		return 0
	}
	if zoom < 1 {
		zoom = 1
	}
	fmax := float64(sampleRate) / 2 / zoom

	f := FrequencyAt(scale, frac, sampleRate, zoom)
	hzPerBin := fmax / float64(bins)
	if hzPerBin <= 0 {
		return 0
	}

	idx := int(math.Floor(f / hzPerBin))
	if idx > bins-1 {
		idx = bins - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// BinFrequency returns the center frequency of bin i for a transform of
// fftSize at sampleRate.
func BinFrequency(i, sampleRate, fftSize int) float64 {
	if fftSize <= 0 {
		return 0
	}
	return float64(i) * float64(sampleRate) / float64(fftSize)
}
