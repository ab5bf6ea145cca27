package spectral

import (
	"math"
	"testing"
)

func TestFrequencyAt_LinearEndpoints(t *testing.T) {
	t.Parallel()

	if f := FrequencyAt(ScaleLinear, 0, 48000, 1); f != 0 {
		t.Errorf("FrequencyAt(0) = %v, want 0", f)
	}
	if f := FrequencyAt(ScaleLinear, 1, 48000, 1); math.Abs(f-24000) > 1e-9 {
		t.Errorf("FrequencyAt(1) = %v, want 24000", f)
	}
	// Zooming in restricts the axis to the lowest 1/zoom of the range.
	if f := FrequencyAt(ScaleLinear, 1, 48000, 4); math.Abs(f-6000) > 1e-9 {
		t.Errorf("FrequencyAt(1, zoom=4) = %v, want 6000", f)
	}
}

func TestFrequencyAt_MonotoneAcrossScales(t *testing.T) {
	t.Parallel()

	for _, scale := range []FreqScale{ScaleLinear, ScaleLog, ScaleMel} {
		prev := -1.0
		for i := 0; i <= 100; i++ {
			f := FrequencyAt(scale, float64(i)/100, 48000, 1)
			if f <= prev {
				t.Fatalf("%v scale not strictly increasing at frac %v: %v <= %v", scale, float64(i)/100, f, prev)
			}
			prev = f
		}
	}
}

func TestMelRoundTrip(t *testing.T) {
	t.Parallel()

	for _, hz := range []float64{20, 440, 1000, 8000, 20000} {
		back := MelToHz(HzToMel(hz))
		if math.Abs(back-hz) > 1e-6*hz {
			t.Errorf("MelToHz(HzToMel(%v)) = %v", hz, back)
		}
	}
}

func TestBinAt_Bounds(t *testing.T) {
	t.Parallel()

	for _, scale := range []FreqScale{ScaleLinear, ScaleLog, ScaleMel} {
		for i := 0; i <= 10; i++ {
			idx := BinAt(scale, float64(i)/10, 48000, 2, 512)
			if idx < 0 || idx > 511 {
				t.Fatalf("BinAt(%v, %v) = %d, outside [0, 511]", scale, float64(i)/10, idx)
			}
		}
	}

	// A linear axis maps fractions straight onto bins.
	if idx := BinAt(ScaleLinear, 0.5, 48000, 1, 512); idx != 256 {
		t.Errorf("BinAt(linear, 0.5) = %d, want 256", idx)
	}
}

func TestBinFrequency(t *testing.T) {
	t.Parallel()

	if f := BinFrequency(10, 48000, 1024); math.Abs(f-468.75) > 1e-9 {
		t.Errorf("BinFrequency(10, 48000, 1024) = %v, want 468.75", f)
	}
}
