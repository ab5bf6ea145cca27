package audio

import (
	"io"
	"math"
	"testing"
)

func TestDownmixer_StereoMean(t *testing.T) {
	t.Parallel()

	d := NewDownmixer(2)

	out := d.Process([]float32{1, 0, 0.5, 0.5, -1, 1})
	want := []float32{0.5, 0.5, 0}

	if len(out) != len(want) {
		t.Fatalf("Process() produced %d samples, want %d", len(out), len(want))
	}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 1e-6 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestDownmixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	d := NewDownmixer(1)
	in := []float32{0.1, 0.2, 0.3}

	out := d.Process(in)
	if len(out) != len(in) {
		t.Fatalf("Process() produced %d samples, want %d", len(out), len(in))
	}
}

func TestDownmixer_PartialFrameCarriesOver(t *testing.T) {
	t.Parallel()

	d := NewDownmixer(2)

	// First chunk ends mid-frame; the straddling frame must still average
	// its two halves once the second chunk arrives.
	first := d.Process([]float32{1, 1, 0})
	second := d.Process([]float32{1})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("chunk outputs = %d and %d samples, want 1 and 1", len(first), len(second))
	}
	if math.Abs(float64(first[0]-1)) > 1e-6 {
		t.Errorf("first frame = %v, want 1", first[0])
	}
	if math.Abs(float64(second[0]-0.5)) > 1e-6 {
		t.Errorf("straddling frame = %v, want 0.5", second[0])
	}
}

func TestDownmixer_WithSource(t *testing.T) {
	t.Parallel()

	src := newSilentSource(48000, 2, 256)
	d := NewDownmixer(src.Channels())

	buf := make([]float32, 128)
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += len(d.Process(buf[:n]))
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 256 {
		t.Errorf("downmixed %d mono samples, want 256", total)
	}
}
