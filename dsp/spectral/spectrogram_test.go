package spectral

import (
	"math"
	"testing"

	"github.com/spectralab/sgram/dsp/windowing"
)

func sineWave(sampleRate int, frequency float64, samples int) []float32 {
	out := make([]float32, samples)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * frequency * float64(i) / float64(sampleRate)))
	}
	return out
}

func peakBin(row Row) int {
	best := 0
	for i, v := range row {
		if v > row[best] {
			best = i
		}
	}
	return best
}

func TestConfig_ClampInvariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero value", Config{}},
		{"hop larger than frame", Config{FFTSize: 512, FrameLen: 256, Hop: 4096}},
		{"frame larger than fft", Config{FFTSize: 256, FrameLen: 1024, Hop: 64}},
		{"negative everything", Config{FFTSize: -1, FrameLen: -5, Hop: -3, SampleRate: -8}},
		{"tiny frame", Config{FFTSize: 1024, FrameLen: 2, Hop: 1}},
		{"bad exponent", Config{FFTSize: 128, FrameLen: 128, Hop: 32, Exponent: 7}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewSpectrogram(tt.cfg).Config()

			if cfg.Hop < 1 || cfg.Hop > cfg.FrameLen || cfg.FrameLen > cfg.FFTSize {
				t.Errorf("clamp violated: hop=%d frame=%d fft=%d", cfg.Hop, cfg.FrameLen, cfg.FFTSize)
			}
			if cfg.SampleRate <= 0 {
				t.Errorf("SampleRate = %d after clamping", cfg.SampleRate)
			}
			if cfg.Exponent != 1 && cfg.Exponent != 2 {
				t.Errorf("Exponent = %d after clamping", cfg.Exponent)
			}
		})
	}
}

func TestSpectrogram_RowLength(t *testing.T) {
	t.Parallel()

	s := NewSpectrogram(Config{FFTSize: 1024, FrameLen: 512, Hop: 128, SampleRate: 48000})

	rows := s.Process(make([]float32, 4096))
	if len(rows) == 0 {
		t.Fatal("Process() produced no rows")
	}
	for i, row := range rows {
		if len(row) != 512 {
			t.Fatalf("rows[%d] has %d bins, want 512", i, len(row))
		}
	}
}

func TestSpectrogram_SinePeakNearExpectedBin(t *testing.T) {
	t.Parallel()

	const (
		fs = 48000
		n  = 1024
		k  = 10
	)
	f0 := float64(fs) * float64(k) / float64(n) // ~468.75 Hz

	s := NewSpectrogram(Config{
		FFTSize:    n,
		FrameLen:   n,
		Hop:        n,
		SampleRate: fs,
		Window:     windowing.KindHann,
	})

	rows := s.Process(sineWave(fs, f0, n))
	if len(rows) != 1 {
		t.Fatalf("Process() produced %d rows, want 1", len(rows))
	}
	if len(rows[0]) != n/2 {
		t.Fatalf("row has %d bins, want %d", len(rows[0]), n/2)
	}

	peak := peakBin(rows[0])
	if peak < k-1 || peak > k+1 {
		t.Errorf("peak bin = %d, want within [%d, %d]", peak, k-1, k+1)
	}
}

func TestSpectrogram_ClampFloorOnSilence(t *testing.T) {
	t.Parallel()

	s := NewSpectrogram(Config{
		FFTSize:    16,
		FrameLen:   16,
		Hop:        16,
		ClampFloor: true,
		DBFloor:    -40,
	})

	rows := s.Process(make([]float32, 16))
	if len(rows) != 1 {
		t.Fatalf("Process() produced %d rows, want 1", len(rows))
	}
	for i, v := range rows[0] {
		if v < -40 {
			t.Errorf("row[%d] = %v, want >= -40", i, v)
		}
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			t.Errorf("row[%d] = %v, want finite", i, v)
		}
	}
}

func TestSpectrogram_SilenceStaysFiniteWithoutClamp(t *testing.T) {
	t.Parallel()

	s := NewSpectrogram(Config{FFTSize: 64, FrameLen: 64, Hop: 64, Exponent: 2})

	rows := s.Process(make([]float32, 64))
	if len(rows) != 1 {
		t.Fatalf("Process() produced %d rows, want 1", len(rows))
	}
	for i, v := range rows[0] {
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			t.Errorf("row[%d] = %v, want finite", i, v)
		}
	}
}

func TestSpectrogram_NormalizePeaksAtZero(t *testing.T) {
	t.Parallel()

	s := NewSpectrogram(Config{
		FFTSize:    1024,
		FrameLen:   1024,
		Hop:        1024,
		SampleRate: 48000,
		Normalize:  true,
	})

	rows := s.Process(sineWave(48000, 1000, 1024))
	if len(rows) != 1 {
		t.Fatalf("Process() produced %d rows, want 1", len(rows))
	}

	maxVal := float32(math.Inf(-1))
	for _, v := range rows[0] {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal > 1e-5 {
		t.Errorf("normalized row max = %v, want <= 0", maxVal)
	}
	if math.Abs(float64(maxVal)) > 1e-5 {
		t.Errorf("normalized row max = %v, want ~0", maxVal)
	}
}

func TestSpectrogram_OverlapHopRowCount(t *testing.T) {
	t.Parallel()

	// frame 256, hop 64: feeding 1024 samples completes
	// (1024-256)/64 + 1 = 13 frames.
	s := NewSpectrogram(Config{FFTSize: 256, FrameLen: 256, Hop: 64})

	rows := s.Process(make([]float32, 1024))
	if len(rows) != 13 {
		t.Errorf("Process() produced %d rows, want 13", len(rows))
	}
}

func TestSpectrogram_StreamingMatchesOneShot(t *testing.T) {
	t.Parallel()

	signal := sineWave(48000, 440, 4096)

	oneShot := NewSpectrogram(Config{FFTSize: 512, FrameLen: 512, Hop: 128, SampleRate: 48000, PreEmphasis: 0.95})
	want := oneShot.Process(signal)

	chunked := NewSpectrogram(Config{FFTSize: 512, FrameLen: 512, Hop: 128, SampleRate: 48000, PreEmphasis: 0.95})
	var got []Row
	for off := 0; off < len(signal); off += 100 {
		end := min(off+100, len(signal))
		got = append(got, chunked.Process(signal[off:end])...)
	}

	if len(got) != len(want) {
		t.Fatalf("chunked produced %d rows, one-shot %d", len(got), len(want))
	}
	for i := range got {
		for j := range got[i] {
			if math.Abs(float64(got[i][j]-want[i][j])) > 1e-4 {
				t.Fatalf("row %d bin %d differs: chunked %v, one-shot %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestSpectrogram_EmptyChunkProducesNoRows(t *testing.T) {
	t.Parallel()

	s := NewSpectrogram(Config{FFTSize: 128, FrameLen: 128, Hop: 32})
	if rows := s.Process(nil); len(rows) != 0 {
		t.Errorf("Process(nil) produced %d rows, want 0", len(rows))
	}
	if rows := s.Process(make([]float32, 100)); len(rows) != 0 {
		t.Errorf("Process() below frame length produced %d rows, want 0", len(rows))
	}
	if s.Pending() != 100 {
		t.Errorf("Pending() = %d, want 100", s.Pending())
	}
}
