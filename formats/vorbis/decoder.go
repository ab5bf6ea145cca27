// Package vorbis decodes Ogg Vorbis files into audio.Source streams using
// github.com/jfreymuth/oggvorbis.
package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/spectralab/sgram/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs, split out
// so tests can stub it.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Read whole frames so interleaving stays aligned across calls.
	want := (len(dst) / s.channels) * s.channels
	if want == 0 {
		want = s.channels
		if want > len(dst) {
			want = len(dst)
		}
	}

	n, err := s.dec.Read(dst[:want])
	if n == 0 && err == nil {
		return 0, nil
	}
	return n, err
}

// Decoder decodes Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
