package wav

import "errors"

var (
	// ErrNotWavFile is returned when the input is not a RIFF/WAVE stream.
	ErrNotWavFile = errors.New("not a wav file")
	// ErrUnsupportedEncoding is returned for non-PCM sample encodings.
	ErrUnsupportedEncoding = errors.New("unsupported wav sample encoding")
	// ErrUnsupportedWavLayout is returned for malformed format chunks.
	ErrUnsupportedWavLayout = errors.New("unsupported wav layout")
)
