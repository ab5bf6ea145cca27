// Package formats ties the individual decoder packages together: a
// registry of every supported container and path-based format detection
// for callers opening files.
package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spectralab/sgram/audio"
	"github.com/spectralab/sgram/formats/aiff"
	"github.com/spectralab/sgram/formats/mp3"
	"github.com/spectralab/sgram/formats/vorbis"
	"github.com/spectralab/sgram/formats/wav"
)

// NewRegistry returns a registry with every built-in decoder registered.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("vorbis", vorbis.Decoder{})
	return r
}

// Detect guesses the format key from a file path's extension. It returns
// "" when the extension is unknown.
func Detect(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return "wav"
	case ".aif", ".aiff":
		return "aiff"
	case ".mp3":
		return "mp3"
	case ".ogg", ".oga":
		return "vorbis"
	default:
		return ""
	}
}

// fileSource closes the backing file together with the decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open opens an audio file, picks a decoder by extension and returns a
// Source that owns the file handle.
func Open(path string) (audio.Source, error) {
	format := Detect(path)
	if format == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	dec, ok := NewRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}
