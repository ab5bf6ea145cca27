// Package wav decodes RIFF/WAVE files into audio.Source streams.
//
// It uses github.com/go-audio/wav for header parsing and PCM extraction;
// integer PCM at 8/16/24/32 bits is normalized to float32 in [-1, 1].
package wav
