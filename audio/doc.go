// Package audio provides the PCM plumbing in front of the spectrogram
// engine: the Source and Decoder contracts implemented by the format
// packages, streaming downmix to mono, linear-interpolation resampling
// with persistent fractional state, and the non-blocking capture queue
// used at the live-input boundary.
package audio
