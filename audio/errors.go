package audio

import "errors"

var (
	// ErrBadChannelCount is returned when a channel count is not positive.
	ErrBadChannelCount = errors.New("channel count must be positive")
	// ErrBadSampleRate is returned when a sample rate is not positive.
	ErrBadSampleRate = errors.New("sample rate must be positive")
	// ErrQueueClosed is returned when pushing to a closed capture queue.
	ErrQueueClosed = errors.New("capture queue is closed")
)
