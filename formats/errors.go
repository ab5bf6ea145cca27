package formats

import "errors"

// ErrUnknownFormat is returned when no decoder matches the input.
var ErrUnknownFormat = errors.New("unknown audio format")
