package wavio

import "errors"

var (
	// ErrNotWAV marks files that fail RIFF/WAVE validation.
	ErrNotWAV = errors.New("not a valid WAV file")
	// ErrUnsupportedFormat marks sample storage formats outside the
	// recognized set (16/32-bit PCM, 32/64-bit IEEE float).
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	// ErrNoData marks WAV files without a data chunk.
	ErrNoData = errors.New("missing data chunk")
)
