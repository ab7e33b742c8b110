// Package beans implements the BEANS entropy coder: a range-ANS byte coder
// over a 10-bit-precision normalized frequency table, with an optional
// self-describing mode that embeds its own (recursively BEANS-encoded)
// frequency table in the output.
package beans

import "errors"

// Sentinel errors returned at the package's public boundary. No panic
// escapes EncodeBytes/DecodeBytes/Normalize; malformed input or an
// undersized output buffer always comes back as one of these.
var (
	ErrInvalidInput    = errors.New("beans: invalid input")
	ErrBufferTooSmall  = errors.New("beans: output buffer too small")
	ErrTruncatedStream = errors.New("beans: code word stream truncated")
	ErrEmptyFrequency  = errors.New("beans: frequency table covers no symbols")
)
