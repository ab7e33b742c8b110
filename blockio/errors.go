// Package blockio implements the block container's per-block compression
// layer: each block of a chunk stream is encoded either raw or through
// BEANS, whichever is smaller, and framed with a small self-describing
// header so the decoder can tell which codec produced it.
package blockio

import "errors"

var (
	// ErrCodecNotFound is returned when a compression tag or name has no
	// registered BlockCodec.
	ErrCodecNotFound = errors.New("blockio: codec not found")

	// ErrBlockTooLarge is returned when the caller asks a codec to encode
	// more than the 4096-byte block payload limit, or an empty block.
	ErrBlockTooLarge = errors.New("blockio: block payload exceeds 4096 bytes")

	// ErrTruncatedBlock is returned when a block's header claims more
	// bytes than remain in the input.
	ErrTruncatedBlock = errors.New("blockio: block truncated")

	// ErrUnknownBlockMode is returned when a block header's mode nibble
	// does not match any registered codec.
	ErrUnknownBlockMode = errors.New("blockio: unknown block compression mode")
)
