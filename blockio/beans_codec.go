package blockio

import (
	"encoding/binary"

	"github.com/jido/seqoia/beans"
)

// beansCodec implements block compression mode 1, always in BEANS's
// self-describing form (no table survives across blocks, so every block
// carries its own frequency table). The block's leading 4 bytes are a
// single big-endian record packing the compression tag, the
// frequency-table section length, and the BEANS code-word count:
//
//	bits 31-28: mode (always 0x1)
//	bits 27-16: FT_LEN, the word count of the embedded frequency-table
//	            section (see beans.EncodeBytes)
//	bits 15-0:  total code-word count minus one
//
// followed by a big-endian uint16 holding the block's decoded byte
// length (at most MaxBlockPayload, so 16 bits is ample), then that many
// code words as big-endian uint32s. See DESIGN.md for the rationale.
type beansCodec struct{}

func (beansCodec) Mode() byte   { return 0x1 }
func (beansCodec) Name() string { return "beans" }

func (beansCodec) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data) > MaxBlockPayload {
		return nil, ErrBlockTooLarge
	}
	words, code, err := beans.EncodeBytes(data, nil)
	if err != nil {
		return nil, err
	}
	wordCount := beans.CODE_LEN(code)
	ftLen := beans.FT_LEN(code)

	descriptor := uint32(0x1)<<28 | (ftLen&0xFFF)<<16 | (wordCount-1)&0xFFFF
	out := make([]byte, 6+len(words)*4)
	binary.BigEndian.PutUint32(out[0:4], descriptor)
	binary.BigEndian.PutUint16(out[4:6], uint16(len(data)))
	for i, w := range words {
		binary.BigEndian.PutUint32(out[6+i*4:], w)
	}
	return out, nil
}

func (beansCodec) Decode(block []byte) ([]byte, int, error) {
	if len(block) < 6 {
		return nil, 0, ErrTruncatedBlock
	}
	descriptor := binary.BigEndian.Uint32(block[0:4])
	if byte(descriptor>>28) != 0x1 {
		return nil, 0, ErrUnknownBlockMode
	}
	ftLen := (descriptor >> 16) & 0xFFF
	wordCount := (descriptor & 0xFFFF) + 1
	decodedLen := int(binary.BigEndian.Uint16(block[4:6]))

	need := 6 + int(wordCount)*4
	if len(block) < need {
		return nil, 0, ErrTruncatedBlock
	}
	words := make([]uint32, wordCount)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(block[6+i*4:])
	}

	code := wordCount&0x01FFFFFF | ftLen<<25
	data, err := beans.DecodeBytes(words, code, decodedLen, nil)
	if err != nil {
		return nil, 0, err
	}
	return data, need, nil
}
