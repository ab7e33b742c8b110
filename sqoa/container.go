package sqoa

import "github.com/jido/seqoia/blockio"

var (
	magicNative  = [4]byte{'S', 'q', 'o', 'a'}
	magicQOI     = [4]byte{'q', 'o', 'i', 'f'}
	endMarker    = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}
	startByteVal = byte('1') // 0x31, native mode only
)

// Colorspace values.
const (
	ColorspaceSRGB   = 0 // sRGB with linear alpha
	ColorspaceLinear = 1 // all channels linear
)

// Compression selects how native-mode blocks are stored: CompressionNone
// always writes raw blocks, CompressionBeans writes each block raw or
// BEANS-compressed, whichever is smaller. Native mode is block-framed
// either way; only QOICompat writes the chunk stream without framing.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionBeans
)

// EncodeOptions configures Encode. QOICompat selects the qoif magic and
// the QOI-compatible restrictions: 3 or 4 channels, no ALPHA chunk, and
// the chunk stream written verbatim with no block framing, to stay
// byte-identical to a reference QOI file.
type EncodeOptions struct {
	Channels    byte
	Colorspace  byte
	Compression Compression
	QOICompat   bool
}

func (o EncodeOptions) Validate() error {
	if !channelsValid(o.Channels) {
		return ErrInvalidChannels
	}
	if o.Colorspace > ColorspaceLinear {
		return ErrInvalidColorspace
	}
	if o.QOICompat && o.Channels != ChannelsRGB && o.Channels != ChannelsRGBA {
		return ErrQOICompatChannels
	}
	return nil
}

const headerFixedLen = 14 // magic + width + height + channels + colorspace

// Encode produces a complete SQOA (or QOI-compatible) file: header,
// framed payload blocks, and end marker.
func Encode(pixels []byte, width, height uint32, opts EncodeOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if width == 0 || height == 0 {
		return nil, ErrInvalidDimensions
	}
	if uint64(height) >= uint64(400_000_000)/uint64(width) {
		return nil, ErrDimensionsTooLarge
	}

	chunks, err := encodePixelsCompat(pixels, width, height, opts)
	if err != nil {
		return nil, err
	}

	out := &builder{}
	if opts.QOICompat {
		out.write(magicQOI[:])
	} else {
		out.write(magicNative[:])
	}
	out.writeUint32(width)
	out.writeUint32(height)
	out.writeByte(opts.Channels)
	out.writeByte(opts.Colorspace)
	if !opts.QOICompat {
		out.writeByte(startByteVal)
	}

	if opts.QOICompat {
		out.write(chunks)
	} else {
		writeBlocks(out, chunks, opts.Compression)
	}
	out.write(endMarker[:])

	return out.bytes(), nil
}

// encodePixelsCompat runs the pixel codec, applying the QOI-compatibility
// restriction that an ALPHA chunk never appears: a LUMA pixel whose alpha
// also changed falls back to RGBA instead.
func encodePixelsCompat(pixels []byte, width, height uint32, opts EncodeOptions) ([]byte, error) {
	if !opts.QOICompat {
		return EncodePixels(pixels, width, height, opts.Channels)
	}
	return encodePixelsNoAlphaChunk(pixels, width, height, opts.Channels)
}

func writeBlocks(out *builder, chunks []byte, compression Compression) {
	for off := 0; off < len(chunks); off += blockio.MaxBlockPayload {
		end := off + blockio.MaxBlockPayload
		if end > len(chunks) {
			end = len(chunks)
		}
		piece := chunks[off:end]

		var block []byte
		if compression == CompressionBeans {
			block, _ = blockio.EncodeBlock(piece)
		} else {
			block, _ = blockio.EncodeRawBlock(piece)
		}
		out.write(block)
	}
}

// DecodeOptions reports the header fields Decode recovered.
type DecodeOptions struct {
	Width      uint32
	Height     uint32
	Channels   byte
	Colorspace byte
	QOICompat  bool
}

// Decode parses a complete SQOA (or QOI-compatible) file and returns its
// raw pixel buffer alongside the header fields it recovered.
func Decode(data []byte) ([]byte, DecodeOptions, error) {
	var opts DecodeOptions
	if len(data) < headerFixedLen+len(endMarker) {
		return nil, opts, ErrUnexpectedEOF
	}

	c := newCursor(data)
	magic, err := c.readFull(4)
	if err != nil {
		return nil, opts, err
	}
	switch {
	case equalBytes(magic, magicNative[:]):
		opts.QOICompat = false
	case equalBytes(magic, magicQOI[:]):
		opts.QOICompat = true
	default:
		return nil, opts, ErrInvalidMagic
	}

	opts.Width, err = c.readUint32()
	if err != nil {
		return nil, opts, err
	}
	opts.Height, err = c.readUint32()
	if err != nil {
		return nil, opts, err
	}
	if opts.Width == 0 || opts.Height == 0 {
		return nil, opts, ErrInvalidDimensions
	}
	if uint64(opts.Height) >= uint64(400_000_000)/uint64(opts.Width) {
		return nil, opts, ErrDimensionsTooLarge
	}

	opts.Channels, err = c.readByte()
	if err != nil {
		return nil, opts, err
	}
	if !opts.QOICompat && !channelsValid(opts.Channels) {
		return nil, opts, ErrInvalidChannels
	}
	if opts.QOICompat && opts.Channels != ChannelsRGB && opts.Channels != ChannelsRGBA {
		return nil, opts, ErrQOICompatChannels
	}

	opts.Colorspace, err = c.readByte()
	if err != nil {
		return nil, opts, err
	}
	if opts.Colorspace > ColorspaceLinear {
		return nil, opts, ErrInvalidColorspace
	}

	if !opts.QOICompat {
		sb, err := c.readByte()
		if err != nil {
			return nil, opts, err
		}
		if sb != startByteVal {
			return nil, opts, ErrInvalidStartByte
		}
	}

	if !equalBytes(data[len(data)-8:], endMarker[:]) {
		return nil, opts, ErrInvalidEndMarker
	}
	payload := data[c.pos : len(data)-8]

	var chunks []byte
	if opts.QOICompat {
		chunks = payload
	} else {
		chunks, err = readBlocks(payload)
		if err != nil {
			return nil, opts, err
		}
	}

	pixels, err := DecodePixels(chunks, opts.Width, opts.Height, opts.Channels)
	if err != nil {
		return nil, opts, err
	}
	return pixels, opts, nil
}

// EncodeImage is Encode taking and returning the package's own Image
// type directly, for callers that built one via FromImage.
func EncodeImage(img *Image, opts EncodeOptions) ([]byte, error) {
	opts.Channels = img.Channels
	return Encode(img.Pixels, img.Width, img.Height, opts)
}

// DecodeImage is Decode returning the package's own Image type directly.
func DecodeImage(data []byte) (*Image, error) {
	pixels, opts, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &Image{Pixels: pixels, Width: opts.Width, Height: opts.Height, Channels: opts.Channels}, nil
}

func readBlocks(payload []byte) ([]byte, error) {
	out := &builder{}
	for len(payload) > 0 {
		data, consumed, err := blockio.DecodeBlock(payload)
		if err != nil {
			return nil, err
		}
		out.write(data)
		payload = payload[consumed:]
	}
	return out.bytes(), nil
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
