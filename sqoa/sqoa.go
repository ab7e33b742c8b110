package sqoa

// EncodePixels runs the SQOA pixel codec's encoder over a raw pixel
// buffer laid out per channels (see layout.go), producing the tagged
// chunk stream. It does not frame the stream into blocks or attach a
// file header; see container.go for that.
func EncodePixels(pixels []byte, width, height uint32, channels byte) ([]byte, error) {
	return encodePixels(pixels, width, height, channels, true)
}

// encodePixelsNoAlphaChunk is the QOI-compatibility variant: a pixel
// whose RGB deltas fit the LUMA window but whose alpha also changed
// falls back to RGBA instead of emitting a LUMA chunk followed by the
// reserved ALPHA chunk, since QOI's own chunk alphabet has no equivalent.
func encodePixelsNoAlphaChunk(pixels []byte, width, height uint32, channels byte) ([]byte, error) {
	return encodePixels(pixels, width, height, channels, false)
}

func encodePixels(pixels []byte, width, height uint32, channels byte, allowAlphaChunk bool) ([]byte, error) {
	if !channelsValid(channels) {
		return nil, ErrInvalidChannels
	}
	count := int(width) * int(height)
	if len(pixels) != count*bytesPerPixel(channels) {
		return nil, ErrPixelBufferSize
	}

	out := &builder{}
	var c cache
	prev := startPixel
	run := 0

	flushRun := func() {
		for run > runMaxLen {
			out.writeByte(tagRun | byte(runMaxLen-1))
			run -= runMaxLen
		}
		if run > 0 {
			out.writeByte(tagRun | byte(run-1))
		}
		run = 0
	}

	for i := 0; i < count; i++ {
		cur := readPixelAt(pixels, i, channels)

		if cur.Equals(prev) {
			run++
			if run == MAXRUN {
				out.writeByte(tagBigRun)
				run = 0
			}
			continue
		}
		flushRun()

		slot := cur.Hash()
		switch {
		case c.get(slot).Equals(cur):
			out.writeByte(tagIndex | slot)
			c.set(cur)

		default:
			drB := cur.R - prev.R
			dgB := cur.G - prev.G
			dbB := cur.B - prev.B
			vaB := cur.A - prev.A

			dr, dg, db := int8(drB), int8(dgB), int8(dbB)

			switch {
			case vaB == 0 && diffInRange(dr, dg, db):
				out.writeByte(encodeDiff(dr, dg, db))

			default:
				drdg := int8(drB - dgB)
				dbdg := int8(dbB - dgB)
				if lumaInRange(dg, drdg, dbdg) && (vaB == 0 || allowAlphaChunk) {
					first, second := encodeLuma(dg, drdg, dbdg)
					out.writeByte(first)
					out.writeByte(second)
					if vaB != 0 {
						out.writeByte(tagAlphaOp)
						out.writeByte(cur.A)
					}
				} else if vaB == 0 {
					out.writeByte(tagRGB)
					out.writeByte(cur.R)
					out.writeByte(cur.G)
					out.writeByte(cur.B)
				} else {
					out.writeByte(tagRGBA)
					out.writeByte(cur.R)
					out.writeByte(cur.G)
					out.writeByte(cur.B)
					out.writeByte(cur.A)
				}
			}
			c.set(cur)
		}
		prev = cur
	}
	// A pending run too long for one RUN chunk is flushed at end of image
	// as a single BIGRUN; the decoder stops at the image's pixel count.
	if run > runMaxLen {
		out.writeByte(tagBigRun)
		run = 0
	}
	flushRun()

	return out.bytes(), nil
}

// DecodePixels is the symmetric decoder: it reads count pixels' worth of
// chunks from stream and writes a raw pixel buffer laid out per channels.
func DecodePixels(stream []byte, width, height uint32, channels byte) ([]byte, error) {
	if !channelsValid(channels) {
		return nil, ErrInvalidChannels
	}
	count := int(width) * int(height)
	out := make([]byte, count*bytesPerPixel(channels))

	cur := newCursor(stream)
	var c cache
	prev := startPixel
	written := 0

	emit := func(p Pixel, n int) {
		for k := 0; k < n && written < count; k++ {
			writePixelAt(out, written, channels, p)
			written++
		}
	}

	for written < count {
		tag, err := cur.readByte()
		if err != nil {
			return nil, err
		}

		switch {
		case tag == tagBigRun:
			emit(prev, MAXRUN)

		case tag == tagRGB:
			rgb, err := cur.readFull(3)
			if err != nil {
				return nil, err
			}
			p := Pixel{R: rgb[0], G: rgb[1], B: rgb[2], A: prev.A}
			c.set(p)
			prev = p
			emit(p, 1)

		case tag == tagRGBA:
			rgba, err := cur.readFull(4)
			if err != nil {
				return nil, err
			}
			p := Pixel{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
			c.set(p)
			prev = p
			emit(p, 1)

		case tag&tagMaskHi2 == tagIndex:
			p := c.get(tag)
			c.set(p)
			prev = p
			emit(p, 1)

		case tag == tagAlphaOp:
			// Only ever emitted directly after a LUMA chunk; handled
			// there by peeking ahead. Reaching this case in the main
			// dispatch means a malformed/out-of-position stream.
			return nil, ErrUnexpectedEOF

		case tag&tagMaskHi2 == tagDiff:
			dr, dg, db := decodeDiff(tag)
			p := Pixel{
				R: prev.R + byte(dr),
				G: prev.G + byte(dg),
				B: prev.B + byte(db),
				A: prev.A,
			}
			c.set(p)
			prev = p
			emit(p, 1)

		case tag&tagMaskHi2 == tagLuma:
			second, err := cur.readByte()
			if err != nil {
				return nil, err
			}
			dg, drdg, dbdg := decodeLuma(tag, second)
			p := Pixel{
				G: prev.G + byte(dg),
				R: prev.R + byte(drdg) + byte(dg),
				B: prev.B + byte(dbdg) + byte(dg),
				A: prev.A,
			}
			if next, ok := cur.peekByte(); ok && next == tagAlphaOp {
				cur.skip(1)
				alpha, err := cur.readByte()
				if err != nil {
					return nil, err
				}
				p.A = alpha
			}
			c.set(p)
			prev = p
			emit(p, 1)

		case tag&tagMaskHi2 == tagRun:
			n := int(tag&0x3F) + 1
			emit(prev, n)

		default:
			return nil, ErrUnknownBlockTag
		}
	}

	return out, nil
}
