package beans

// CODE_LEN and FT_LEN extract the two fields EncodeBytes packs into its
// returned code word: the low 25 bits carry the total number of 32-bit
// code words in the output (thresholds word and frequency-table words
// included, when present), the high 7 bits carry how many of those
// leading words belong to the frequency-table section (0 when an
// explicit table was supplied).
func CODE_LEN(code uint32) uint32 { return code & 0x01FFFFFF }
func FT_LEN(code uint32) uint32   { return code >> 25 }

func packCode(totalWords, ftSection int) uint32 {
	return uint32(totalWords)&0x01FFFFFF | uint32(ftSection)<<25
}

// EncodeBytes compresses data into a sequence of 32-bit code words.
//
// If table is nil, the encoder derives a normalized frequency table from
// data itself (self-describing mode): it computes the thresholds word and
// the 256-byte squashed table, recursively BEANS-encodes that squashed
// table against the fixed static prior, and prefixes the thresholds word
// and the frequency-table code words onto the data code words. If table
// is non-nil, its counts are used directly and the output holds only the
// data code words.
//
// The returned code word's FT_LEN names how many of the leading words
// (including the thresholds word) make up the frequency-table section;
// CODE_LEN names the total word count. Both are needed, verbatim, by
// DecodeBytes.
func EncodeBytes(data []byte, table *[256]uint16) (words []uint32, code uint32, err error) {
	if len(data) == 0 {
		return nil, 0, ErrInvalidInput
	}

	if table != nil {
		cumul := CumulativeTable(*table)
		if cumul[256] != Total {
			return nil, 0, ErrEmptyFrequency
		}
		for _, b := range data {
			if table[b] == 0 {
				return nil, 0, ErrInvalidInput
			}
		}
		dataWords := encodeSymbols(data, cumul)
		return dataWords, packCode(len(dataWords), 0), nil
	}

	raw := RawCounts(data)
	freq := Normalize(raw)
	cumul := CumulativeTable(freq)
	if cumul[256] != Total {
		return nil, 0, ErrEmptyFrequency
	}

	thresholds := buildThresholds(cumul)
	sq := squash(freq)

	priorCumul := CumulativeTable(staticPrior)
	ftWords := encodeSymbols(sq[:], priorCumul)

	dataWords := encodeSymbols(data, cumul)

	out := make([]uint32, 0, 1+len(ftWords)+len(dataWords))
	out = append(out, thresholdsWord(thresholds))
	out = append(out, ftWords...)
	out = append(out, dataWords...)

	ftSection := 1 + len(ftWords)
	return out, packCode(len(out), ftSection), nil
}

// DecodeBytes reverses EncodeBytes, recovering count original bytes from
// words. code must be the exact value EncodeBytes returned alongside
// words. table must be the same table passed to EncodeBytes (nil for
// self-describing mode, the identical table otherwise).
func DecodeBytes(words []uint32, code uint32, count int, table *[256]uint16) ([]byte, error) {
	if count <= 0 {
		return nil, ErrInvalidInput
	}
	total := int(CODE_LEN(code))
	if total != len(words) {
		return nil, ErrTruncatedStream
	}

	ftSection := int(FT_LEN(code))

	var cumul [257]uint32
	var dataWords []uint32

	if ftSection == 0 {
		if table == nil {
			return nil, ErrInvalidInput
		}
		cumul = CumulativeTable(*table)
		dataWords = words
	} else {
		if ftSection < 1 || ftSection > len(words) {
			return nil, ErrTruncatedStream
		}
		thresholds := wordToThresholds(words[0])
		ftWords := words[1:ftSection]

		priorCumul := CumulativeTable(staticPrior)
		priorInv := BuildInverseTable(priorCumul)
		sq := decodeSymbols(ftWords, priorCumul, priorInv, 256)

		var sqArr [256]byte
		copy(sqArr[:], sq)
		freq := reconstructFreq(sqArr, thresholds)
		cumul = CumulativeTable(freq)
		dataWords = words[ftSection:]
	}
	if cumul[256] != Total {
		return nil, ErrEmptyFrequency
	}

	inv := BuildInverseTable(cumul)
	return decodeSymbols(dataWords, cumul, inv, count), nil
}
