package beans

// buildThresholds records, for each of the four quadrant boundaries
// 256, 512, 768 and 1024, the symbol during which the cumulative
// frequency first reaches that boundary. The result holds the four
// zero-based symbol indices, one byte per quadrant; thresholdsWord packs
// them low byte first.
func buildThresholds(cumul [257]uint32) (thresholds [4]byte) {
	q := 0
	for b := 0; b < 256 && q < 4; b++ {
		for q < 4 && cumul[b+1] >= uint32(q+1)*256 {
			thresholds[q] = byte(b)
			q++
		}
	}
	return thresholds
}

// thresholdsWord packs the four threshold bytes into all 32 bits of a
// word, low byte first: quadrant 0 in bits 0-7, quadrant 3 in bits 24-31.
// The frequency-table section length travels in EncodeBytes's returned
// code (FT_LEN), not in this word.
func thresholdsWord(thresholds [4]byte) uint32 {
	return uint32(thresholds[0]) | uint32(thresholds[1])<<8 | uint32(thresholds[2])<<16 | uint32(thresholds[3])<<24
}

func wordToThresholds(w uint32) (thresholds [4]byte) {
	thresholds[0] = byte(w)
	thresholds[1] = byte(w >> 8)
	thresholds[2] = byte(w >> 16)
	thresholds[3] = byte(w >> 24)
	return thresholds
}

// squash reduces a normalized frequency table to its 256-byte wire form,
// one freq[i] mod 256 per symbol.
func squash(freq [256]uint16) (out [256]byte) {
	for i, f := range freq {
		out[i] = byte(f % 256)
	}
	return out
}

// reconstructFreq inverts squash given the thresholds word. Only a
// threshold symbol can have a frequency of 256 or more (any wider slot
// crosses a quadrant boundary), so every other symbol's frequency is its
// squashed byte. A threshold symbol gets 256 added to its squashed byte
// until the running total reaches the last quadrant boundary recorded at
// that symbol. A quadrant whose recorded threshold equals the previous
// quadrant's is empty (one symbol bridges both boundaries): it adds no
// adjustment point of its own, it only raises the boundary that symbol
// must reach. The running total after a threshold symbol lies within 256
// of that boundary, so the table is recovered exactly, including when a
// single symbol spans several quadrants.
func reconstructFreq(sq [256]byte, thresholds [4]byte) (freq [256]uint16) {
	var running uint32
	for b := 0; b < 256; b++ {
		f := uint32(sq[b])
		var need uint32
		for q := 0; q < 4; q++ {
			if int(thresholds[q]) == b {
				need = uint32(q+1) * 256
			}
		}
		for running+f < need {
			f += 256
		}
		freq[b] = uint16(f)
		running += f
	}
	return freq
}

// staticPrior is the fixed frequency table the self-describing mode uses
// to recursively encode its own squashed frequency array: a distribution
// favoring small byte values, since a squashed table is mostly made of
// small residues with a scattering of larger ones.
var staticPrior [256]uint16

func init() {
	var raw [256]uint32
	for i := range raw {
		raw[i] = uint32(256 - i)
	}
	staticPrior = Normalize(raw)
}
