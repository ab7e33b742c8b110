package blockio

import "math"

// EncodeBlock frames one chunk-stream slice (len(data) <= MaxBlockPayload)
// by trying the raw and BEANS codecs and keeping whichever output is
// smaller, the same brute-force "try every option, keep the cheapest"
// shape as SelectBestPredictor picks a DPCM predictor by lowest
// variance. Cheap, entropy-only candidates are skipped first via
// estimateBeansSize so a doomed BEANS attempt doesn't always have to run
// to completion before losing to raw.
func EncodeBlock(data []byte) ([]byte, error) {
	best, err := rawCodec{}.Encode(data)
	if err != nil {
		return nil, err
	}

	if estimateBeansSize(data) < len(best) {
		if candidate, err := (beansCodec{}).Encode(data); err == nil && len(candidate) < len(best) {
			best = candidate
		}
	}
	return best, nil
}

// EncodeRawBlock frames data as a mode-0 block with no compression
// attempt, for callers (such as sqoa's QOICompat=false,
// Compression=CompressionNone path) that want block framing without
// paying for a BEANS trial.
func EncodeRawBlock(data []byte) ([]byte, error) {
	return (rawCodec{}).Encode(data)
}

// DecodeBlock reads one block starting at block[0], dispatching on the
// mode nibble in its leading byte to the matching registered codec.
func DecodeBlock(block []byte) (data []byte, consumed int, err error) {
	if len(block) == 0 {
		return nil, 0, ErrTruncatedBlock
	}
	mode := block[0] >> 4
	codec, err := Lookup(mode)
	if err != nil {
		return nil, 0, ErrUnknownBlockMode
	}
	return codec.Decode(block)
}

// estimateBeansSize is a zeroth-order entropy estimate of data's BEANS
// output size in bytes, used to skip a doomed self-describing BEANS
// attempt before encoding it for real: H(data)*len(data)/8 rounded down, plus the
// frequency-table section's own rough fixed cost. It never overestimates
// compressibility enough to wrongly skip a genuinely smaller BEANS
// encoding against raw storage's byte-for-byte cost, because raw's cost
// (len(data)) is exactly what it's compared against here.
func estimateBeansSize(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	bits := 0.0
	n := float64(len(data))
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		bits -= float64(c) * math.Log2(p)
	}

	const ftOverheadBytes = 48
	return int(bits/8) + ftOverheadBytes
}
