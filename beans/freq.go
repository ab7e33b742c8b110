package beans

// Precision is the number of bits the BEANS cumulative-frequency table is
// normalized to: every valid table's 256 normalized counts sum to exactly
// 1 << Precision.
const Precision = 10

// Total is 1 << Precision, the value every normalized frequency table must
// sum to.
const Total = 1 << Precision

// Normalize scales raw symbol counts so they sum to exactly Total while
// keeping every symbol that had a nonzero raw count at a normalized count
// of at least 1. It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw [256]uint32) (out [256]uint16) {
	var sum uint64
	nz := 0
	for _, c := range raw {
		sum += uint64(c)
		if c > 0 {
			nz++
		}
	}
	if sum == 0 {
		return out
	}

	var bias uint64
	if sum > Total {
		bias = uint64(nz) << 19
	}
	numerator := uint64(Total)<<21 - bias
	r := divRoundNearest(numerator, sum)

	var total uint32
	largest := -1
	var largestRaw uint32
	for i, c := range raw {
		if c == 0 {
			continue
		}
		scaled := divRoundNearest(uint64(c)*r, uint64(1)<<21)
		if scaled == 0 {
			scaled = 1
		}
		out[i] = uint16(scaled)
		total += uint32(scaled)
		if c > largestRaw {
			largestRaw = c
			largest = i
		}
	}

	if largest >= 0 {
		slack := int32(Total) - int32(total)
		out[largest] = uint16(int32(out[largest]) + slack)
	}
	return out
}

func divRoundNearest(num, den uint64) uint64 {
	return (num + den/2) / den
}

// CumulativeTable derives the 257-entry cumulative-frequency table from a
// normalized frequency table: cumul[b] is the start of symbol b's slot,
// cumul[b+1]-cumul[b] its width. cumul[256] == Total for any table that
// sums to Total.
func CumulativeTable(freq [256]uint16) (cumul [257]uint32) {
	var running uint32
	for i, f := range freq {
		cumul[i] = running
		running += uint32(f)
	}
	cumul[256] = running
	return cumul
}

// RawCounts tallies byte occurrences in data, suitable as Normalize's input.
func RawCounts(data []byte) (raw [256]uint32) {
	for _, b := range data {
		raw[b]++
	}
	return raw
}
