package beans

// encodeSymbols runs the backward rANS scan described by the entropy
// coder's encoding rule over data, against the cumulative-frequency table
// cumul, and returns the resulting state as big-endian 32-bit code words.
//
// Starting the state at zero makes the first step processed (the last
// input symbol) naturally land on cumul[b] for that symbol: dividing zero
// by f yields remainder zero, shifting zero left by 10 bits is still
// zero, and adding cumul[b]+0 seeds exactly the value the scan needs. No
// special case for the first step is required.
func encodeSymbols(data []byte, cumul [257]uint32) []uint32 {
	s := newState()
	for i := len(data) - 1; i >= 0; i-- {
		b := data[i]
		f := cumul[int(b)+1] - cumul[b]
		c := cumul[b]

		r := s.divBy(f)
		s.shiftLeftPrecision()
		s.addSmall(c + r)
	}
	return s.words()
}

// decodeSymbols runs the forward rANS scan, recovering count symbols from
// the code words produced by encodeSymbols against the same cumulative
// table, using inv to resolve each remainder to its owning symbol.
func decodeSymbols(words []uint32, cumul [257]uint32, inv *InverseTable, count int) []byte {
	s := fromWords(words)
	out := make([]byte, count)
	for i := 0; i < count; i++ {
		r := s.shiftRightPrecision()
		b := inv.Lookup(r)
		f := cumul[int(b)+1] - cumul[b]

		s.mulBy(f)
		s.addSmall(r - cumul[b])
		out[i] = b
	}
	return out
}
