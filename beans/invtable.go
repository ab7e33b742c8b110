package beans

// InverseTable answers, for any of the Total possible remainders R produced
// by a decode step, which symbol's slot contains it: a precomputed
// 1024-entry inverse table for cumul[b] <= R < cumul[b+1].
//
// The domain is exactly Total slots, one per possible R, so a single dense
// array lookup suffices. Variable-length Huffman codes need an 8-bit
// fast-path table plus a bit-by-bit fallback for longer codes, but BEANS
// symbols never need a slow path: every R maps to exactly one
// precomputed byte.
type InverseTable [Total]byte

// BuildInverseTable fills every slot R with the symbol b such that
// cumul[b] <= R < cumul[b+1].
func BuildInverseTable(cumul [257]uint32) *InverseTable {
	var inv InverseTable
	b := 0
	for r := uint32(0); r < Total; r++ {
		for cumul[b+1] <= r {
			b++
		}
		inv[r] = byte(b)
	}
	return &inv
}

// Lookup returns the symbol owning remainder r.
func (inv *InverseTable) Lookup(r uint32) byte {
	return inv[r]
}
