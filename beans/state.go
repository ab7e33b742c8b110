package beans

import "github.com/jido/seqoia/bigint"

// state is the ANS big integer: it grows while encoding (backward scan)
// and shrinks while decoding (forward scan). Limbs are little-endian,
// exactly as bigint expects.
type state struct {
	limbs []uint32
	n     int
}

func newState() *state {
	return &state{limbs: make([]uint32, 4)}
}

// fromWords loads a state from the big-endian 32-bit code words the
// encoder emitted, most significant word first (so the words read in
// natural reading order reconstruct the limb array in little-endian
// order once reversed).
func fromWords(words []uint32) *state {
	s := &state{limbs: make([]uint32, len(words)+1), n: len(words)}
	for i, w := range words {
		s.limbs[len(words)-1-i] = w
	}
	for s.n > 0 && s.limbs[s.n-1] == 0 {
		s.n--
	}
	return s
}

// words returns the state's limbs as big-endian 32-bit code words, most
// significant word first.
func (s *state) words() []uint32 {
	out := make([]uint32, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = s.limbs[s.n-1-i]
	}
	return out
}

func (s *state) ensureSpare(extra int) {
	for len(s.limbs) < s.n+extra {
		s.limbs = append(s.limbs, 0)
	}
}

// addSmall adds a 32-bit value into the least-significant limb, carrying
// as needed, growing the limb count if the carry chain overflows the top.
func (s *state) addSmall(v uint32) {
	if s.n == 0 {
		if v == 0 {
			return
		}
		s.ensureSpare(1)
		s.limbs[0] = v
		s.n = 1
		return
	}

	carry := uint64(v)
	for i := 0; i < s.n && carry != 0; i++ {
		sum := uint64(s.limbs[i]) + carry
		s.limbs[i] = uint32(sum)
		carry = sum >> 32
	}
	if carry != 0 {
		s.ensureSpare(1)
		s.limbs[s.n] = uint32(carry)
		s.n++
	}
}

func isPow2(f uint32) bool {
	return f != 0 && f&(f-1) == 0
}

func log2(f uint32) uint {
	k := uint(0)
	for f > 1 {
		f >>= 1
		k++
	}
	return k
}

// divBy divides the state by f, the encode step that divides by a
// symbol's frequency; the fixed 10-bit shift is shiftRightPrecision.
// Uses the bigint shift-right fast path whenever f is a power of two.
func (s *state) divBy(f uint32) (remainder uint32) {
	if isPow2(f) {
		newN, rem := bigint.ShiftRight(s.limbs, s.n, log2(f))
		s.n = newN
		return rem
	}
	newN, rem := bigint.DivScalar(s.limbs, s.n, f)
	s.n = newN
	return rem
}

// mulBy multiplies the state by f, the decode-side dual of divBy.
func (s *state) mulBy(f uint32) {
	if isPow2(f) {
		s.ensureSpare(1)
		s.n = bigint.ShiftLeft(s.limbs, s.n, log2(f))
		return
	}
	s.ensureSpare(1)
	s.n = bigint.MulScalar(s.limbs, s.n, f)
}

// shiftLeftPrecision multiplies the state by Total (a shift by Precision
// bits), the fixed per-symbol renormalization step of encode.
func (s *state) shiftLeftPrecision() {
	s.ensureSpare(1)
	s.n = bigint.ShiftLeft(s.limbs, s.n, Precision)
}

// shiftRightPrecision divides the state by Total, returning the discarded
// low Precision bits as R, the fixed per-symbol renormalization step of
// decode.
func (s *state) shiftRightPrecision() (r uint32) {
	newN, rem := bigint.ShiftRight(s.limbs, s.n, Precision)
	s.n = newN
	return rem
}

func (s *state) isZero() bool {
	return s.n == 0
}
