// Package bigint implements the multi-precision unsigned integer used by
// the BEANS entropy coder's ANS state. A value is held as a little-endian
// slice of 32-bit limbs: N[0] is the least significant.
//
// All four operations mutate their limb slice in place and report the new
// live length. Callers that grow a value (MulScalar, ShiftLeft) must pass a
// slice with at least one spare limb of capacity beyond nseg; the extra
// limb at index nseg may be written even when the operation does not grow.
package bigint

// DivScalar divides N[:nseg] by divisor (long division from the most
// significant limb down), storing the quotient back into N and returning
// the new limb count and the remainder. A divisor of 1 is a no-op.
func DivScalar(n []uint32, nseg int, divisor uint32) (newLen int, remainder uint32) {
	if divisor == 1 {
		return nseg, 0
	}
	if nseg == 0 {
		return 0, 0
	}

	length := nseg
	var rem uint64
	if divisor > n[length-1] {
		rem = uint64(n[length-1])
		length--
	}

	for i := length - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(n[i])
		n[i] = uint32(cur / uint64(divisor))
		rem = cur % uint64(divisor)
	}

	for length > 0 && n[length-1] == 0 {
		length--
	}
	return length, uint32(rem)
}

// MulScalar multiplies N[:nseg] by factor (long multiplication from the
// least significant limb up with a 64-bit accumulator), appending a new top
// limb at n[nseg] when the final carry is nonzero. A factor of 1 is a
// no-op.
func MulScalar(n []uint32, nseg int, factor uint32) (newLen int) {
	if factor == 1 {
		return nseg
	}

	var carry uint64
	for i := 0; i < nseg; i++ {
		prod := uint64(n[i])*uint64(factor) + carry
		n[i] = uint32(prod)
		carry = prod >> 32
	}

	length := nseg
	if carry != 0 {
		n[length] = uint32(carry)
		length++
	}
	return length
}

// ShiftRight shifts N[:nseg] right by k bits (0 <= k < 32), from the most
// significant limb down. It returns the new limb count and the k bits that
// fell off the bottom of the whole number. If the top limb fits entirely
// within those low k bits, the limb count decreases by one and the top
// limb's value feeds the carry into the new top limb below it.
func ShiftRight(n []uint32, nseg int, k uint) (newLen int, remainder uint32) {
	if k == 0 || nseg == 0 {
		return nseg, 0
	}

	rem := n[0] & (1<<k - 1)

	var carry uint32
	for i := nseg - 1; i >= 0; i-- {
		orig := n[i]
		n[i] = orig>>k | carry<<(32-k)
		carry = orig
	}

	length := nseg
	if n[length-1] == 0 {
		length--
	}
	return length, rem
}

// ShiftLeft shifts N[:nseg] left by k bits (0 <= k < 32), from the least
// significant limb up, appending a new top limb at n[nseg] when the final
// carry is nonzero.
func ShiftLeft(n []uint32, nseg int, k uint) (newLen int) {
	if k == 0 {
		return nseg
	}

	var carry uint32
	for i := 0; i < nseg; i++ {
		orig := n[i]
		n[i] = orig<<k | carry
		carry = orig >> (32 - k)
	}

	length := nseg
	if carry != 0 {
		n[length] = carry
		length++
	}
	return length
}
