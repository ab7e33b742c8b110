package bigint

import "testing"

func TestMulThenDivRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		initial []uint32
		factor  uint32
	}{
		{"single limb, small factor", []uint32{1}, 3},
		{"single limb, growing factor", []uint32{0xFFFFFFFF}, 16},
		{"multi limb", []uint32{0x89ABCDEF, 0x01234567}, 1024},
		{"factor one is no-op", []uint32{42, 7}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]uint32, len(tc.initial)+1)
			copy(buf, tc.initial)
			nseg := len(tc.initial)

			grown := MulScalar(buf, nseg, tc.factor)

			back, rem := DivScalar(buf, grown, tc.factor)
			if tc.factor != 1 && rem != 0 {
				t.Fatalf("expected zero remainder dividing back out, got %d", rem)
			}

			for i := 0; i < len(tc.initial); i++ {
				if buf[i] != tc.initial[i] {
					t.Fatalf("limb %d: got %#x want %#x (len after div=%d)", i, buf[i], tc.initial[i], back)
				}
			}
		})
	}
}

func TestDivScalarTopLimbSmallerThanDivisor(t *testing.T) {
	// N = 0x00000001_FFFFFFFF (two limbs), divide by a divisor bigger than
	// the top limb: the initial remainder seed must come from the top limb.
	n := []uint32{0xFFFFFFFF, 0x00000001}
	newLen, _ := DivScalar(n, 2, 1000)
	if newLen > 2 {
		t.Fatalf("length grew unexpectedly: %d", newLen)
	}

	want := (uint64(1)<<32 | 0xFFFFFFFF) / 1000
	got := uint64(n[0])
	if newLen == 2 {
		got |= uint64(n[1]) << 32
	}
	if got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestShiftRightLeftRoundTrip(t *testing.T) {
	for k := uint(1); k < 32; k++ {
		buf := make([]uint32, 3)
		buf[0] = 0xDEADBEEF
		buf[1] = 0x12345678
		nseg := 2

		newLen, rem := ShiftRight(buf, nseg, k)
		newLen = ShiftLeft(buf, newLen, k)

		// OR the remainder back into the low bits to reconstruct exactly.
		buf[0] |= rem

		orig := []uint32{0xDEADBEEF, 0x12345678}
		for i := 0; i < nseg; i++ {
			if buf[i] != orig[i] {
				t.Fatalf("k=%d limb %d: got %#x want %#x (len=%d)", k, i, buf[i], orig[i], newLen)
			}
		}
	}
}

func TestShiftRightTopLimbVanishes(t *testing.T) {
	// Top limb is smaller than 2^k: it must fully fold into the carry and
	// the limb count must drop by one.
	n := []uint32{0x00000003, 0x00000001, 0}
	newLen, rem := ShiftRight(n, 2, 4)
	if newLen != 1 {
		t.Fatalf("expected length to drop to 1, got %d", newLen)
	}
	if rem != 0x3 {
		t.Fatalf("expected remainder 0x3, got %#x", rem)
	}
	want := (uint64(1)<<32 | 3) >> 4
	if uint64(n[0]) != want {
		t.Fatalf("got %#x want %#x", n[0], want)
	}
}

func TestShiftLeftAppendsLimbOnCarry(t *testing.T) {
	n := []uint32{0x80000000, 0}
	newLen := ShiftLeft(n, 1, 1)
	if newLen != 2 {
		t.Fatalf("expected a new limb to be appended, got length %d", newLen)
	}
	if n[0] != 0 || n[1] != 1 {
		t.Fatalf("got limbs %#x %#x, want 0x0 0x1", n[0], n[1])
	}
}

func TestMulScalarFactorOneNoOp(t *testing.T) {
	n := []uint32{5, 9, 0}
	newLen := MulScalar(n, 2, 1)
	if newLen != 2 || n[0] != 5 || n[1] != 9 {
		t.Fatalf("factor-1 multiply must be a no-op, got len=%d limbs=%v", newLen, n[:2])
	}
}
