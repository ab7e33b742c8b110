package beans

import "testing"

func TestNormalizeSumsToTotal(t *testing.T) {
	tests := []struct {
		name string
		raw  [256]uint32
	}{
		{"uniform", func() (r [256]uint32) {
			for i := range r {
				r[i] = 7
			}
			return r
		}()},
		{"single symbol", func() (r [256]uint32) {
			r[42] = 900
			return r
		}()},
		{"sparse", func() (r [256]uint32) {
			r[0] = 1
			r[1] = 1
			r[255] = 3
			return r
		}()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			freq := Normalize(tc.raw)
			var sum uint32
			for i, f := range freq {
				sum += uint32(f)
				if tc.raw[i] > 0 && f == 0 {
					t.Fatalf("symbol %d had nonzero raw count but normalized to 0", i)
				}
			}
			if sum != Total {
				t.Fatalf("sum = %d, want %d", sum, Total)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	var raw [256]uint32
	raw[3] = 123
	raw[100] = 9001
	raw[255] = 4

	once := Normalize(raw)

	var onceAsRaw [256]uint32
	for i, f := range once {
		onceAsRaw[i] = uint32(f)
	}
	twice := Normalize(onceAsRaw)

	if once != twice {
		t.Fatalf("normalize is not idempotent:\nonce=%v\ntwice=%v", once, twice)
	}
}

// TestNormalizationBoundary is end-to-end scenario 6: one symbol with a
// raw count of 1 alongside another with a raw count of one million, the
// rest zero. Both symbols must normalize to at least 1, the table must
// sum to exactly Total, and the dominant symbol must absorb the slack.
func TestNormalizationBoundary(t *testing.T) {
	var raw [256]uint32
	raw[5] = 1
	raw[200] = 1_000_000

	freq := Normalize(raw)

	if freq[5] < 1 {
		t.Fatalf("minor symbol normalized to %d, want >= 1", freq[5])
	}
	if freq[200] < 1 {
		t.Fatalf("dominant symbol normalized to %d, want >= 1", freq[200])
	}

	var sum uint32
	for _, f := range freq {
		sum += uint32(f)
	}
	if sum != Total {
		t.Fatalf("sum = %d, want %d", sum, Total)
	}

	for i, f := range freq {
		if i != 5 && i != 200 && f != 0 {
			t.Fatalf("symbol %d had zero raw count but normalized to %d", i, f)
		}
	}
}

func TestCumulativeTableMatchesFreq(t *testing.T) {
	var freq [256]uint16
	freq[0] = 100
	freq[1] = 200
	freq[255] = Total - 300

	cumul := CumulativeTable(freq)
	if cumul[0] != 0 {
		t.Fatalf("cumul[0] = %d, want 0", cumul[0])
	}
	if cumul[1] != 100 {
		t.Fatalf("cumul[1] = %d, want 100", cumul[1])
	}
	if cumul[2] != 300 {
		t.Fatalf("cumul[2] = %d, want 300", cumul[2])
	}
	if cumul[256] != Total {
		t.Fatalf("cumul[256] = %d, want %d", cumul[256], Total)
	}
}

func TestRawCounts(t *testing.T) {
	raw := RawCounts([]byte{1, 1, 2, 3, 3, 3})
	if raw[1] != 2 || raw[2] != 1 || raw[3] != 3 {
		t.Fatalf("unexpected counts: raw[1]=%d raw[2]=%d raw[3]=%d", raw[1], raw[2], raw[3])
	}
}
