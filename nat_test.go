package bignum

import (
	"strconv"
	"testing"
)

func TestBigNatSetUint64(t *testing.T) {
	for i, tc := range []struct {
		x    uint64
		want []Word
	}{
		{0, []Word{0}},
		{1, []Word{1}},
		{0xFFFFFFFF, []Word{0xFFFFFFFF}},
		{0x100000000, []Word{0, 1}},
		{0xFFFFFFFFFFFFFFFF, []Word{0xFFFFFFFF, 0xFFFFFFFF}},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(BigNat).SetUint64(tc.x)
			if len(z.limbs) != len(tc.want) {
				t.Fatalf("SetUint64(%#x) = %v, want %v", tc.x, z.limbs, tc.want)
			}
			for i := range tc.want {
				if z.limbs[i] != tc.want[i] {
					t.Fatalf("SetUint64(%#x) = %v, want %v", tc.x, z.limbs, tc.want)
				}
			}
			z.validateIfDebug(t)
		})
	}
}

func (x *BigNat) validateIfDebug(t *testing.T) {
	t.Helper()
	if len(x.limbs) == 0 {
		t.Fatal("BigNat: empty limb slice")
	}
	if len(x.limbs) > 1 && x.limbs[len(x.limbs)-1] == 0 {
		t.Fatalf("BigNat: unreduced trailing zero limb: %v", x.limbs)
	}
}

func TestBigNatSetDecimalDigits(t *testing.T) {
	for i, tc := range []struct {
		digits string
		want   uint64
	}{
		{"0", 0},
		{"1", 1},
		{"9", 9},
		{"123456789", 123456789},
		{"1234567890123", 1234567890123},
		{"4294967296", 4294967296}, // 2^32
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(BigNat).SetDecimalDigits(tc.digits)
			if got := z.Uint64(); got != tc.want {
				t.Fatalf("SetDecimalDigits(%q) = %d, want %d", tc.digits, got, tc.want)
			}
			z.validateIfDebug(t)
		})
	}
}

func TestBigNatDecimalStringRoundTrip(t *testing.T) {
	for i, s := range []string{
		"0", "1", "9", "10", "999999999", "1000000000",
		"123456789012345678901234567890",
		"99999999999999999999999999999999999999",
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(BigNat).SetDecimalDigits(s)
			got := z.DecimalString()
			want := s
			for len(want) > 1 && want[0] == '0' {
				want = want[1:]
			}
			if got != want {
				t.Fatalf("DecimalString round trip: SetDecimalDigits(%q).DecimalString() = %q, want %q", s, got, want)
			}
		})
	}
}

func TestBigNatIsZero(t *testing.T) {
	if !NewBigNat(0).IsZero() {
		t.Fatal("NewBigNat(0).IsZero() = false")
	}
	if NewBigNat(1).IsZero() {
		t.Fatal("NewBigNat(1).IsZero() = true")
	}
}

func BenchmarkBigNatSetDecimalDigits(b *testing.B) {
	s := "123456789012345678901234567890123456789012345678901234567890"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		new(BigNat).SetDecimalDigits(s)
	}
}
