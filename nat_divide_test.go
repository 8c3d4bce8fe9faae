package bignum

import (
	"strconv"
	"testing"
)

// approxQuotient interprets the post-Divide z (a fixed-point binary
// fraction shifted left by accuracy bits) as a float64 approximation of
// the original dividend / divisor.
func approxQuotient(z *BigNat, accuracy uint) float64 {
	num := new(BigNat).SetBigNat(z)
	whole, frac := num.Split(accuracy)
	f := float64(0)
	cur := new(BigNat).SetBigNat(frac)
	scale := 1.0
	for b := int(accuracy) - 1; b >= 0; b-- {
		scale /= 2
		if cur.Bit(uint(b)) {
			f += scale
		}
	}
	return float64(whole.Uint64()) + f
}

func TestBigNatDivideExact(t *testing.T) {
	for i, tc := range []struct {
		num, den uint64
		want     float64
	}{
		{1, 2, 0.5},
		{1, 4, 0.25},
		{3, 4, 0.75},
		{10, 4, 2.5},
		{1, 1, 1.0},
		{7, 2, 3.5},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := NewBigNat(tc.num)
			den := NewBigNat(tc.den)
			z.Divide(den, 40)
			got := approxQuotient(z, 40)
			if diff := got - tc.want; diff < -1e-9 || diff > 1e-9 {
				t.Fatalf("Divide(%d,%d) ~= %v, want %v", tc.num, tc.den, got, tc.want)
			}
		})
	}
}

func TestBigNatDivideApproximatesIrrational(t *testing.T) {
	// 1/3 in binary is non-terminating; check the truncated result is
	// within 1e-8 of 1/3 (about ten units of the requested 2^-30).
	z := NewBigNat(1)
	den := NewBigNat(3)
	z.Divide(den, 30)
	got := approxQuotient(z, 30)
	want := 1.0 / 3.0
	if diff := got - want; diff < -1e-8 || diff > 1e-8 {
		t.Fatalf("Divide(1,3) ~= %v, want ~%v", got, want)
	}
}

func TestBigNatDivideReturnsAccuracy(t *testing.T) {
	z := NewBigNat(7)
	den := NewBigNat(2)
	if got := z.Divide(den, 50); got != 50 {
		t.Fatalf("Divide returned %d, want 50", got)
	}
}
