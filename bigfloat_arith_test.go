package bignum

import (
	"math"
	"strconv"
	"testing"
)

func mustFloat(x float64) *BigFloat { return new(BigFloat).SetFloat64(x) }

func TestBigFloatAdd(t *testing.T) {
	for i, tc := range []struct{ x, y, want float64 }{
		{1, 2, 3},
		{1.5, 2.5, 4},
		{-1, 1, 0},
		{-1, -2, -3},
		{0.1, 0.2, 0.1 + 0.2},
		{1e300, 1e300, 2e300},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(BigFloat).Add(mustFloat(tc.x), mustFloat(tc.y))
			if got := z.Float64(); got != tc.want {
				t.Fatalf("Add(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestBigFloatSub(t *testing.T) {
	for i, tc := range []struct{ x, y, want float64 }{
		{3, 2, 1},
		{2, 3, -1},
		{-1, -1, 0},
		{5, 5, 0},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(BigFloat).Sub(mustFloat(tc.x), mustFloat(tc.y))
			if got := z.Float64(); got != tc.want {
				t.Fatalf("Sub(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestBigFloatMul(t *testing.T) {
	for i, tc := range []struct{ x, y, want float64 }{
		{2, 3, 6},
		{-2, 3, -6},
		{-2, -3, 6},
		{0, 5, 0},
		{1.5, 2, 3},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(BigFloat).Mul(mustFloat(tc.x), mustFloat(tc.y))
			if got := z.Float64(); got != tc.want {
				t.Fatalf("Mul(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestBigFloatQuo(t *testing.T) {
	for i, tc := range []struct{ x, y, want float64 }{
		{6, 3, 2},
		{1, 4, 0.25},
		{-6, 3, -2},
		{7, 2, 3.5},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(BigFloat).Quo(mustFloat(tc.x), mustFloat(tc.y))
			if got := z.Float64(); got != tc.want {
				t.Fatalf("Quo(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestBigFloatQuoApproximate(t *testing.T) {
	z := new(BigFloat).Quo(mustFloat(1), mustFloat(3))
	got := z.Float64()
	want := 1.0 / 3.0
	if diff := got - want; diff < -1e-12 || diff > 1e-12 {
		t.Fatalf("Quo(1,3) = %v, want ~%v", got, want)
	}
}

func TestBigFloatArithErrorPropagation(t *testing.T) {
	errVal := new(BigFloat).SetFloat64(math.NaN())
	one := mustFloat(1)
	for name, z := range map[string]*BigFloat{
		"Add": new(BigFloat).Add(errVal, one),
		"Sub": new(BigFloat).Sub(errVal, one),
		"Mul": new(BigFloat).Mul(errVal, one),
		"Quo": new(BigFloat).Quo(errVal, one),
	} {
		if z.State() != StateError {
			t.Fatalf("%s with Error operand: State() = %v, want error", name, z.State())
		}
	}
}

func TestBigFloatInfArithmetic(t *testing.T) {
	inf := new(BigFloat).SetFloat64(math.Inf(1))
	ninf := new(BigFloat).SetFloat64(math.Inf(-1))
	one := mustFloat(1)

	if got := new(BigFloat).Add(inf, one); got.State() != StateInf || got.Signbit() {
		t.Fatalf("Inf + 1: state=%v sign=%v, want inf/+", got.State(), got.Signbit())
	}
	if got := new(BigFloat).Add(inf, ninf); got.State() != StateError {
		t.Fatalf("Inf + -Inf: state=%v, want error", got.State())
	}
	if got := new(BigFloat).Mul(inf, mustFloat(0)); got.State() != StateError {
		t.Fatalf("Inf * 0: state=%v, want error", got.State())
	}
	if got := new(BigFloat).Mul(inf, mustFloat(-2)); got.State() != StateInf || !got.Signbit() {
		t.Fatalf("Inf * -2: state=%v sign=%v, want inf/-", got.State(), got.Signbit())
	}
	if got := new(BigFloat).Quo(inf, inf); got.State() != StateError {
		t.Fatalf("Inf / Inf: state=%v, want error", got.State())
	}
	if got := new(BigFloat).Quo(one, mustFloat(0)); got.State() != StateInf {
		t.Fatalf("1 / 0: state=%v, want inf", got.State())
	}
	if got := new(BigFloat).Quo(mustFloat(0), mustFloat(0)); got.State() != StateError {
		t.Fatalf("0 / 0: state=%v, want error", got.State())
	}
	if got := new(BigFloat).Quo(one, inf); got.State() != StateNormal || !got.IsZero() {
		t.Fatalf("1 / Inf: state=%v zero=%v, want normal/zero", got.State(), got.IsZero())
	}
}

func TestBigFloatAddSubInverse(t *testing.T) {
	x := mustFloat(123.456)
	y := mustFloat(78.9)
	sum := new(BigFloat).Add(x, y)
	back := new(BigFloat).Sub(sum, y)
	if diff := back.Float64() - x.Float64(); diff < -1e-9 || diff > 1e-9 {
		t.Fatalf("(x+y)-y = %v, want %v", back.Float64(), x.Float64())
	}
}

func BenchmarkBigFloatMul(b *testing.B) {
	x := mustFloat(123456.789)
	y := mustFloat(987654.321)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		new(BigFloat).Mul(x, y)
	}
}
