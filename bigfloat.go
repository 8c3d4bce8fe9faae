package bignum

import (
	"math"

	"golang.org/x/exp/constraints"
)

// State is the tri-state tag that replaces exceptions/panics for
// domain-level arithmetic errors: every BigFloat operation surfaces
// ParseError, DomainError, and OverflowToInfinity purely through this
// field rather than by raising.
type State int8

const (
	// StateNormal is a finite, well-defined value.
	StateNormal State = iota
	// StateInf is +/- infinity, sign given by Signbit.
	StateInf
	// StateError is the NaN-equivalent: the result of an operation that
	// has no well-defined value (ParseError, or a domain error such as
	// Inf + (-Inf), Inf * 0, Inf / Inf, or 0 / 0). Any operand in
	// StateError propagates StateError unconditionally.
	StateError
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateInf:
		return "inf"
	case StateError:
		return "error"
	default:
		return "invalid"
	}
}

// Tunable accuracy constants, adjustable by callers that need a
// different cost/precision tradeoff than the defaults. These are the
// library's only user-tunable knobs.
var (
	// ConstructorMaxIterations bounds the bit-construction loop used by
	// SetString's fractional part: construction from a decimal fraction
	// is not correctly rounded, and this is the iteration cap, expressed
	// as a multiple of the fractional digit count.
	ConstructorMaxIterations uint = 20

	// DivisionAccuracy is the number of bits of accuracy Quo requests
	// from BigNat.Divide.
	DivisionAccuracy uint = 50

	// SqrtAccuracyIncreaseRatio bounds Sqrt's Newton iteration: it stops
	// (as a runaway guard) once the candidate root's mantissa limb count
	// exceeds this many times the operand's mantissa limb count.
	SqrtAccuracyIncreaseRatio = 4

	// SqrtAccuracy is the convergence threshold for Sqrt's Newton
	// iteration, expressed as the smallest normal positive float64
	// (2^-1022, not the smallest subnormal).
	SqrtAccuracy = math.Ldexp(1, -1022)
)

// BigFloat is a signed, arbitrary-precision binary floating-point
// number: value = (-1)^sign * mantissa * 2^(-shift) when State() ==
// StateNormal. See State for the non-finite/error representations.
//
// The zero value is not ready for use; use new(BigFloat) followed by a
// Set* constructor, or one of the New* functions.
type BigFloat struct {
	mantissa BigNat
	shift    int32
	sign     bool
	state    State
}

// validate panics if z violates the right-aligned-mantissa invariant.
// Called only when debugBignum is true.
func (z *BigFloat) validate() {
	z.mantissa.validate()
	if z.state != StateNormal {
		return
	}
	if z.mantissa.IsZero() {
		if z.shift != 0 {
			panic("BigFloat: zero mantissa with nonzero shift")
		}
		return
	}
	if !z.mantissa.Bit(0) {
		panic("BigFloat: mantissa not right-aligned")
	}
}

// rightAlign right-aligns z's mantissa and folds the elided trailing
// zero bits into shift. Must be called after every mutating operation;
// skipping it (as one variant of the source does after multiplication)
// is a bug, not a valid optimization.
func (z *BigFloat) rightAlign() *BigFloat {
	if z.state != StateNormal {
		return z
	}
	if z.mantissa.IsZero() {
		z.shift = 0
		return z
	}
	out := z.mantissa.RightAlign()
	z.shift -= int32(out)
	if debugBignum {
		z.validate()
	}
	return z
}

// SetBigFloat sets z to x and returns z.
func (z *BigFloat) SetBigFloat(x *BigFloat) *BigFloat {
	if z == x {
		return z
	}
	z.mantissa.SetBigNat(&x.mantissa)
	z.shift = x.shift
	z.sign = x.sign
	z.state = x.state
	return z
}

// SetUint64 sets z to x and returns z.
func (z *BigFloat) SetUint64(x uint64) *BigFloat {
	z.mantissa.SetUint64(x)
	z.shift = 0
	z.sign = false
	z.state = StateNormal
	return z.rightAlign()
}

// SetInt64 sets z to x and returns z.
func (z *BigFloat) SetInt64(x int64) *BigFloat {
	neg := x < 0
	var ux uint64
	if neg {
		ux = uint64(-(x + 1)) + 1 // avoid overflow on math.MinInt64
	} else {
		ux = uint64(x)
	}
	z.mantissa.SetUint64(ux)
	z.shift = 0
	z.sign = neg
	z.state = StateNormal
	return z.rightAlign()
}

// NewFromSignedInt returns a new BigFloat set to x, for any signed
// integer type of width <= 64 bits.
func NewFromSignedInt[T constraints.Signed](x T) *BigFloat {
	return new(BigFloat).SetInt64(int64(x))
}

// NewFromUnsignedInt returns a new BigFloat set to x, for any unsigned
// integer type of width <= 64 bits.
func NewFromUnsignedInt[T constraints.Unsigned](x T) *BigFloat {
	return new(BigFloat).SetUint64(uint64(x))
}

const (
	float64FracBits = 52
	float64Bias     = 1023
	float32FracBits = 23
	float32Bias     = 127
)

// SetFloat64 sets z to x, decoding x's IEEE-754 bit pattern directly,
// and returns z. A NaN input produces StateError; an infinite input
// produces StateInf with the matching sign.
func (z *BigFloat) SetFloat64(x float64) *BigFloat {
	if math.IsNaN(x) {
		z.state = StateError
		return z
	}
	if math.IsInf(x, 0) {
		z.state = StateInf
		z.sign = math.Signbit(x)
		return z
	}
	bits := math.Float64bits(x)
	sign := bits>>63 != 0
	rawExp := int32((bits >> float64FracBits) & 0x7FF)
	frac := bits & (1<<float64FracBits - 1)
	z.state = StateNormal
	z.sign = sign
	if x == 0 {
		z.mantissa.SetUint64(0)
		z.shift = 0
		return z
	}
	if rawExp == 0 {
		// subnormal: no implicit leading 1.
		z.mantissa.SetUint64(frac)
		z.shift = float64FracBits + float64Bias - 1
	} else {
		z.mantissa.SetUint64(frac | 1<<float64FracBits)
		z.shift = float64FracBits + float64Bias - rawExp
	}
	return z.rightAlign()
}

// SetFloat32 sets z to x, decoding x's IEEE-754 bit pattern directly,
// and returns z. A NaN input produces StateError; an infinite input
// produces StateInf with the matching sign.
func (z *BigFloat) SetFloat32(x float32) *BigFloat {
	if math.IsNaN(float64(x)) {
		z.state = StateError
		return z
	}
	if math.IsInf(float64(x), 0) {
		z.state = StateInf
		z.sign = math.Signbit(float64(x))
		return z
	}
	bits := math.Float32bits(x)
	sign := bits>>31 != 0
	rawExp := int32((bits >> float32FracBits) & 0xFF)
	frac := uint64(bits & (1<<float32FracBits - 1))
	z.state = StateNormal
	z.sign = sign
	if x == 0 {
		z.mantissa.SetUint64(0)
		z.shift = 0
		return z
	}
	if rawExp == 0 {
		z.mantissa.SetUint64(frac)
		z.shift = float32FracBits + float32Bias - 1
	} else {
		z.mantissa.SetUint64(frac | 1<<float32FracBits)
		z.shift = float32FracBits + float32Bias - rawExp
	}
	return z.rightAlign()
}

// State returns z's state tag.
func (z *BigFloat) State() State {
	return z.state
}

// Signbit reports whether z is negative (or -0, or -Inf).
func (z *BigFloat) Signbit() bool {
	return z.sign
}

// IsZero reports whether z is +0 or -0.
func (z *BigFloat) IsZero() bool {
	return z.state == StateNormal && z.mantissa.IsZero()
}

// Neg sets z to -x and returns z. Negating StateError or an unsigned
// zero/infinity is well-defined: the sign bit is simply flipped, since
// +0 and -0 (like +Inf and -Inf) are distinguishable in storage.
func (z *BigFloat) Neg(x *BigFloat) *BigFloat {
	z.SetBigFloat(x)
	z.sign = !z.sign
	return z
}

// Abs sets z to |x| and returns z.
func (z *BigFloat) Abs(x *BigFloat) *BigFloat {
	z.SetBigFloat(x)
	if z.state != StateError {
		z.sign = false
	}
	return z
}

// magCmp compares the magnitudes of x and y (both assumed not
// StateError), returning -1, 0, or +1.
func magCmp(x, y *BigFloat) int {
	xInf := x.state == StateInf
	yInf := y.state == StateInf
	if xInf || yInf {
		switch {
		case xInf && yInf:
			return 0
		case xInf:
			return 1
		default:
			return -1
		}
	}
	xZero := x.mantissa.IsZero()
	yZero := y.mantissa.IsZero()
	switch {
	case xZero && yZero:
		return 0
	case xZero:
		return -1
	case yZero:
		return 1
	}
	ex := x.mantissa.Log2() - int(x.shift)
	ey := y.mantissa.Log2() - int(y.shift)
	if ex != ey {
		if ex < ey {
			return -1
		}
		return 1
	}
	if x.shift == y.shift {
		return x.mantissa.Cmp(&y.mantissa)
	}
	mx := new(BigNat).SetBigNat(&x.mantissa)
	my := new(BigNat).SetBigNat(&y.mantissa)
	if x.shift < y.shift {
		mx.Lsh(mx, uint(y.shift-x.shift))
	} else {
		my.Lsh(my, uint(x.shift-y.shift))
	}
	return mx.Cmp(my)
}

// Cmp compares x and y and returns -1, 0, or +1 according to whether
// x < y, x == y, or x > y. If either operand has State() ==
// StateError, the comparison is unordered and Cmp returns 2; callers
// comparing values of uncertain state should check State first.
func (x *BigFloat) Cmp(y *BigFloat) int {
	if x.state == StateError || y.state == StateError {
		return 2
	}
	if x.sign != y.sign {
		if x.IsZero() && y.IsZero() {
			return 0
		}
		if x.sign {
			return -1
		}
		return 1
	}
	m := magCmp(x, y)
	if x.sign {
		return -m
	}
	return m
}

// Equal reports whether x and y have identical state, sign, shift and
// mantissa: a stricter notion than Cmp == 0 would be for non-canonical
// values, though the right-aligned-mantissa invariant means the two
// coincide for any value produced by this package.
func (x *BigFloat) Equal(y *BigFloat) bool {
	return x.state == y.state && x.sign == y.sign && x.shift == y.shift && x.mantissa.Cmp(&y.mantissa) == 0
}
