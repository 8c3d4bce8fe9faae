package bignum

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errBadExponent = errors.New("bignum: malformed exponent")

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseSignedInt(s string) (int64, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" || !isAllDigits(s) {
		return 0, errBadExponent
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// SetString sets z to the value of s and returns z. s must match
//
//	[+-]?[0-9]+(\.[0-9]*)?([eE][+-]?[0-9]+)?
//
// Anything else (whitespace, a missing whole part, a malformed
// exponent) sets z.State() to StateError rather than panicking or
// returning a Go error: per the library's error model, parse failure
// is just another arithmetic error, observable the same way.
//
// Construction from a decimal fraction is bounded, not correctly
// rounded: the fractional binary expansion loop runs at most
// ConstructorMaxIterations * len(fractional digits) iterations.
func (z *BigFloat) SetString(s string) *BigFloat {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	mantPart, expPart, hasExp := s, "", false
	for i := 0; i < len(s); i++ {
		if s[i] == 'e' || s[i] == 'E' {
			mantPart, expPart, hasExp = s[:i], s[i+1:], true
			break
		}
	}

	whole, frac := mantPart, ""
	for i := 0; i < len(mantPart); i++ {
		if mantPart[i] == '.' {
			whole, frac = mantPart[:i], mantPart[i+1:]
			break
		}
	}

	if whole == "" || !isAllDigits(whole) || !isAllDigits(frac) {
		z.state = StateError
		return z
	}

	var exp int64
	if hasExp {
		v, err := parseSignedInt(expPart)
		if err != nil {
			z.state = StateError
			return z
		}
		exp = v
	}

	frac = strings.TrimRight(frac, "0")

	switch {
	case exp > 0:
		n := int(exp)
		if n <= len(frac) {
			whole += frac[:n]
			frac = frac[n:]
		} else {
			whole += frac + strings.Repeat("0", n-len(frac))
			frac = ""
		}
	case exp < 0:
		n := int(-exp)
		if n <= len(whole) {
			frac = whole[len(whole)-n:] + frac
			whole = whole[:len(whole)-n]
			if whole == "" {
				whole = "0"
			}
		} else {
			frac = strings.Repeat("0", n-len(whole)) + whole + frac
			whole = "0"
		}
	}

	var mantissa BigNat
	mantissa.SetDecimalDigits(whole)

	var shift int32
	if len(frac) > 0 {
		d := new(BigNat).SetDecimalDigits(frac)
		o := new(BigNat).SetDecimalDigits("1" + strings.Repeat("0", len(frac)))
		maxIter := ConstructorMaxIterations * uint(len(frac))
		for !d.IsZero() && uint(shift) < maxIter {
			mantissa.Lsh(&mantissa, 1)
			d.Lsh(d, 1)
			if d.Cmp(o) >= 0 {
				mantissa.SetBit(0, true)
				d.Sub(d, o)
			}
			shift++
		}
	}

	z.mantissa.SetBigNat(&mantissa)
	z.shift = shift
	z.sign = neg
	z.state = StateNormal
	return z.rightAlign()
}

// extractTopBits returns the top n bits of m's value as an n-bit
// right-aligned integer, zero-padding on the low end if m has fewer
// than n significant bits. n is at most 64 (it is used with the host
// float fraction widths, 24 and 53 bits), so those bits lie in at most
// the top three limbs: it reads them directly by index with
// Limb/NumLimbs rather than materializing a shifted copy of the whole
// BigNat.
func extractTopBits(m *BigNat, n int) uint64 {
	low := m.Log2() - (n - 1) // bit of m that lands on bit 0 of the result
	var out uint64
	for i := m.NumLimbs() - 1; i >= 0; i-- {
		s := i*_W - low
		if s <= -_W {
			break
		}
		if s >= 0 {
			out |= uint64(m.Limb(i)) << uint(s)
		} else {
			out |= uint64(m.Limb(i)) >> uint(-s)
		}
	}
	return out
}

// Float64 converts z to a float64 by truncating its mantissa to the top
// 53 bits (rounding toward zero, not to nearest). Magnitudes beyond the host
// double's normal range overflow to +-Inf; magnitudes too small
// underflow to +-0 (subnormal output is out of scope).
func (x *BigFloat) Float64() float64 {
	if x.state == StateError {
		return math.NaN()
	}
	if x.state == StateInf {
		if x.sign {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if x.IsZero() {
		if x.sign {
			return math.Copysign(0, -1)
		}
		return 0
	}
	exp := x.mantissa.Log2() - int(x.shift)
	if exp > 1023 {
		if x.sign {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if exp < -1022 {
		if x.sign {
			return math.Copysign(0, -1)
		}
		return 0
	}
	frac := extractTopBits(&x.mantissa, float64FracBits+1)
	rawExp := uint64(exp + float64Bias)
	bits := rawExp << float64FracBits
	bits |= frac & (1<<float64FracBits - 1)
	if x.sign {
		bits |= 1 << 63
	}
	return math.Float64frombits(bits)
}

// Float32 converts z to a float32 by truncating its mantissa to the top
// 24 bits, with the same rounding and overflow/underflow conventions as
// Float64.
func (x *BigFloat) Float32() float32 {
	if x.state == StateError {
		return float32(math.NaN())
	}
	if x.state == StateInf {
		if x.sign {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	}
	if x.IsZero() {
		if x.sign {
			return float32(math.Copysign(0, -1))
		}
		return 0
	}
	exp := x.mantissa.Log2() - int(x.shift)
	if exp > 127 {
		if x.sign {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	}
	if exp < -126 {
		if x.sign {
			return float32(math.Copysign(0, -1))
		}
		return 0
	}
	frac := extractTopBits(&x.mantissa, float32FracBits+1)
	rawExp := uint32(exp + float32Bias)
	bits := rawExp << float32FracBits
	bits |= uint32(frac) & (1<<float32FracBits - 1)
	if x.sign {
		bits |= 1 << 31
	}
	return math.Float32frombits(bits)
}

// renderFraction renders the fractional value frac/2^shift in decimal,
// up to maxDigits digits (or until exhausted, if maxDigits == 0), by
// repeatedly multiplying by ten and extracting the digit that crosses
// the binary point.
func renderFraction(frac *BigNat, shift uint, maxDigits int) string {
	if shift == 0 || frac.IsZero() {
		return ""
	}
	var sb strings.Builder
	cur := new(BigNat).SetBigNat(frac)
	ten := NewBigNat(10)
	for count := 0; !cur.IsZero() && (maxDigits == 0 || count < maxDigits); count++ {
		cur.Mul(cur, ten)
		digit := new(BigNat).Rsh(cur, shift).Uint64()
		sb.WriteByte(byte('0' + digit))
		cur.maskLow(shift)
	}
	return sb.String()
}

// Text renders z in the form [-]D.Ddddd[e+-N], where D.Dddd has
// exactly one nonzero digit before the point and the exponent is
// omitted when the magnitude is in [1, 10). precision bounds the
// number of decimal digits rendered from the fractional part of the
// value (the part below the binary point, before the point is moved for
// the exponent); 0 means render as many as the representation supports.
func (x *BigFloat) Text(precision int) string {
	switch x.state {
	case StateError:
		return "NaN"
	case StateInf:
		if x.sign {
			return "-Inf"
		}
		return "Inf"
	}
	if x.IsZero() {
		if x.sign {
			return "-0.0"
		}
		return "0.0"
	}

	sign := ""
	if x.sign {
		sign = "-"
	}

	var wholeNat, fracNat *BigNat
	var fracShift uint
	if x.shift > 0 {
		fracShift = uint(x.shift)
		wholeNat, fracNat = x.mantissa.Split(fracShift)
	} else {
		wholeNat = new(BigNat).SetBigNat(&x.mantissa)
		if x.shift < 0 {
			wholeNat.Lsh(wholeNat, uint(-x.shift))
		}
		fracNat = NewBigNat(0)
	}

	wholeStr := wholeNat.DecimalString()
	fracStr := renderFraction(fracNat, fracShift, precision)
	digits := wholeStr + fracStr

	firstNZ := strings.IndexFunc(digits, func(r rune) bool { return r != '0' })
	if firstNZ < 0 {
		// shouldn't happen (IsZero handled above), but render safely
		return sign + "0.0"
	}

	exponent := (len(wholeStr) - 1) - firstNZ
	significant := digits[firstNZ:]
	firstDigit := significant[:1]
	rest := strings.TrimRight(significant[1:], "0")
	if rest == "" {
		rest = "0"
	}

	if exponent == 0 {
		return sign + firstDigit + "." + rest
	}
	return sign + firstDigit + "." + rest + fmt.Sprintf("e%+d", exponent)
}

// String implements fmt.Stringer, equivalent to x.Text(0).
func (x *BigFloat) String() string {
	return x.Text(0)
}
