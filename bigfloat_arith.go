package bignum

// Add sets z to x + y and returns z. ERROR propagates unconditionally;
// opposite-signed infinities produce ERROR; otherwise an infinite
// operand absorbs. Two finite operands are aligned to the larger shift
// before combining, and combined by addition (same sign) or by BigNat
// absolute difference with the result sign taken from whichever
// magnitude was larger (opposite signs).
func (z *BigFloat) Add(x, y *BigFloat) *BigFloat {
	if x.state == StateError || y.state == StateError {
		z.state = StateError
		return z
	}
	if x.state == StateInf || y.state == StateInf {
		if x.state == StateInf && y.state == StateInf && x.sign != y.sign {
			z.state = StateError
			return z
		}
		z.state = StateInf
		if x.state == StateInf {
			z.sign = x.sign
		} else {
			z.sign = y.sign
		}
		return z
	}

	shift := x.shift
	mx := new(BigNat).SetBigNat(&x.mantissa)
	my := new(BigNat).SetBigNat(&y.mantissa)
	switch {
	case x.shift < y.shift:
		mx.Lsh(mx, uint(y.shift-x.shift))
		shift = y.shift
	case y.shift < x.shift:
		my.Lsh(my, uint(x.shift-y.shift))
	}

	var mant BigNat
	var sign bool
	if x.sign == y.sign {
		mant.Add(mx, my)
		sign = x.sign
	} else {
		switch mx.Cmp(my) {
		case 0:
			mant.SetUint64(0)
			sign = false
		case 1:
			mant.Sub(mx, my)
			sign = x.sign
		default:
			mant.Sub(my, mx)
			sign = y.sign
		}
	}

	z.mantissa.SetBigNat(&mant)
	z.shift = shift
	z.sign = sign
	z.state = StateNormal
	return z.rightAlign()
}

// Sub sets z to x - y and returns z. Defined as addition after flipping
// y's sign.
func (z *BigFloat) Sub(x, y *BigFloat) *BigFloat {
	negY := new(BigFloat).Neg(y)
	return z.Add(x, negY)
}

// Mul sets z to x * y (exact) and returns z. ERROR propagates; 0 * Inf
// is a domain error; otherwise an infinite operand makes the result
// infinite with the XORed sign.
func (z *BigFloat) Mul(x, y *BigFloat) *BigFloat {
	if x.state == StateError || y.state == StateError {
		z.state = StateError
		return z
	}
	xInf := x.state == StateInf
	yInf := y.state == StateInf
	if xInf || yInf {
		if x.IsZero() || y.IsZero() {
			z.state = StateError
			return z
		}
		z.state = StateInf
		z.sign = x.sign != y.sign
		return z
	}
	var mant BigNat
	mant.Mul(&x.mantissa, &y.mantissa)
	shift := x.shift + y.shift
	sign := x.sign != y.sign
	z.mantissa.SetBigNat(&mant)
	z.shift = shift
	z.sign = sign
	z.state = StateNormal
	return z.rightAlign()
}

// Quo sets z to the quotient x / y, approximate to DivisionAccuracy
// bits, and returns z. ERROR propagates; Inf/Inf and 0/0 are domain
// errors; x/0 (x nonzero) overflows to Inf; x/Inf is 0.
func (z *BigFloat) Quo(x, y *BigFloat) *BigFloat {
	if x.state == StateError || y.state == StateError {
		z.state = StateError
		return z
	}
	xInf := x.state == StateInf
	yInf := y.state == StateInf
	xZero := x.IsZero()
	yZero := y.IsZero()
	sign := x.sign != y.sign

	if xInf && yInf {
		z.state = StateError
		return z
	}
	if xZero && yZero {
		z.state = StateError
		return z
	}
	if yZero {
		z.state = StateInf
		z.sign = sign
		return z
	}
	if yInf {
		z.mantissa.SetUint64(0)
		z.shift = 0
		z.sign = sign
		z.state = StateNormal
		return z
	}
	if xInf {
		z.state = StateInf
		z.sign = sign
		return z
	}
	if xZero {
		z.mantissa.SetUint64(0)
		z.shift = 0
		z.sign = sign
		z.state = StateNormal
		return z
	}

	mant := new(BigNat).SetBigNat(&x.mantissa)
	shift := x.shift - y.shift
	one := NewBigNat(1)
	if y.mantissa.Cmp(one) != 0 {
		inc := mant.Divide(&y.mantissa, DivisionAccuracy)
		shift += int32(inc)
	}
	z.mantissa.SetBigNat(mant)
	z.shift = shift
	z.sign = sign
	z.state = StateNormal
	return z.rightAlign()
}
