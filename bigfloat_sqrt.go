package bignum

// Sqrt sets z to the square root of x and reports whether a result
// exists. Unlike every other operation, a negative x has no result at
// all (not an ERROR-state result): Sqrt returns false and leaves z
// unmodified.
//
// An ERROR operand produces an ERROR-state result (Sqrt returns true
// with z.State() == StateError). sqrt(+Inf) is +Inf; -Inf has no
// result, same as any other negative value. sqrt(+-0) is +-0.
//
// Otherwise z is computed by direct Newton iteration,
//
//	x[k+1] = x[k] - (x[k]*x[k] - f) / (2*x[k])
//
// starting from x[0] = f, stopping when successive iterates differ by
// less than SqrtAccuracy or when the candidate's mantissa limb count
// exceeds SqrtAccuracyIncreaseRatio times f's mantissa limb count (a
// runaway guard against non-convergence).
func (z *BigFloat) Sqrt(x *BigFloat) bool {
	if x.state == StateError {
		z.state = StateError
		return true
	}
	if x.sign && !x.IsZero() {
		return false
	}
	if x.state == StateInf {
		z.state = StateInf
		z.sign = false
		return true
	}
	if x.IsZero() {
		z.mantissa.SetUint64(0)
		z.shift = 0
		z.sign = x.sign
		z.state = StateNormal
		return true
	}

	maxLimbs := SqrtAccuracyIncreaseRatio * x.mantissa.NumLimbs()
	two := NewFromSignedInt(2)
	thresh := new(BigFloat).SetFloat64(SqrtAccuracy)

	cur := new(BigFloat).SetBigFloat(x)
	for {
		sq := new(BigFloat).Mul(cur, cur)
		diff := new(BigFloat).Sub(sq, x)
		denom := new(BigFloat).Mul(cur, two)
		delta := new(BigFloat).Quo(diff, denom)
		next := new(BigFloat).Sub(cur, delta)

		if next.state == StateError {
			z.SetBigFloat(next)
			return true
		}

		diffMag := new(BigFloat).Sub(next, cur)
		diffMag.Abs(diffMag)
		if diffMag.Cmp(thresh) < 0 {
			z.SetBigFloat(next)
			return true
		}
		if next.mantissa.NumLimbs() > maxLimbs {
			z.SetBigFloat(next)
			return true
		}
		cur = next
	}
}
