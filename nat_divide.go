package bignum

// Divide sets z to an approximation of z * 2^accuracy / den — i.e. z is
// replaced by an accuracy-bit binary fraction approximating z/den — and
// returns accuracy. The first pass computes floor(z * 2^accuracy / den);
// the remaining passes can only set bit 0, so the result is that floor
// or one more. It implements fractional division by a variable bit-stride
// binary long division: at each output position it looks ahead to see
// how many bits of the quotient can be produced before the next
// subtraction, rather than testing one bit at a time.
//
// den is read-only; z is both the dividend on entry and the quotient
// (shifted left by accuracy bits) on return.
func (z *BigNat) Divide(den *BigNat, accuracy uint) uint {
	z.Lsh(z, accuracy)
	result := NewBigNat(0)
	d := new(BigNat).SetBigNat(den)
	for outer := uint(0); !z.IsZero() && outer <= accuracy; outer++ {
		for z.Cmp(d) >= 0 {
			d.Lsh(d, 1) // double den
			i := 0
			if z.Cmp(d) >= 0 {
				i = z.Log2() - d.Log2()
				d.Lsh(d, uint(i))
				if z.Cmp(d) >= 0 {
					d.Lsh(d, 1)
					i++
				}
			}
			d.Rsh(d, 1) // den <= self once more
			result.SetBit(uint(i), true)
			z.Sub(z, d)
			d.Rsh(d, uint(i)) // restore den to its value at inner-loop entry
		}
		z.Lsh(z, 1)
	}
	z.limbs = result.limbs
	return accuracy
}
