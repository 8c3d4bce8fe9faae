package bignum

import "math/bits"

// deBruijnBitPosition maps ((v & -v) * 0x077CB531) >> 27 to the index of
// the lowest set bit of v, for 32-bit v. This is the classic De Bruijn
// sequence trick for trailing-zero count, used here (rather than
// math/bits.TrailingZeros32) for an explicit multiply-and-lookup
// construction.
var deBruijnBitPosition = [32]byte{
	0, 1, 28, 2, 29, 14, 24, 3, 30, 22, 20, 15, 25, 17, 4, 8,
	31, 27, 13, 23, 21, 19, 16, 7, 26, 12, 18, 6, 11, 5, 10, 9,
}

func trailingZeros32(v Word) int {
	if v == 0 {
		return 32
	}
	idx := ((v & -v) * 0x077CB531) >> 27
	return int(deBruijnBitPosition[idx])
}

// Add sets z to x + y and returns z.
func (z *BigNat) Add(x, y *BigNat) *BigNat {
	if x == y {
		// a + a == a << 1
		return z.Lsh(x, 1)
	}
	a, b := x.limbs, y.limbs
	if len(a) < len(b) {
		a, b = b, a
	}
	res := make([]Word, len(a)+1)
	var carry uint64
	for i := range a {
		s := uint64(a[i]) + carry
		if i < len(b) {
			s += uint64(b[i])
		}
		res[i] = Word(s)
		carry = s >> 32
	}
	res[len(a)] = Word(carry)
	z.limbs = res
	return z.reduce()
}

// Sub sets z to |x - y| (BigNat subtraction never goes negative) and
// returns z. It implements two's-complement-style borrow via bit
// inversion over a variable width, per the documented algorithm: invert
// the smaller operand's low k bits (k = bit-width of the larger
// operand), add one, add into the larger operand, then clear the
// one-past-the-top carry bit if it escaped.
func (z *BigNat) Sub(x, y *BigNat) *BigNat {
	if x.Cmp(y) == 0 {
		z.limbs = append(z.limbs[:0], 0)
		return z
	}
	if x.IsZero() {
		return z.SetBigNat(y)
	}
	if y.IsZero() {
		return z.SetBigNat(x)
	}
	larger, smaller := x, y
	if x.Cmp(y) < 0 {
		larger, smaller = y, x
	}
	k := uint(larger.Log2() + 1)
	inv := new(BigNat).SetBigNat(smaller)
	inv.Invert(k)
	one := NewBigNat(1)
	inv.Add(inv, one)
	res := new(BigNat).SetBigNat(larger)
	res.Add(res, inv)
	if uint(res.Log2()+1) > k {
		res.SetBit(k, false)
	}
	z.limbs = res.reduce().limbs
	return z
}

// Mul sets z to x * y and returns z. It walks y's bits from low to high,
// shifting a running copy of x left by the gap since the last set bit
// and adding it into the accumulator, so that shifts never need to be
// recomputed from scratch.
func (z *BigNat) Mul(x, y *BigNat) *BigNat {
	if x.IsZero() || y.IsZero() {
		z.limbs = append(z.limbs[:0], 0)
		return z
	}
	acc := new(BigNat).SetUint64(0)
	tmp := new(BigNat).SetBigNat(x)
	c := uint(0)
	n := y.Log2()
	for i := 0; i <= n; i++ {
		if y.Bit(uint(i)) {
			tmp.Lsh(tmp, c)
			acc.Add(acc, tmp)
			c = 1
		} else {
			c++
		}
	}
	z.limbs = acc.reduce().limbs
	return z
}

// Lsh sets z to x << n and returns z.
func (z *BigNat) Lsh(x *BigNat, n uint) *BigNat {
	if x.IsZero() || n == 0 {
		return z.SetBigNat(x)
	}
	limbShift := n / _W
	bitShift := n % _W
	src := x.limbs
	res := make([]Word, len(src)+int(limbShift)+1)
	if bitShift == 0 {
		copy(res[limbShift:], src)
	} else {
		var carry uint64
		for i, w := range src {
			cur := uint64(w)<<bitShift | carry
			res[int(limbShift)+i] = Word(cur)
			carry = cur >> 32
		}
		res[int(limbShift)+len(src)] = Word(carry)
	}
	z.limbs = res
	return z.reduce()
}

// Rsh sets z to x >> n and returns z.
func (z *BigNat) Rsh(x *BigNat, n uint) *BigNat {
	limbShift := n / _W
	bitShift := n % _W
	if int(limbShift) >= len(x.limbs) {
		z.limbs = append(z.limbs[:0], 0)
		return z
	}
	src := x.limbs[limbShift:]
	res := make([]Word, len(src))
	copy(res, src)
	if bitShift != 0 {
		for i := range res {
			lo := res[i] >> bitShift
			var hi Word
			if i+1 < len(res) {
				hi = res[i+1] << (_W - bitShift)
			}
			res[i] = lo | hi
		}
	}
	z.limbs = res
	return z.reduce()
}

// Bit returns the value of the i'th bit of x (0 = least significant).
func (x *BigNat) Bit(i uint) bool {
	limb := i / _W
	if int(limb) >= len(x.limbs) {
		return false
	}
	return x.limbs[limb]&(1<<(i%_W)) != 0
}

// SetBit sets the i'th bit of z to v and returns z, growing z's limb
// sequence if necessary.
func (z *BigNat) SetBit(i uint, v bool) *BigNat {
	limb := int(i / _W)
	if limb >= len(z.limbs) {
		if !v {
			return z
		}
		ext := make([]Word, limb+1-len(z.limbs))
		z.limbs = append(z.limbs, ext...)
	}
	mask := Word(1) << (i % _W)
	if v {
		z.limbs[limb] |= mask
	} else {
		z.limbs[limb] &^= mask
	}
	return z.reduce()
}

// Invert complements the low n bits of z in place and returns z,
// extending z's limb sequence with 0xFFFFFFFF limbs as needed to cover
// n bits. Used by Sub to implement two's-complement-style borrow.
func (z *BigNat) Invert(n uint) *BigNat {
	full := int(n / _W)
	rem := n % _W
	need := full
	if rem != 0 {
		need++
	}
	if len(z.limbs) < need {
		z.limbs = append(z.limbs, make([]Word, need-len(z.limbs))...)
	}
	for i := 0; i < full; i++ {
		z.limbs[i] = ^z.limbs[i]
	}
	if rem != 0 {
		mask := Word(1)<<rem - 1
		z.limbs[full] ^= mask
	}
	return z.reduce()
}

// Cmp compares x and y and returns -1, 0, or +1 according to whether
// x < y, x == y, or x > y.
func (x *BigNat) Cmp(y *BigNat) int {
	if len(x.limbs) != len(y.limbs) {
		if len(x.limbs) < len(y.limbs) {
			return -1
		}
		return 1
	}
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Log2 returns the position of the highest set bit of x (0 for x == 1),
// or -1 if x == 0.
func (x *BigNat) Log2() int {
	top := x.limbs[len(x.limbs)-1]
	return (len(x.limbs)-1)*_W + bits.Len32(top) - 1
}

// pow10Table holds the powers of ten from 10^0 through 10^18, used by
// Log10's correction step.
var pow10Table = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000,
	10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000,
}

// Log10 returns floor(log10(x)), or 0 for x == 0. It computes a fast
// estimate from Log2 and then corrects it by one if the estimate
// overshoots.
func (x *BigNat) Log10() int {
	if x.IsZero() {
		return 0
	}
	l2 := x.Log2()
	est := ((l2 + 1) * 1233) >> 12
	var pow *BigNat
	if est < len(pow10Table) {
		pow = NewBigNat(pow10Table[est])
	} else {
		pow = NewBigNat(1)
		ten := NewBigNat(10)
		for i := 0; i < est; i++ {
			pow.Mul(pow, ten)
		}
	}
	if x.Cmp(pow) < 0 {
		est--
	}
	return est
}

// LeftAlign left-shifts z so that its highest set bit lies in the top
// bit of its last limb, and returns the shift amount applied.
func (z *BigNat) LeftAlign() int {
	if z.IsZero() {
		return 0
	}
	p := z.Log2() - _W*(len(z.limbs)-1)
	shiftAmt := _W - 1 - p
	if shiftAmt == 0 {
		return 0
	}
	z.Lsh(z, uint(shiftAmt))
	return shiftAmt
}

// RightAlign shifts z right until it has no trailing zero bits (z == 0
// is left untouched) and returns the total number of bits shifted out.
func (z *BigNat) RightAlign() int {
	if z.IsZero() {
		return 0
	}
	shifted := 0
	n := 0
	for n < len(z.limbs)-1 && z.limbs[n] == 0 {
		n++
	}
	if n > 0 {
		z.limbs = z.limbs[n:]
		shifted += n * _W
	}
	if tz := trailingZeros32(z.limbs[0]); tz > 0 {
		z.Rsh(z, uint(tz))
		shifted += tz
	}
	return shifted
}

// Split partitions x into a high part (bits at or above position k) and
// a low part (bits below position k): x == hi<<k + lo. Required by
// decimal rendering, which partitions a BigFloat's mantissa at its
// shift to separate whole and fractional parts.
func (x *BigNat) Split(k uint) (hi, lo *BigNat) {
	hi = new(BigNat).Rsh(x, k)
	lo = new(BigNat).SetBigNat(x).maskLow(k)
	return hi, lo
}

// maskLow keeps only the low k bits of z and returns z.
func (z *BigNat) maskLow(k uint) *BigNat {
	full := int(k / _W)
	rem := k % _W
	if full >= len(z.limbs) {
		return z
	}
	if rem == 0 {
		z.limbs = z.limbs[:full]
	} else {
		mask := Word(1)<<rem - 1
		z.limbs[full] &= mask
		z.limbs = z.limbs[:full+1]
	}
	if len(z.limbs) == 0 {
		z.limbs = []Word{0}
	}
	return z.reduce()
}
