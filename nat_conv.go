package bignum

import (
	"fmt"
	"strconv"
	"strings"
)

const decChunkLen = 9       // digits per chunk; 10^9 fits comfortably in a Word-sized accumulator
const decChunkPow = 1000000000

// SetDecimalDigits sets z to the value of digits, a string containing
// only the characters '0'..'9', and returns z. Behavior is undefined if
// digits contains anything else: validating the input is the caller's
// responsibility (BigFloat's string constructor validates before
// calling this). digits is processed in chunks of up to nine decimal
// digits at a time: the running total is repeatedly multiplied by 10^9
// and the next chunk added in, with the leftover (shorter) chunk
// handled first so every subsequent chunk is a full nine digits.
func (z *BigNat) SetDecimalDigits(digits string) *BigNat {
	z.SetUint64(0)
	n := len(digits)
	if n == 0 {
		return z
	}
	first := n % decChunkLen
	i := 0
	if first > 0 {
		v, _ := strconv.ParseUint(digits[:first], 10, 64)
		z.SetUint64(v)
		i = first
	} else {
		v, _ := strconv.ParseUint(digits[:decChunkLen], 10, 64)
		z.SetUint64(v)
		i = decChunkLen
	}
	chunkBase := NewBigNat(decChunkPow)
	for i < n {
		v, _ := strconv.ParseUint(digits[i:i+decChunkLen], 10, 64)
		z.Mul(z, chunkBase)
		z.Add(z, NewBigNat(v))
		i += decChunkLen
	}
	return z
}

// divModSmall divides x by the single-limb-sized divisor d and returns
// the quotient and remainder, using schoolbook long division from the
// most significant limb down.
func divModSmall(x *BigNat, d Word) (q *BigNat, r Word) {
	n := len(x.limbs)
	res := make([]Word, n)
	var rem uint64
	for i := n - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(x.limbs[i])
		res[i] = Word(cur / uint64(d))
		rem = cur % uint64(d)
	}
	q = &BigNat{limbs: res}
	q.reduce()
	return q, Word(rem)
}

// DecimalString renders x in base 10 with no leading zeros (except for
// the value 0 itself, rendered as "0"). It repeatedly divides by 10^9,
// extracting nine decimal digits per division, which is the same
// technique used by decimal rendering to walk a BigNat's whole-number
// part digit group by digit group.
func (x *BigNat) DecimalString() string {
	if x.IsZero() {
		return "0"
	}
	var chunks []Word
	cur := new(BigNat).SetBigNat(x)
	for !cur.IsZero() {
		q, r := divModSmall(cur, decChunkPow)
		chunks = append(chunks, r)
		cur = q
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", chunks[i])
	}
	return sb.String()
}
