// Package accuracy provides a Context wrapper for bignum.BigFloat that
// bundles the library's tunable accuracy knobs together and tracks the
// first error produced across a chain of operations.
//
// A Context catches Error-state results: if an operation sets its
// receiver's State() to bignum.StateError, the Context latches that
// fact internally. Further operations through the same Context become
// no-ops (they simply return the receiver z unmodified) until
// (*Context).Err is called to check for and clear the error.
//
// Unlike the math/big-style context this is adapted from, which
// catches NaN-producing panics with recover, BigFloat never panics for
// arithmetic outcomes — so the Context only ever needs to inspect
// State() after a call, never recover from one.
package accuracy

import bignum "github.com/RorySmith2475/AP-Float"

// A Context bundles the four tunable accuracy knobs and a sticky
// error flag.
type Context struct {
	constructorMaxIter uint
	divisionAccuracy   uint
	sqrtAccuracy       float64
	sqrtRatio          int
	err                bool
}

// New returns a Context initialized to the package defaults
// (bignum.ConstructorMaxIterations, bignum.DivisionAccuracy,
// bignum.SqrtAccuracy, bignum.SqrtAccuracyIncreaseRatio).
func New() *Context {
	return &Context{
		constructorMaxIter: bignum.ConstructorMaxIterations,
		divisionAccuracy:   bignum.DivisionAccuracy,
		sqrtAccuracy:       bignum.SqrtAccuracy,
		sqrtRatio:          bignum.SqrtAccuracyIncreaseRatio,
	}
}

// SetConstructorMaxIterations sets c's string-construction iteration
// bound and returns c.
func (c *Context) SetConstructorMaxIterations(n uint) *Context {
	c.constructorMaxIter = n
	return c
}

// SetDivisionAccuracy sets c's division accuracy, in bits, and returns c.
func (c *Context) SetDivisionAccuracy(n uint) *Context {
	c.divisionAccuracy = n
	return c
}

// SetSqrtAccuracy sets c's square-root convergence threshold and
// returns c.
func (c *Context) SetSqrtAccuracy(a float64) *Context {
	c.sqrtAccuracy = a
	return c
}

// SetSqrtAccuracyIncreaseRatio sets c's square-root runaway guard ratio
// and returns c.
func (c *Context) SetSqrtAccuracyIncreaseRatio(r int) *Context {
	c.sqrtRatio = r
	return c
}

// Err returns whether an Error-state result has been produced since the
// last call to Err, and clears the flag.
func (c *Context) Err() (errored bool) {
	errored = c.err
	c.err = false
	return
}

// apply swaps the package-level tunables to c's values for the
// duration of one call and returns a closure that restores them. The
// library is documented as single-threaded and synchronous (it offers
// no internal locking and no concurrent access to shared state), so
// this save/swap/restore dance around a package-global is safe within
// that model; it is not safe to use two Contexts from different
// goroutines concurrently, which is consistent with the rest of the
// library.
func (c *Context) apply() func() {
	oldCI := bignum.ConstructorMaxIterations
	oldDA := bignum.DivisionAccuracy
	oldSA := bignum.SqrtAccuracy
	oldSR := bignum.SqrtAccuracyIncreaseRatio
	bignum.ConstructorMaxIterations = c.constructorMaxIter
	bignum.DivisionAccuracy = c.divisionAccuracy
	bignum.SqrtAccuracy = c.sqrtAccuracy
	bignum.SqrtAccuracyIncreaseRatio = c.sqrtRatio
	return func() {
		bignum.ConstructorMaxIterations = oldCI
		bignum.DivisionAccuracy = oldDA
		bignum.SqrtAccuracy = oldSA
		bignum.SqrtAccuracyIncreaseRatio = oldSR
	}
}

// NewString returns a new *bignum.BigFloat set to the value of s, using
// c's ConstructorMaxIterations, or nil if c has a pending error.
func (c *Context) NewString(s string) *bignum.BigFloat {
	if c.err {
		return nil
	}
	restore := c.apply()
	defer restore()
	z := new(bignum.BigFloat).SetString(s)
	if z.State() == bignum.StateError {
		c.err = true
	}
	return z
}

// Add sets z to x + y using c's tunables and returns z. If c has a
// pending error, Add is a no-op that returns z unmodified.
func (c *Context) Add(z, x, y *bignum.BigFloat) *bignum.BigFloat {
	if c.err {
		return z
	}
	restore := c.apply()
	defer restore()
	z.Add(x, y)
	if z.State() == bignum.StateError {
		c.err = true
	}
	return z
}

// Sub sets z to x - y using c's tunables and returns z.
func (c *Context) Sub(z, x, y *bignum.BigFloat) *bignum.BigFloat {
	if c.err {
		return z
	}
	restore := c.apply()
	defer restore()
	z.Sub(x, y)
	if z.State() == bignum.StateError {
		c.err = true
	}
	return z
}

// Mul sets z to x * y using c's tunables and returns z.
func (c *Context) Mul(z, x, y *bignum.BigFloat) *bignum.BigFloat {
	if c.err {
		return z
	}
	restore := c.apply()
	defer restore()
	z.Mul(x, y)
	if z.State() == bignum.StateError {
		c.err = true
	}
	return z
}

// Quo sets z to x / y using c's DivisionAccuracy and returns z.
func (c *Context) Quo(z, x, y *bignum.BigFloat) *bignum.BigFloat {
	if c.err {
		return z
	}
	restore := c.apply()
	defer restore()
	z.Quo(x, y)
	if z.State() == bignum.StateError {
		c.err = true
	}
	return z
}

// Sqrt sets z to the square root of x using c's SqrtAccuracy and
// SqrtAccuracyIncreaseRatio, and reports whether a result exists (see
// bignum.BigFloat.Sqrt: a negative x has no result at all).
func (c *Context) Sqrt(z, x *bignum.BigFloat) bool {
	if c.err {
		return true
	}
	restore := c.apply()
	defer restore()
	ok := z.Sqrt(x)
	if ok && z.State() == bignum.StateError {
		c.err = true
	}
	return ok
}
