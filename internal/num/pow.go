package num

import "math"

// BigDig extracts n as a native unsigned integer. It returns Negative
// if n is negative, NonInteger if n has a nonzero fractional part, and
// Overflow if the value does not fit in a uint64 — spec §4.12's three
// bigdig error paths.
func BigDig(n *Number) (uint64, Status) {
	if n.neg {
		return 0, Negative
	}
	for i := 0; i < n.rdx && i < len(n.digits); i++ {
		if n.digits[i] != 0 {
			return 0, NonInteger
		}
	}
	var v uint64
	for i := len(n.digits) - 1; i >= n.rdx; i-- {
		d := uint64(n.digits[i])
		if v > (math.MaxUint64-d)/B {
			return 0, Overflow
		}
		v = v*B + d
	}
	return v, Ok
}

// hasFraction reports whether n has any nonzero fractional cell.
func hasFraction(n *Number) bool {
	for i := 0; i < n.rdx && i < len(n.digits); i++ {
		if n.digits[i] != 0 {
			return true
		}
	}
	return false
}

// Pow computes c = a^b at the given scale. b must be an integer
// (possibly negative); c may alias a or b.
func Pow(a, b, c *Number, scale int, sig Signal) Status {
	if hasFraction(b) {
		return NonInteger
	}
	if b.Zero() {
		res := One()
		if scale > 0 {
			Extend(res, scale)
		}
		c.CopyFrom(res)
		return Ok
	}
	if a.Zero() {
		c.SetZero(scale)
		return Ok
	}

	bNeg := b.neg
	bAbs := b.Clone()
	bAbs.SetNeg(false)
	pow, status := BigDig(bAbs)
	if status != Ok {
		return status
	}

	maxScale := scale
	if a.scale > maxScale {
		maxScale = a.scale
	}
	var capProd int
	switch {
	case a.scale == 0:
		capProd = 0
	case pow > uint64(maxScale/a.scale)+2:
		capProd = maxScale + 1
	default:
		capProd = a.scale * int(pow)
	}
	finalScale := capProd
	if finalScale > maxScale {
		finalScale = maxScale
	}

	// Square-and-multiply, consuming the exponent's bits from the low
	// end: squaring doubles powrdx, multiplying sums it in, per spec
	// §4.8's bit-loop (processed least-significant-bit first here
	// rather than the source's most-significant-first walk — the two
	// orders visit the same set of squarings/multiplies and so agree
	// bit for bit on both the value and its exact scale).
	result := One()
	base := a.Clone()
	resRdx, baseRdx := 0, a.scale
	p := pow
	for p > 0 {
		if raised(sig) {
			return Interrupted
		}
		if p&1 == 1 {
			tmp := New()
			if status := Mul(result, base, tmp, resRdx+baseRdx, sig); status != Ok {
				return status
			}
			result, resRdx = tmp, resRdx+baseRdx
		}
		p >>= 1
		if p > 0 {
			tmp := New()
			if status := Mul(base, base, tmp, baseRdx*2, sig); status != Ok {
				return status
			}
			base, baseRdx = tmp, baseRdx*2
		}
	}

	if bNeg {
		recip := New()
		if status := Div(One(), result, recip, scale, sig); status != Ok {
			return status
		}
		c.CopyFrom(recip)
		retireAdd(c, scale)
		return Ok
	}

	c.CopyFrom(result)
	retireAdd(c, finalScale)
	return Ok
}

// PowReq is the advisory output capacity (in cells) for Pow, per
// spec §6 — generous, since the true bound is data-dependent.
func PowReq(a, b *Number) int {
	return len(a.digits) + len(b.digits) + 1
}

var two = &Number{digits: []int64{2}}

// ModExp computes d = a^b mod c. a and b must be non-negative
// integers and c must be nonzero, per spec §4.8.
func ModExp(a, b, c, d *Number, sig Signal) Status {
	if c.Zero() {
		return DivideByZero
	}
	if b.neg {
		return Negative
	}
	if hasFraction(a) || hasFraction(b) {
		return NonInteger
	}

	base := New()
	if status := Rem(a, c, base, 0, sig); status != Ok {
		return status
	}
	exp := b.Clone()
	result := One()

	for !exp.Zero() {
		if raised(sig) {
			return Interrupted
		}
		q, r := New(), New()
		if status := DivMod(exp, two, q, r, 0, sig); status != Ok {
			return status
		}
		if !r.Zero() {
			tmp := New()
			if status := Mul(result, base, tmp, 0, sig); status != Ok {
				return status
			}
			if status := Rem(tmp, c, result, 0, sig); status != Ok {
				return status
			}
		}
		exp.CopyFrom(q)
		if !exp.Zero() {
			tmp := New()
			if status := Mul(base, base, tmp, 0, sig); status != Ok {
				return status
			}
			if status := Rem(tmp, c, base, 0, sig); status != Ok {
				return status
			}
		}
	}
	d.CopyFrom(result)
	return Ok
}
