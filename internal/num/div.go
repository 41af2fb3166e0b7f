package num

// padTo returns a cells, grown with high zero cells to exactly n cells.
// Callers only ever invoke it where len(a) <= n is already guaranteed
// by construction (the normalization step below).
func padTo(a []int64, n int) []int64 {
	if len(a) >= n {
		return a[:n]
	}
	out := make([]int64, n)
	copy(out, a)
	return out
}

// divMagnitude divides the non-negative cell array a by the non-zero
// non-negative cell array b, returning quotient and remainder cell
// arrays. It is the per-place long division of spec §4.7 — leading-
// digit quotient estimation followed by a bounded correction — built
// on the classical normalize-then-estimate scheme (Knuth's algorithm
// D) rather than the source's power-of-ten refinement ladder, since
// both converge on the same bounded number of trial corrections per
// quotient cell.
func divMagnitude(a, b []int64, sig Signal) (q, r []int64, status Status) {
	a = cellTrim(append([]int64(nil), a...))
	b = cellTrim(b)
	if len(b) == 0 {
		return nil, nil, DivideByZero
	}
	if cellCmp(a, b) < 0 {
		return nil, a, Ok
	}
	if len(b) == 1 {
		qq, rem, status := divArraySingle(a, b[0], sig)
		if status != Ok {
			return nil, nil, status
		}
		if rem != 0 {
			r = []int64{rem}
		}
		return qq, r, Ok
	}

	n := len(b)
	m := len(a) - n

	// Normalize so the divisor's leading cell is >= B/2: this bounds
	// the trial-quotient correction loop to at most two decrements.
	d := B / (b[n-1] + 1)
	bn, status := mulSingle(b, d, sig)
	if status != Ok {
		return nil, nil, status
	}
	bn = padTo(bn, n)

	an, status := mulSingle(a, d, sig)
	if status != Ok {
		return nil, nil, status
	}
	an = padTo(an, m+n+1)

	q = make([]int64, m+1)
	for j := m; j >= 0; j-- {
		if raised(sig) {
			return nil, nil, Interrupted
		}
		top2 := an[j+n]*B + an[j+n-1]
		qhat := top2 / bn[n-1]
		rhat := top2 % bn[n-1]
		for qhat >= B || qhat*bn[n-2] > rhat*B+an[j+n-2] {
			qhat--
			rhat += bn[n-1]
			if rhat >= B {
				break
			}
		}

		borrow := int64(0)
		carryMul := int64(0)
		for i := 0; i < n; i++ {
			p := qhat*bn[i] + carryMul
			carryMul = p / B
			p -= carryMul * B
			t := an[j+i] - p - borrow
			if t < 0 {
				t += B
				borrow = 1
			} else {
				borrow = 0
			}
			an[j+i] = t
		}
		t := an[j+n] - carryMul - borrow
		if t < 0 {
			t += B
			an[j+n] = t
			qhat--
			carry := int64(0)
			for i := 0; i < n; i++ {
				s := an[j+i] + bn[i] + carry
				if s >= B {
					s -= B
					carry = 1
				} else {
					carry = 0
				}
				an[j+i] = s
			}
			an[j+n] = (an[j+n] + carry) % B
		} else {
			an[j+n] = t
		}
		q[j] = qhat
	}

	remScaled := an[:n]
	rem, _, status := divArraySingle(remScaled, d, sig)
	if status != Ok {
		return nil, nil, status
	}
	return cellTrim(q), cellTrim(rem), Ok
}

// Div computes c = a / b to the given scale. c may alias a or b.
func Div(a, b, c *Number, scale int, sig Signal) Status {
	if b.Zero() {
		return DivideByZero
	}
	aSrc, bSrc := a, b
	if c == a {
		aSrc = a.Clone()
	}
	if c == b {
		bSrc = b.Clone()
	}
	if aSrc.Zero() {
		c.SetZero(scale)
		return Ok
	}

	qRdx := ceilDiv(scale, D)
	shiftCells := qRdx - aSrc.rdx + bSrc.rdx
	if shiftCells < 0 {
		shiftCells = 0
	}
	numerator := cellShiftCells(aSrc.digits, shiftCells)
	rawRdx := aSrc.rdx + shiftCells - bSrc.rdx

	qd, _, status := divMagnitude(numerator, bSrc.digits, sig)
	if status != Ok {
		return status
	}

	rdx := rawRdx
	if rdx < 0 {
		rdx = 0
	}
	res := &Number{digits: qd, rdx: rdx, scale: rdx * D}
	res.clean()
	c.CopyFrom(res)
	retireMul(c, scale, aSrc.neg, bSrc.neg)
	return Ok
}

// DivReq is the advisory output capacity (in cells) for Div, per
// spec §6.
func DivReq(a, b *Number, scale int) int {
	return ceilDiv(scale, D) + ceilDiv(a.IntDigits(), D) + 2
}

// Rem computes c = a mod b (sign follows a) to the given scale,
// per spec §4.7: divide to enough extra scale to be exact, multiply
// back, and subtract from a.
func Rem(a, b, c *Number, scale int, sig Signal) Status {
	if b.Zero() {
		return DivideByZero
	}
	ts := scale + b.scale
	if a.scale > ts {
		ts = a.scale
	}
	q := New()
	if status := Div(a, b, q, ts, sig); status != Ok {
		return status
	}
	prod := New()
	if status := Mul(q, b, prod, ts, sig); status != Ok {
		return status
	}
	return Sub(a, prod, c, scale, sig)
}

// DivMod computes both quotient and remainder in one call, per
// spec §4.7's divmod. a and b are snapshotted up front since q or r
// may alias either of them.
func DivMod(a, b, q, r *Number, scale int, sig Signal) Status {
	aSrc, bSrc := a.Clone(), b.Clone()
	if status := Div(aSrc, bSrc, q, scale, sig); status != Ok {
		return status
	}
	return Rem(aSrc, bSrc, r, scale, sig)
}
