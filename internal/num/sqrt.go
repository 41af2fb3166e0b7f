package num

// Sqrt computes b = sqrt(a) to the given scale via Newton iteration
// x_{k+1} = (x_k + a/x_k) / 2, per spec §4.9.
func Sqrt(a, b *Number, scale int, sig Signal) Status {
	if a.neg {
		return Negative
	}
	if a.Zero() {
		b.SetZero(scale)
		return Ok
	}
	cmpOne, status := Cmp(a, One(), sig)
	if status != Ok {
		return status
	}
	if cmpOne == 0 {
		res := One()
		if scale > 0 {
			Extend(res, scale)
		}
		b.CopyFrom(res)
		return Ok
	}

	// Initial guess: a power-of-ten-ish number with about half of a's
	// integer digits, leading digit 2 or 6 depending on parity — gets
	// the relative error comfortably under 1 before the first square.
	intDigits := a.IntDigits()
	halfDigits := ceilDiv(intDigits, 2)
	if halfDigits < 1 {
		halfDigits = 1
	}
	topDigit := int64(2)
	if intDigits%2 == 0 {
		topDigit = 6
	}
	x := &Number{digits: []int64{topDigit}}
	if status := ShiftLeft(x, halfDigits-1, sig); status != Ok {
		return status
	}

	curResscale := (scale + D) * 2
	prevCmp := 2 // sentinel: no real Cmp result is ever 2
	stagnant := 0

	for iter := 0; iter < 256; iter++ {
		if raised(sig) {
			return Interrupted
		}
		q := New()
		if status := Div(a, x, q, curResscale, sig); status != Ok {
			return status
		}
		sum := New()
		if status := Add(x, q, sum, curResscale, sig); status != Ok {
			return status
		}
		x1 := New()
		if status := Div(sum, two, x1, curResscale, sig); status != Ok {
			return status
		}
		cmp, status := Cmp(x1, x, sig)
		if status != Ok {
			return status
		}
		x = x1
		if cmp == 0 {
			break
		}
		// Two approximations keep landing on the same side of the true
		// root without ever comparing equal: a fixed-point oscillation
		// near the last representable digit. Widen the working scale
		// to dislodge it, per spec §4.9's times > 2 rule.
		if cmp == prevCmp {
			stagnant++
			if stagnant > 2 {
				curResscale++
				stagnant = 0
			}
		} else {
			stagnant = 0
		}
		prevCmp = cmp
	}

	b.CopyFrom(x)
	retireAdd(b, scale)
	return Ok
}
