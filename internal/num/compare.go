package num

// CmpZero returns 0 if n is zero, -1 if negative, +1 if positive.
func CmpZero(n *Number) int {
	if n.Zero() {
		return 0
	}
	if n.neg {
		return -1
	}
	return 1
}

// Cmp returns a value whose sign reflects a - b: negative if a < b,
// zero if a == b, positive if a > b. It never allocates or mutates
// either operand.
func Cmp(a, b *Number, sig Signal) (int, Status) {
	if a == b {
		return 0, Ok
	}
	az, bz := a.Zero(), b.Zero()
	switch {
	case az && bz:
		return 0, Ok
	case az:
		if b.neg {
			return 1, Ok
		}
		return -1, Ok
	case bz:
		if a.neg {
			return -1, Ok
		}
		return 1, Ok
	}
	if a.neg != b.neg {
		if a.neg {
			return -1, Ok
		}
		return 1, Ok
	}

	c, status := cmpMagnitude(a, b, sig)
	if status != Ok {
		return 0, status
	}
	if a.neg {
		c = -c
	}
	return c, Ok
}

// cmpMagnitude compares |a| and |b|, ignoring sign.
func cmpMagnitude(a, b *Number, sig Signal) (int, Status) {
	aInt, bInt := len(a.digits)-a.rdx, len(b.digits)-b.rdx
	if aInt != bInt {
		if aInt < bInt {
			return -1, Ok
		}
		return 1, Ok
	}

	// Integer parts have equal cell counts; compare them top-down,
	// then fall into the fractional parts, aligned so the radix
	// points line up regardless of differing rdx.
	for i := aInt - 1; i >= 0; i-- {
		if raised(sig) {
			return 0, Interrupted
		}
		av, bv := a.digits[a.rdx+i], b.digits[b.rdx+i]
		if av != bv {
			if av < bv {
				return -1, Ok
			}
			return 1, Ok
		}
	}

	overlap := a.rdx
	if b.rdx < overlap {
		overlap = b.rdx
	}
	for i := 0; i < overlap; i++ {
		if raised(sig) {
			return 0, Interrupted
		}
		av := a.digits[a.rdx-1-i]
		bv := b.digits[b.rdx-1-i]
		if av != bv {
			if av < bv {
				return -1, Ok
			}
			return 1, Ok
		}
	}

	// Equal over the overlapping fractional window; whichever operand
	// has extra low-order cells wins if any of them is nonzero.
	if a.rdx > overlap {
		for i := 0; i < a.rdx-overlap; i++ {
			if raised(sig) {
				return 0, Interrupted
			}
			if a.digits[i] != 0 {
				return 1, Ok
			}
		}
	}
	if b.rdx > overlap {
		for i := 0; i < b.rdx-overlap; i++ {
			if raised(sig) {
				return 0, Interrupted
			}
			if b.digits[i] != 0 {
				return -1, Ok
			}
		}
	}
	return 0, Ok
}
