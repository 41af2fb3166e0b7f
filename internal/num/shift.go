package num

import "math"

// maxCells mirrors spec §4.12/§9's overflow bound, fixed at
// SIZE_MAX / sizeof(cell) with a cell stored as an int64 (8 bytes).
const maxCells = math.MaxInt64 / 8

func checkShiftOverflow(curCells, places int) Status {
	if places < 0 {
		places = -places
	}
	extra := places/D + 2
	if curCells > maxCells-extra {
		return Overflow
	}
	return Ok
}

// scaleByPow10 returns a copy of digits multiplied by 10^exp (exp may
// be negative, in which case the division is required to be exact —
// callers only ever pass an exp whose negative magnitude corresponds
// to padding cells/digits already known to be zero by invariant 6).
func scaleByPow10(digits []int64, exp int, sig Signal) ([]int64, Status) {
	if exp == 0 {
		return append([]int64(nil), digits...), Ok
	}
	if exp > 0 {
		cellShift, subShift := exp/D, exp%D
		a := digits
		var status Status
		if subShift != 0 {
			a, status = mulSingle(a, pow10[subShift], sig)
			if status != Ok {
				return nil, status
			}
		} else {
			a = append([]int64(nil), a...)
		}
		if cellShift > 0 {
			out := make([]int64, cellShift+len(a))
			copy(out[cellShift:], a)
			a = out
		}
		return a, Ok
	}
	negExp := -exp
	cellShift, subShift := negExp/D, negExp%D
	a := digits
	if cellShift > 0 {
		if cellShift >= len(a) {
			a = nil
		} else {
			a = a[cellShift:]
		}
	}
	a = append([]int64(nil), a...)
	if subShift != 0 {
		q, _, status := divArraySingle(a, pow10[subShift], sig)
		if status != Ok {
			return nil, status
		}
		a = q
	}
	return a, Ok
}

// shiftScale implements both ShiftLeft (places > 0) and ShiftRight
// (places < 0, via negation at the call site) by relocating the
// decimal point `places` base-10 digits to the right: it is the only
// place this package multiplies or divides by a power of ten, and the
// division branch (scaleByPow10 with exp < 0) is always exact because
// it only ever strips digits spec invariant 6 guarantees are zero.
func shiftScale(n *Number, places int, sig Signal) Status {
	if places == 0 {
		return Ok
	}
	newScale := n.scale - places
	if newScale < 0 {
		newScale = 0
	}
	newRdx := ceilDiv(newScale, D)

	if n.Zero() {
		n.scale = newScale
		n.rdx = newRdx
		return Ok
	}
	if status := checkShiftOverflow(len(n.digits), places); status != Ok {
		return status
	}
	exp := places + D*(newRdx-n.rdx)
	shifted, status := scaleByPow10(n.digits, exp, sig)
	if status != Ok {
		return status
	}
	n.digits = shifted
	n.scale = newScale
	n.rdx = newRdx
	n.clean()
	return Ok
}

// ShiftLeft multiplies n by 10^places in place (places may be
// negative, acting as ShiftRight).
func ShiftLeft(n *Number, places int, sig Signal) Status {
	return shiftScale(n, places, sig)
}

// ShiftRight divides n by 10^places in place, extending scale to make
// room for the new fractional digits (places may be negative, acting
// as ShiftLeft).
func ShiftRight(n *Number, places int, sig Signal) Status {
	return shiftScale(n, -places, sig)
}

// Extend grows n's scale by places, a pure bookkeeping/zero-fill
// change that never alters n's value: it is used to align add/sub
// operands to a common scale and to bring results up to a requested
// scale.
func Extend(n *Number, places int) {
	if places <= 0 {
		return
	}
	newScale := n.scale + places
	newRdx := ceilDiv(newScale, D)
	if extra := newRdx - n.rdx; extra > 0 {
		out := make([]int64, extra+len(n.digits))
		copy(out[extra:], n.digits)
		n.digits = out
		n.rdx = newRdx
	}
	n.scale = newScale
}

// Truncate shrinks n's scale by places, dropping fractional precision:
// whole cells that fall entirely outside the new scale are discarded,
// and the low digits of the new cell 0 are masked to zero per
// invariant 6 — this is a lossy chop toward zero, not a rounding.
func Truncate(n *Number, places int) {
	if places <= 0 {
		return
	}
	newScale := n.scale - places
	if newScale < 0 {
		newScale = 0
	}
	newRdx := ceilDiv(newScale, D)
	if newRdx < n.rdx {
		drop := n.rdx - newRdx
		if drop >= len(n.digits) {
			n.digits = n.digits[:0]
		} else {
			n.digits = append([]int64(nil), n.digits[drop:]...)
		}
		n.rdx = newRdx
	}
	n.scale = newScale
	if rem := newScale % D; rem != 0 && len(n.digits) > 0 {
		mod := pow10[D-rem]
		n.digits[0] -= n.digits[0] % mod
	}
	n.clean()
}

// retireMul brings a multiply or divide result to the requested
// scale and sets its sign, per spec §4.3's retire_mul: the common tail
// of Mul and Div (Add and Sub use retireAdd instead).
func retireMul(n *Number, scale int, neg1, neg2 bool) {
	if scale > n.scale {
		Extend(n, scale-n.scale)
	} else if scale < n.scale {
		Truncate(n, n.scale-scale)
	}
	n.clean()
	if n.Zero() {
		n.neg = false
	} else {
		n.neg = neg1 != neg2
	}
}
