package num

// karatsubaLen is the operand length (in cells) below which schoolbook
// multiplication outperforms the Karatsuba recursion's overhead —
// spec §4.6's tunable crossover.
const karatsubaLen = 48

// ShiftAddOp picks whether a Karatsuba sub-product is folded into the
// accumulating result by addition or subtraction, per spec §3's
// auxiliary type and §4.6's shift-add-sub combination step.
type ShiftAddOp int

const (
	OpAdd ShiftAddOp = iota
	OpSub
)

// --- raw cell-array helpers (plain non-negative big integers, least-
// significant cell first, no sign/scale attached) ---

func cellTrim(a []int64) []int64 {
	for len(a) > 0 && a[len(a)-1] == 0 {
		a = a[:len(a)-1]
	}
	return a
}

func isCellOne(a []int64) bool {
	a = cellTrim(a)
	return len(a) == 1 && a[0] == 1
}

func cellCmp(a, b []int64) int {
	a, b = cellTrim(a), cellTrim(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func cellAdd(a, b []int64, sig Signal) ([]int64, Status) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	ad := make([]int64, n+1)
	copy(ad, a)
	bd := make([]int64, n+1)
	copy(bd, b)
	if status := addArrays(ad, bd, n, sig); status != Ok {
		return nil, status
	}
	return cellTrim(ad), Ok
}

// cellSub returns a - b, assuming |a| >= |b|.
func cellSub(a, b []int64, sig Signal) ([]int64, Status) {
	ad := append([]int64(nil), a...)
	bd := make([]int64, len(a))
	copy(bd, b)
	if status := subArrays(ad, bd, len(a), sig); status != Ok {
		return nil, status
	}
	return cellTrim(ad), Ok
}

// cellSignedSub returns a - b as a magnitude plus its sign.
func cellSignedSub(a, b []int64, sig Signal) (mag []int64, neg bool, status Status) {
	switch cellCmp(a, b) {
	case 0:
		return nil, false, Ok
	case 1:
		mag, status = cellSub(a, b, sig)
		return mag, false, status
	default:
		mag, status = cellSub(b, a, sig)
		return mag, true, status
	}
}

func cellShiftCells(a []int64, cells int) []int64 {
	a = cellTrim(a)
	if len(a) == 0 || cells == 0 {
		return append([]int64(nil), a...)
	}
	out := make([]int64, cells+len(a))
	copy(out[cells:], a)
	return out
}

// shiftAddSub folds part, shifted up by shiftCells cells, into base
// via op — the Go analogue of spec §4.6's shift_add_sub, used to place
// each Karatsuba sub-product at its B^m offset.
func shiftAddSub(base, part []int64, shiftCells int, op ShiftAddOp, sig Signal) ([]int64, Status) {
	shifted := cellShiftCells(part, shiftCells)
	if op == OpAdd {
		return cellAdd(base, shifted, sig)
	}
	return cellSub(base, shifted, sig)
}

func splitAt(a []int64, m int) (low, high []int64) {
	a = cellTrim(a)
	if m >= len(a) {
		return append([]int64(nil), a...), nil
	}
	return append([]int64(nil), a[:m]...), append([]int64(nil), a[m:]...)
}

// schoolbook multiplies two raw cell arrays the classic O(n*m) way:
// each output cell accumulates the sum of the partial products that
// land on it, with the carry from one column rolled into the next —
// spec §4.6's m_simp. Every product av*bv is < B^2 (< 1e18) and the
// running carry stays small, so a plain int64 column accumulator
// never overflows regardless of operand length.
func schoolbook(a, b []int64, sig Signal) ([]int64, Status) {
	a, b = cellTrim(a), cellTrim(b)
	if len(a) == 0 || len(b) == 0 {
		return nil, Ok
	}
	out := make([]int64, len(a)+len(b))
	for i, av := range a {
		if raised(sig) {
			return nil, Interrupted
		}
		if av == 0 {
			continue
		}
		carry := int64(0)
		for j, bv := range b {
			v := av*bv + out[i+j] + carry
			out[i+j] = v % B
			carry = v / B
		}
		for k := i + len(b); carry != 0; k++ {
			v := out[k] + carry
			out[k] = v % B
			carry = v / B
		}
	}
	return cellTrim(out), Ok
}

// mulCells multiplies two raw cell arrays, dispatching to Karatsuba
// recursion above karatsubaLen and schoolbook below it — spec §4.6's
// k() driver.
func mulCells(a, b []int64, sig Signal) ([]int64, Status) {
	a, b = cellTrim(a), cellTrim(b)
	if len(a) == 0 || len(b) == 0 {
		return nil, Ok
	}
	if isCellOne(a) {
		return append([]int64(nil), b...), Ok
	}
	if isCellOne(b) {
		return append([]int64(nil), a...), Ok
	}
	if raised(sig) {
		return nil, Interrupted
	}
	if len(a) < karatsubaLen || len(b) < karatsubaLen {
		return schoolbook(a, b, sig)
	}

	m := len(a)
	if len(b) > m {
		m = len(b)
	}
	m = (m + 1) / 2

	aLow, aHigh := splitAt(a, m)
	bLow, bHigh := splitAt(b, m)

	z0, status := mulCells(aLow, bLow, sig)
	if status != Ok {
		return nil, status
	}
	z2, status := mulCells(aHigh, bHigh, sig)
	if status != Ok {
		return nil, status
	}
	m1, m1Neg, status := cellSignedSub(aHigh, aLow, sig)
	if status != Ok {
		return nil, status
	}
	m2, m2Neg, status := cellSignedSub(bLow, bHigh, sig)
	if status != Ok {
		return nil, status
	}
	z1, status := mulCells(m1, m2, sig)
	if status != Ok {
		return nil, status
	}
	z1Op := OpAdd
	if m1Neg != m2Neg {
		z1Op = OpSub
	}

	mid, status := cellAdd(z2, z0, sig)
	if status != Ok {
		return nil, status
	}
	mid, status = shiftAddSub(mid, z1, 0, z1Op, sig)
	if status != Ok {
		return nil, status
	}

	result, status := shiftAddSub(z0, z2, 2*m, OpAdd, sig)
	if status != Ok {
		return nil, status
	}
	result, status = shiftAddSub(result, mid, m, OpAdd, sig)
	return result, status
}

// Mul computes c = a * b at the given scale. c may alias a or b.
func Mul(a, b, c *Number, scale int, sig Signal) Status {
	aSrc, bSrc := a, b
	if c == a {
		aSrc = a.Clone()
	}
	if c == b {
		bSrc = b.Clone()
	}
	if aSrc.Zero() || bSrc.Zero() {
		c.SetZero(scale)
		return Ok
	}

	rscale := aSrc.scale + bSrc.scale
	effScale := scale
	if aSrc.scale > effScale {
		effScale = aSrc.scale
	}
	if bSrc.scale > effScale {
		effScale = bSrc.scale
	}
	if effScale > rscale {
		effScale = rscale
	}

	prod, status := mulCells(aSrc.digits, bSrc.digits, sig)
	if status != Ok {
		return status
	}

	// The raw product naturally has aSrc.rdx+bSrc.rdx fractional
	// cells; drop the excess down to the canonical rdx for rscale.
	// This is exact: each operand's low padding digits (invariant 6)
	// multiply out to at least as many guaranteed-zero low digits in
	// the product, and naturalRdx*D never exceeds that span.
	naturalRdx := ceilDiv(rscale, D)
	if drop := aSrc.rdx + bSrc.rdx - naturalRdx; drop > 0 {
		if drop >= len(prod) {
			prod = nil
		} else {
			prod = prod[drop:]
		}
	}

	res := &Number{digits: prod, rdx: naturalRdx, scale: rscale}
	res.clean()
	c.CopyFrom(res)
	retireMul(c, effScale, aSrc.neg, bSrc.neg)
	return Ok
}

// MulReq is the advisory output capacity (in cells) for Mul, per
// spec §6: room for the widest product at the requested scale.
func MulReq(a, b *Number, scale int) int {
	maxFrac := a.rdx + b.rdx
	if ceilDiv(scale, D) > maxFrac {
		maxFrac = ceilDiv(scale, D)
	}
	if maxFrac < 1 {
		maxFrac = 1
	}
	return ceilDiv(a.IntDigits(), D) + ceilDiv(b.IntDigits(), D) + maxFrac
}
