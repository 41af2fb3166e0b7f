package num

// AddReq is the advisory output capacity (in cells) a caller should
// size c to before calling Add, per spec §6: room for the wider
// fractional part plus the wider integer part plus one carry cell.
func AddReq(a, b *Number) int {
	maxRdx := a.rdx
	if b.rdx > maxRdx {
		maxRdx = b.rdx
	}
	aInt, bInt := a.IntDigits(), b.IntDigits()
	maxInt := aInt
	if bInt > maxInt {
		maxInt = bInt
	}
	return maxRdx + ceilDiv(maxInt, D) + 1
}

// magAdd returns |a| + |b| as a fresh number at the common
// (larger) scale of the two operands. Both inputs are rescaled to
// that common scale first (Extend never changes value), which lets
// the cell-by-cell add run over two equal-rdx arrays padded to equal
// length — the Go equivalent of spec §4.5's "align by fractional
// length, add overlap, carry through the longer integer part".
func magAdd(a, b *Number, sig Signal) (*Number, Status) {
	commonScale := a.scale
	if b.scale > commonScale {
		commonScale = b.scale
	}
	aa, bb := a.Clone(), b.Clone()
	Extend(aa, commonScale-aa.scale)
	Extend(bb, commonScale-bb.scale)

	total := len(aa.digits)
	if len(bb.digits) > total {
		total = len(bb.digits)
	}
	ad := make([]int64, total+1)
	copy(ad, aa.digits)
	bd := make([]int64, total+1)
	copy(bd, bb.digits)

	if status := addArrays(ad, bd, total, sig); status != Ok {
		return nil, status
	}
	res := &Number{digits: ad, rdx: aa.rdx, scale: commonScale}
	res.clean()
	return res, Ok
}

// magSub returns |a| - |b| (as a non-negative magnitude) together
// with whether a was the larger operand, or (nil, _, status) on
// interruption. Both inputs are aligned to the common scale first,
// same as magAdd.
func magSub(a, b *Number, sig Signal) (*Number, bool, Status) {
	commonScale := a.scale
	if b.scale > commonScale {
		commonScale = b.scale
	}
	aa, bb := a.Clone(), b.Clone()
	Extend(aa, commonScale-aa.scale)
	Extend(bb, commonScale-bb.scale)

	cmp, status := cmpMagnitude(aa, bb, sig)
	if status != Ok {
		return nil, false, status
	}
	if cmp == 0 {
		return &Number{rdx: aa.rdx, scale: commonScale}, true, Ok
	}
	big, small, aBigger := aa, bb, true
	if cmp < 0 {
		big, small, aBigger = bb, aa, false
	}
	total := len(big.digits)
	bigD := append([]int64(nil), big.digits...)
	smallD := make([]int64, total)
	copy(smallD, small.digits)
	if status := subArrays(bigD, smallD, total, sig); status != Ok {
		return nil, false, status
	}
	res := &Number{digits: bigD, rdx: big.rdx, scale: commonScale}
	res.clean()
	return res, aBigger, Ok
}

// retireAdd brings an add/sub result to the requested scale without
// touching the sign magAdd/magSub already resolved — the add/sub
// analogue of shift.go's retireMul, which instead derives sign from
// neg1 XOR neg2 and so cannot be reused here.
func retireAdd(n *Number, scale int) {
	if scale > n.scale {
		Extend(n, scale-n.scale)
	} else if scale < n.scale {
		Truncate(n, n.scale-scale)
	}
	n.clean()
	if n.Zero() {
		n.neg = false
	}
}

// Add computes c = a + b. The result carries the larger of the two
// operands' scales, truncated to scale when scale is smaller; it is
// never extended past the operands' own scale. c may alias a or b.
func Add(a, b, c *Number, scale int, sig Signal) Status {
	aSrc, bSrc := a, b
	if c == a {
		aSrc = a.Clone()
	}
	if c == b {
		bSrc = b.Clone()
	}

	var res *Number
	var status Status
	if aSrc.neg == bSrc.neg {
		res, status = magAdd(aSrc, bSrc, sig)
		if status != Ok {
			return status
		}
		res.SetNeg(aSrc.neg)
	} else {
		var aBigger bool
		res, aBigger, status = magSub(aSrc, bSrc, sig)
		if status != Ok {
			return status
		}
		if aBigger {
			res.SetNeg(aSrc.neg)
		} else {
			res.SetNeg(bSrc.neg)
		}
	}
	c.CopyFrom(res)
	if scale > c.scale {
		scale = c.scale
	}
	retireAdd(c, scale)
	return Ok
}

// Sub computes c = a - b, with the same result scale as Add. c may
// alias a or b.
// Implemented as a + (-b), matching spec §4.5's note that sub never
// recurses into a separate magnitude routine of its own — it shares
// magAdd/magSub with Add via a sign-flipped copy of b.
func Sub(a, b, c *Number, scale int, sig Signal) Status {
	flipped := b.Clone()
	flipped.SetNeg(!flipped.neg)
	return Add(a, flipped, c, scale, sig)
}
