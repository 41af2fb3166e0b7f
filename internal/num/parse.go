package num

import "strings"

// digitValue converts a single input character to its numeric value in
// the given base, clamping out-of-range digit characters down to
// base-1 rather than rejecting them — spec §4.10's "upper-case letters
// clamped to '9'" rule for decimal, generalized to any base.
func digitValue(ch byte, base int) int64 {
	var v int64
	switch {
	case ch >= '0' && ch <= '9':
		v = int64(ch - '0')
	case ch >= 'A' && ch <= 'Z':
		v = int64(ch-'A') + 10
	case ch >= 'a' && ch <= 'z':
		v = int64(ch-'a') + 10
	default:
		v = 0
	}
	if v >= int64(base) {
		v = int64(base) - 1
	}
	return v
}

func splitSign(text string) (neg bool, rest string) {
	if len(text) > 0 && (text[0] == '-' || text[0] == '+') {
		return text[0] == '-', text[1:]
	}
	return false, text
}

func splitDecimalPoint(text string) (intPart, fracPart string) {
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		return text[:dot], text[dot+1:]
	}
	return text, ""
}

// Parse reads text into n. If letter, text's first character is read
// as a single base-36 digit (dc's register-name style numeric
// literal), clamped to base-1. Otherwise decimal input goes through
// ParseDecimal and every other base through ParseBase, per spec §4.10.
func Parse(n *Number, text string, base int, letter bool, sig Signal) Status {
	if letter {
		ch := byte('0')
		if len(text) > 0 {
			ch = text[0]
		}
		v := digitValue(ch, 36)
		if base > 0 && v >= int64(base) {
			v = int64(base) - 1
		}
		if v == 0 {
			n.SetZero(0)
		} else {
			n.CopyFrom(&Number{digits: []int64{v}})
		}
		return Ok
	}
	if base == 10 {
		return ParseDecimal(n, text)
	}
	return ParseBase(n, text, base, sig)
}

// ParseDecimal reads a base-10 literal directly into n's cell layout:
// scale is the input's fractional digit count, rdx = ceil(scale/D),
// and every digit is placed at its exact decimal position — including
// the invariant-6 offset (pad = rdx*D - scale) that keeps a
// non-multiple-of-D scale's real digits at the high end of cell 0.
func ParseDecimal(n *Number, text string) Status {
	neg, s := splitSign(text)
	intPart, fracPart := splitDecimalPoint(s)
	for len(intPart) > 1 && intPart[0] == '0' {
		intPart = intPart[1:]
	}
	if intPart == "0" {
		intPart = ""
	}
	scale := len(fracPart)
	if scale == 0 && intPart == "" {
		n.SetZero(0)
		return Ok
	}
	rdx := ceilDiv(scale, D)
	intCells := ceilDiv(len(intPart), D)
	digits := make([]int64, rdx+intCells)

	pad := rdx*D - scale
	for i := 0; i < len(fracPart); i++ {
		v := digitValue(fracPart[len(fracPart)-1-i], 10)
		if v == 0 {
			continue
		}
		pos := i + pad
		digits[pos/D] += v * pow10[pos%D]
	}
	for i := 0; i < len(intPart); i++ {
		v := digitValue(intPart[len(intPart)-1-i], 10)
		if v == 0 {
			continue
		}
		pos := i
		digits[rdx+pos/D] += v * pow10[pos%D]
	}

	res := &Number{digits: digits, rdx: rdx, scale: scale, neg: neg}
	res.clean()
	n.CopyFrom(res)
	return Ok
}

// ParseBase reads a literal in an arbitrary base (!= 10) by running it
// through the number core itself: the integer part accumulates via
// n = n*base + digit, and the fractional part accumulates the same
// way into a separate (result, base^k) pair before being divided down
// and added in at double the target scale, then truncated — spec
// §4.10's parse_base.
func ParseBase(n *Number, text string, base int, sig Signal) Status {
	neg, s := splitSign(text)
	intPart, fracPart := splitDecimalPoint(s)

	baseNum := &Number{digits: cellTrim([]int64{int64(base)})}
	acc := New()
	for i := 0; i < len(intPart); i++ {
		if raised(sig) {
			return Interrupted
		}
		v := digitValue(intPart[i], base)
		tmp := New()
		if status := Mul(acc, baseNum, tmp, 0, sig); status != Ok {
			return status
		}
		if status := Add(tmp, digitNumber(v), acc, 0, sig); status != Ok {
			return status
		}
	}

	digs := len(fracPart)
	if digs > 0 {
		m1 := One()
		result := New()
		for i := 0; i < digs; i++ {
			if raised(sig) {
				return Interrupted
			}
			v := digitValue(fracPart[i], base)
			tmp := New()
			if status := Mul(result, baseNum, tmp, 0, sig); status != Ok {
				return status
			}
			if status := Add(tmp, digitNumber(v), result, 0, sig); status != Ok {
				return status
			}
			m1tmp := New()
			if status := Mul(m1, baseNum, m1tmp, 0, sig); status != Ok {
				return status
			}
			m1 = m1tmp
		}
		frac := New()
		if status := Div(result, m1, frac, 2*digs, sig); status != Ok {
			return status
		}
		if status := Add(acc, frac, acc, 2*digs, sig); status != Ok {
			return status
		}
		retireAdd(acc, digs)
	}
	acc.SetNeg(neg)
	n.CopyFrom(acc)
	return Ok
}

// digitNumber wraps a single already-clamped digit value as a Number.
func digitNumber(v int64) *Number {
	if v == 0 {
		return New()
	}
	return &Number{digits: []int64{v}}
}
