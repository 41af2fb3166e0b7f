// Package num implements the arbitrary-precision, fixed-point decimal
// number core: a base-10^9 digit representation together with the
// arithmetic, comparison, parse and print operations built on top of
// it. The package knows nothing about lexers, bytecode, or variables —
// it is the hard numeric kernel a calculator language's interpreter
// sits on top of.
package num

import "fmt"

// D is the number of decimal digits stored per cell, and B = 10^D is
// the cell base. Cells are stored least-significant first. Products of
// two cells (< 10^18) and a short carry comfortably fit in int64,
// which is the only width arithmetic in this package ever needs.
const (
	D = 9
	B = 1_000_000_000
)

// pow10[i] = 10^i for i in [0, D].
var pow10 = [D + 1]int64{
	1, 10, 100, 1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// Status is the outcome of a number operation. Mathematical errors
// (DivideByZero, Negative, NonInteger, Overflow) and cooperative
// cancellation (Interrupted) are both reported this way; there is no
// panic path for either.
type Status int

const (
	Ok Status = iota
	Interrupted
	DivideByZero
	Negative
	NonInteger
	Overflow
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case Interrupted:
		return "interrupted"
	case DivideByZero:
		return "divide by zero"
	case Negative:
		return "negative"
	case NonInteger:
		return "non-integer"
	case Overflow:
		return "overflow"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Signal reports whether the caller's cooperative-cancellation flag
// has been raised. Every bounded inner loop in this package polls it
// once per iteration; the zero value (nil) never signals, which lets
// callers that don't care about cancellation pass nil.
type Signal interface {
	Raised() bool
}

func raised(sig Signal) bool {
	return sig != nil && sig.Raised()
}

// Number is a signed, fixed-point, arbitrary-precision decimal. The
// zero value is the number 0 with scale 0 and is ready to use.
//
// Invariants (see spec §3), all maintained by clean:
//  1. len(digits) has no meaning beyond cap; Go slices track that for us.
//  2. If len(digits) > 0, the top cell is nonzero.
//  3. If len(digits) > 0, len(digits) >= rdx.
//  4. Each cell is in [0, B) once normalized.
//  5. neg is false whenever len(digits) == 0.
//  6. When scale % D != 0, digits[0] is a multiple of 10^(D - scale%D).
type Number struct {
	digits []int64 // least-significant cell first; may go transiently negative mid-subtraction
	rdx    int     // number of fractional cells, rdx <= len(digits) when len(digits) > 0
	scale  int     // user-visible base-10 fractional digit count
	neg    bool
}

// New returns the number 0.
func New() *Number {
	return &Number{}
}

// NewCap returns the number 0 with its digit buffer pre-sized to
// capacity cells, the Go analogue of the source's init(capacity).
func NewCap(capacity int) *Number {
	if capacity < 0 {
		capacity = 0
	}
	return &Number{digits: make([]int64, 0, capacity)}
}

// Borrow returns the number 0 backed by buf, reusing its storage
// instead of allocating — the analogue of the source's setup() over a
// caller-supplied buffer (e.g. small constant digits living on the
// caller's stack). Growth past cap(buf) reallocates like any Go slice;
// there is no separate free path since the runtime GC owns the memory.
func Borrow(buf []int64) *Number {
	return &Number{digits: buf[:0]}
}

// One returns the number 1.
func One() *Number {
	return &Number{digits: []int64{1}}
}

// SetZero resets n to 0 at the given scale (ceil(scale/D) fractional
// cells reserved but unpopulated — len(digits) == 0 remains the
// canonical zero regardless of scale).
func (n *Number) SetZero(scale int) {
	n.digits = n.digits[:0]
	n.rdx = ceilDiv(scale, D)
	n.scale = scale
	n.neg = false
}

// Zero reports whether n is the number 0.
func (n *Number) Zero() bool { return len(n.digits) == 0 }

// Neg reports n's sign. Always false when n is zero.
func (n *Number) Neg() bool { return n.neg }

// SetNeg forcibly sets n's sign, except that zero is never negative.
func (n *Number) SetNeg(neg bool) {
	if n.Zero() {
		n.neg = false
		return
	}
	n.neg = neg
}

// Scale is the user-visible number of base-10 fractional digits.
func (n *Number) Scale() int { return n.scale }

// Rdx is the number of fractional cells.
func (n *Number) Rdx() int { return n.rdx }

// IntDigits is the decimal digit count of n's integer part:
// (len-rdx)*D minus the leading zeros of the top cell.
func (n *Number) IntDigits() int {
	ilen := len(n.digits) - n.rdx
	if ilen <= 0 {
		return 0
	}
	top := n.digits[len(n.digits)-1]
	return (ilen-1)*D + decDigits(top)
}

// One reports whether n is exactly 1.
func (n *Number) One() bool {
	return !n.neg && len(n.digits) == 1 && n.rdx == 0 && n.digits[0] == 1
}

// CopyFrom makes n an independent copy of src (never aliasing its
// digit buffer — ownership of a Number's digits is always exclusive).
func (n *Number) CopyFrom(src *Number) {
	if n == src {
		return
	}
	n.digits = append(n.digits[:0], src.digits...)
	n.rdx = src.rdx
	n.scale = src.scale
	n.neg = src.neg
}

// Clone returns an independent copy of n.
func (n *Number) Clone() *Number {
	c := &Number{}
	c.CopyFrom(n)
	return c
}

// clean trims trailing (highest-index) zero cells, fixes the sign of
// zero, and leaves len(digits) >= rdx. It is the core's normalization
// primitive; nearly every operation ends by calling it.
func (n *Number) clean() {
	for len(n.digits) > 0 && n.digits[len(n.digits)-1] == 0 {
		n.digits = n.digits[:len(n.digits)-1]
	}
	if len(n.digits) == 0 {
		n.neg = false
		return
	}
	for len(n.digits) < n.rdx {
		n.digits = append(n.digits, 0)
	}
}

// decDigits returns the number of decimal digits in a single cell
// value v, where 0 < v < B. decDigits(0) is defined as 1 to match the
// "top cell contributes at least one digit" convention used by
// IntDigits.
func decDigits(v int64) int {
	if v == 0 {
		return 1
	}
	d := 0
	for v > 0 {
		d++
		v /= 10
	}
	return d
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// String renders n in base 10 without line wrapping, for debugging and
// %v/%s formatting. Production output goes through Print.
func (n *Number) String() string {
	var sb stringSink
	_ = PrintDecimal(n, &sb, nil)
	return sb.String()
}
