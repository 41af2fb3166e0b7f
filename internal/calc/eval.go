package calc

import (
	"bcnum/internal/calcerr"
	"bcnum/internal/num"
)

// Registers is the register bank an evaluation reads and writes
// through. internal/store implements this against SQLite; tests and
// simple callers can use a plain map-backed implementation.
type Registers interface {
	Get(name string) (*num.Number, bool)
	Set(name string, value *num.Number)
}

// MapRegisters is an in-memory Registers, useful for tests and for
// callers that don't need persistence.
type MapRegisters map[string]*num.Number

func (m MapRegisters) Get(name string) (*num.Number, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MapRegisters) Set(name string, value *num.Number) {
	m[name] = value.Clone()
}

// Context is the evaluation-time configuration: the output scale new
// results are computed at, the input base literals are parsed in, the
// register bank, and the cooperative-cancellation signal threaded into
// every internal/num call.
type Context struct {
	Scale int
	Base  int
	Regs  Registers
	Sig   num.Signal
}

// Eval evaluates an already-parsed expression tree against ctx,
// returning the resulting Number or a *calcerr.NumError describing
// which operation failed and why.
func Eval(n Node, ctx Context) (*num.Number, error) {
	switch x := n.(type) {
	case NumberLit:
		v := num.New()
		if status := num.Parse(v, x.Text, ctx.Base, false, ctx.Sig); status != num.Ok {
			return nil, calcerr.New("parse", status)
		}
		return v, nil

	case Ident:
		if v, ok := ctx.Regs.Get(x.Name); ok {
			return v.Clone(), nil
		}
		return num.New(), nil

	case Assign:
		v, err := Eval(x.Value, ctx)
		if err != nil {
			return nil, err
		}
		ctx.Regs.Set(x.Name, v)
		return v, nil

	case Unary:
		v, err := Eval(x.X, ctx)
		if err != nil {
			return nil, err
		}
		if x.Op == Minus {
			v.SetNeg(!v.Neg())
		}
		return v, nil

	case Sqrt:
		v, err := Eval(x.X, ctx)
		if err != nil {
			return nil, err
		}
		res := num.New()
		if status := num.Sqrt(v, res, ctx.Scale, ctx.Sig); status != num.Ok {
			return nil, calcerr.New("sqrt", status)
		}
		return res, nil

	case Binary:
		a, err := Eval(x.X, ctx)
		if err != nil {
			return nil, err
		}
		b, err := Eval(x.Y, ctx)
		if err != nil {
			return nil, err
		}
		return evalBinary(x.Op, a, b, ctx)

	default:
		panic("calc: unknown node type")
	}
}

func evalBinary(op Kind, a, b *num.Number, ctx Context) (*num.Number, error) {
	res := num.New()
	var status num.Status
	var name string

	switch op {
	case Plus:
		name, status = "add", num.Add(a, b, res, ctx.Scale, ctx.Sig)
	case Minus:
		name, status = "sub", num.Sub(a, b, res, ctx.Scale, ctx.Sig)
	case Star:
		name, status = "mul", num.Mul(a, b, res, ctx.Scale, ctx.Sig)
	case Slash:
		name, status = "div", num.Div(a, b, res, ctx.Scale, ctx.Sig)
	case Percent:
		name, status = "rem", num.Rem(a, b, res, ctx.Scale, ctx.Sig)
	case Caret:
		name, status = "pow", num.Pow(a, b, res, ctx.Scale, ctx.Sig)
	default:
		panic("calc: unknown binary operator")
	}
	if status != num.Ok {
		return nil, calcerr.New(name, status)
	}
	return res, nil
}

// EvalString parses and evaluates src in one step.
func EvalString(src string, ctx Context) (*num.Number, error) {
	n, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Eval(n, ctx)
}
