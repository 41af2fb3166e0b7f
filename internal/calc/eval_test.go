package calc

import "testing"

func evalStr(t *testing.T, src string, ctx Context) string {
	t.Helper()
	if ctx.Regs == nil {
		ctx.Regs = MapRegisters{}
	}
	if ctx.Base == 0 {
		ctx.Base = 10
	}
	v, err := EvalString(src, ctx)
	if err != nil {
		t.Fatalf("EvalString(%q) = %v", src, err)
	}
	return v.String()
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct{ src, want string }{
		{"2+3*4", "14"},
		{"(2+3)*4", "20"},
		{"10/4", "2.5000000000"},
		{"10%3", "0.0000000001"},
		{"2^10", "1024"},
		{"-3+5", "2"},
		{"-(2+3)", "-5"},
		{"sqrt(4)", "2.0000000000"},
	}
	for _, c := range cases {
		if got := evalStr(t, c.src, Context{Scale: 10}); got != c.want {
			t.Errorf("eval(%q) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestEvalRegisters(t *testing.T) {
	regs := MapRegisters{}
	ctx := Context{Scale: 10, Base: 10, Regs: regs}
	if got := evalStr(t, "x=7", ctx); got != "7" {
		t.Fatalf("x=7 evaluated to %s", got)
	}
	if got := evalStr(t, "x+1", ctx); got != "8" {
		t.Errorf("x+1 = %s, want 8", got)
	}
	if got := evalStr(t, "y", ctx); got != "0" {
		t.Errorf("undefined register y = %s, want 0", got)
	}
}

func TestEvalHexLiteralBase16(t *testing.T) {
	// "FF" must lex as a single NUMBER token, not an identifier, so a
	// base-16 Context can parse it as 255 rather than looking it up as
	// a register named "FF".
	ctx := Context{Scale: 0, Base: 16, Regs: MapRegisters{}}
	if got := evalStr(t, "FF", ctx); got != "255" {
		t.Errorf("eval(FF, base 16) = %s, want 255", got)
	}
	if got := evalStr(t, "FF+1", ctx); got != "256" {
		t.Errorf("eval(FF+1, base 16) = %s, want 256", got)
	}
}

func TestEvalDivideByZero(t *testing.T) {
	_, err := EvalString("1/0", Context{Scale: 10, Base: 10, Regs: MapRegisters{}})
	if err == nil {
		t.Fatal("1/0 should have failed")
	}
}

func TestEvalParseError(t *testing.T) {
	_, err := EvalString("1+*2", Context{Scale: 10, Base: 10, Regs: MapRegisters{}})
	if err == nil {
		t.Fatal("malformed expression should have failed to parse")
	}
}
