package num

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestAlgebraicLawsConcurrent runs a batch of independent algebraic
// law checks across goroutines via errgroup, since each law's Number
// values are self-contained and none share mutable state with another.
func TestAlgebraicLawsConcurrent(t *testing.T) {
	type law struct {
		name string
		fn   func() error
	}

	laws := []law{
		{"commutative-add", func() error {
			ab, err := addStrErr("1.23", "45.6", 15)
			if err != nil {
				return err
			}
			ba, err := addStrErr("45.6", "1.23", 15)
			if err != nil {
				return err
			}
			return checkEqual(ab, ba)
		}},
		{"commutative-mul", func() error {
			ab, err := mulStrErr("7.5", "-3.2", 15)
			if err != nil {
				return err
			}
			ba, err := mulStrErr("-3.2", "7.5", 15)
			if err != nil {
				return err
			}
			return checkEqual(ab, ba)
		}},
		{"associative-add", func() error {
			ab, err := addStrErr("1.1", "2.2", 15)
			if err != nil {
				return err
			}
			abc1, err := addStrErr(ab, "3.3", 15)
			if err != nil {
				return err
			}
			bc, err := addStrErr("2.2", "3.3", 15)
			if err != nil {
				return err
			}
			abc2, err := addStrErr("1.1", bc, 15)
			if err != nil {
				return err
			}
			return checkEqual(abc1, abc2)
		}},
		{"distributive", func() error {
			// a*(b+c) == a*b + a*c
			a, b, c := "3.5", "2.1", "-1.4"
			bc, err := addStrErr(b, c, 20)
			if err != nil {
				return err
			}
			lhs, err := mulStrErr(a, bc, 20)
			if err != nil {
				return err
			}
			ab, err := mulStrErr(a, b, 20)
			if err != nil {
				return err
			}
			ac, err := mulStrErr(a, c, 20)
			if err != nil {
				return err
			}
			rhs, err := addStrErr(ab, ac, 20)
			if err != nil {
				return err
			}
			return checkEqual(lhs, rhs)
		}},
		{"additive-inverse", func() error {
			a := New()
			if status := ParseDecimal(a, "999.888"); status != Ok {
				return statusErr(status)
			}
			neg := a.Clone()
			neg.SetNeg(!neg.Neg())
			sum := New()
			if status := Add(a, neg, sum, 10, nil); status != Ok {
				return statusErr(status)
			}
			if !sum.Zero() {
				return errf("a + (-a) != 0, got %s", sum.String())
			}
			return nil
		}},
		{"div-mul-round-trip", func() error {
			a, b := "555.444", "11.1"
			q, err := divStrErr(a, b, 30)
			if err != nil {
				return err
			}
			back, err := mulStrErr(q, b, 15)
			if err != nil {
				return err
			}
			return checkEqual(a, back)
		}},
		{"parse-print-round-trip", func() error {
			for _, s := range []string{"0", "-1", "12345.6789", "0.000001"} {
				n := New()
				if status := ParseDecimal(n, s); status != Ok {
					return statusErr(status)
				}
				if n.String() != s {
					return errf("round trip %q -> %s", s, n.String())
				}
			}
			return nil
		}},
		{"pow-matches-repeated-mul", func() error {
			a, b, c := New(), New(), New()
			if status := ParseDecimal(a, "7"); status != Ok {
				return statusErr(status)
			}
			if status := ParseDecimal(b, "4"); status != Ok {
				return statusErr(status)
			}
			if status := Pow(a, b, c, 0, nil); status != Ok {
				return statusErr(status)
			}
			acc := One()
			for i := 0; i < 4; i++ {
				tmp := New()
				if status := Mul(acc, a, tmp, 0, nil); status != Ok {
					return statusErr(status)
				}
				acc = tmp
			}
			return checkEqual(c.String(), acc.String())
		}},
	}

	var g errgroup.Group
	for _, l := range laws {
		l := l
		g.Go(func() error {
			if err := l.fn(); err != nil {
				return errf("%s: %v", l.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}

func addStrErr(a, b string, scale int) (string, error) {
	x, y, c := New(), New(), New()
	if status := ParseDecimal(x, a); status != Ok {
		return "", statusErr(status)
	}
	if status := ParseDecimal(y, b); status != Ok {
		return "", statusErr(status)
	}
	if status := Add(x, y, c, scale, nil); status != Ok {
		return "", statusErr(status)
	}
	return c.String(), nil
}

func mulStrErr(a, b string, scale int) (string, error) {
	x, y, c := New(), New(), New()
	if status := ParseDecimal(x, a); status != Ok {
		return "", statusErr(status)
	}
	if status := ParseDecimal(y, b); status != Ok {
		return "", statusErr(status)
	}
	if status := Mul(x, y, c, scale, nil); status != Ok {
		return "", statusErr(status)
	}
	return c.String(), nil
}

func divStrErr(a, b string, scale int) (string, error) {
	x, y, c := New(), New(), New()
	if status := ParseDecimal(x, a); status != Ok {
		return "", statusErr(status)
	}
	if status := ParseDecimal(y, b); status != Ok {
		return "", statusErr(status)
	}
	if status := Div(x, y, c, scale, nil); status != Ok {
		return "", statusErr(status)
	}
	return c.String(), nil
}

func checkEqual(a, b string) error {
	x, y := New(), New()
	if status := ParseDecimal(x, a); status != Ok {
		return statusErr(status)
	}
	if status := ParseDecimal(y, b); status != Ok {
		return statusErr(status)
	}
	cmp, status := Cmp(x, y, nil)
	if status != Ok {
		return statusErr(status)
	}
	if cmp != 0 {
		return errf("%s != %s", a, b)
	}
	return nil
}

func statusErr(s Status) error { return errf("status %v", s) }

func errf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
