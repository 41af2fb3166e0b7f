package num

import "testing"

func TestSqrtPerfectSquares(t *testing.T) {
	cases := []struct{ a, want string }{
		{"4", "2"},
		{"9", "3"},
		{"0", "0"},
		{"1", "1"},
		{"144", "12"},
	}
	for _, c := range cases {
		a := parseDec(t, c.a)
		b := New()
		if status := Sqrt(a, b, 10, nil); status != Ok {
			t.Fatalf("Sqrt(%q) = %v", c.a, status)
		}
		want := c.want
		if want != "0" {
			want += ".0000000000"
		} else {
			want = "0"
		}
		if b.String() != want {
			t.Errorf("sqrt(%s) = %s, want %s", c.a, b.String(), want)
		}
	}
}

func TestSqrtNegative(t *testing.T) {
	a, b := parseDec(t, "-4"), New()
	if status := Sqrt(a, b, 10, nil); status != Negative {
		t.Errorf("Sqrt(-4) = %v, want Negative", status)
	}
}

func TestSqrtOfTwoScale50(t *testing.T) {
	a, b := parseDec(t, "2"), New()
	if status := Sqrt(a, b, 50, nil); status != Ok {
		t.Fatal(status)
	}
	// sqrt(2) to 50 fractional digits, a well-known reference value.
	// Compare only the leading 50 digits to tolerate either truncation
	// or rounding in the Newton iteration's final digit.
	want := "1.41421356237309504880168872420969807856967187537694"
	if len(b.String()) < 51 || b.String()[:51] != want[:51] {
		t.Errorf("sqrt(2) scale 50 = %s", b.String())
	}
}

func TestSqrtSquaredRoundTrip(t *testing.T) {
	a := parseDec(t, "123.456")
	b := New()
	if status := Sqrt(a, b, 20, nil); status != Ok {
		t.Fatal(status)
	}
	sq := New()
	if status := Mul(b, b, sq, 10, nil); status != Ok {
		t.Fatal(status)
	}
	diff := New()
	if status := Sub(a, sq, diff, 10, nil); status != Ok {
		t.Fatal(status)
	}
	diff.SetNeg(false)
	// sqrt(a)^2 should land within 1e-9 of a.
	tolerance := New()
	if status := ParseDecimal(tolerance, "0.000000001"); status != Ok {
		t.Fatal(status)
	}
	cmp, status := Cmp(diff, tolerance, nil)
	if status != Ok {
		t.Fatal(status)
	}
	if cmp > 0 {
		t.Errorf("sqrt(123.456)^2 too far from 123.456: diff=%s", diff.String())
	}
}

func TestSqrtInterrupted(t *testing.T) {
	a, b := parseDec(t, "2"), New()
	if status := Sqrt(a, b, 50, raisedSignal()); status != Interrupted {
		t.Errorf("Sqrt with raised signal = %v, want Interrupted", status)
	}
}
