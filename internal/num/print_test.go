package num

import "testing"

func printDecStr(t *testing.T, n *Number) string {
	t.Helper()
	var sb stringSink
	if status := PrintDecimal(n, &sb, nil); status != Ok {
		t.Fatalf("PrintDecimal = %v", status)
	}
	return sb.String()
}

func TestPrintDecimalZero(t *testing.T) {
	n := New()
	if got := printDecStr(t, n); got != "0" {
		t.Errorf("print(0) = %s, want 0", got)
	}
}

func TestPrintBaseHexIntegers(t *testing.T) {
	cases := []struct {
		in, want string
		base     int
	}{
		{"255", "FF", 16},
		{"8", "1000", 2},
		{"12345", "3039", 16},
		{"0", "0", 16},
	}
	for _, c := range cases {
		n := parseDec(t, c.in)
		var sb stringSink
		if status := PrintBase(n, &sb, c.base, nil); status != Ok {
			t.Fatalf("PrintBase(%q, %d) = %v", c.in, c.base, status)
		}
		if sb.String() != c.want {
			t.Errorf("PrintBase(%q, %d) = %s, want %s", c.in, c.base, sb.String(), c.want)
		}
	}
}

// TestPrintBaseRoundTripsParseBase checks PrintBase against ParseBase
// on a fractional hex value: 0x1A.8 == 26.5.
func TestPrintBaseRoundTripsParseBase(t *testing.T) {
	n := parseDec(t, "26.5")
	var sb stringSink
	if status := PrintBase(n, &sb, 16, nil); status != Ok {
		t.Fatal(status)
	}
	if sb.String() != "1A.8" {
		t.Errorf("PrintBase(26.5, 16) = %s, want 1A.8", sb.String())
	}

	back := New()
	if status := ParseBase(back, sb.String(), 16, nil); status != Ok {
		t.Fatal(status)
	}
	cmp, status := Cmp(n, back, nil)
	if status != Ok {
		t.Fatal(status)
	}
	if cmp != 0 {
		t.Errorf("round trip through base 16: %s != %s", n.String(), back.String())
	}
}

func TestPrintBaseNegative(t *testing.T) {
	n := parseDec(t, "-255")
	var sb stringSink
	if status := PrintBase(n, &sb, 16, nil); status != Ok {
		t.Fatal(status)
	}
	if sb.String() != "-FF" {
		t.Errorf("PrintBase(-255, 16) = %s, want -FF", sb.String())
	}
}

func TestPrintBaseWideBase(t *testing.T) {
	// Bases above posixIBaseMax print each digit as decimal text
	// followed by a space rather than a single character.
	n := parseDec(t, "1000")
	var sb stringSink
	if status := PrintBase(n, &sb, 100, nil); status != Ok {
		t.Fatal(status)
	}
	if sb.String() != "10 0 " {
		t.Errorf("PrintBase(1000, 100) = %q, want %q", sb.String(), "10 0 ")
	}
}

func TestPrintExponentScientific(t *testing.T) {
	n := parseDec(t, "12345.6789")
	var sb stringSink
	if status := PrintExponent(n, &sb, false, nil); status != Ok {
		t.Fatal(status)
	}
	if sb.String() != "1.23456789e+4" {
		t.Errorf("PrintExponent(12345.6789, scientific) = %s, want 1.23456789e+4", sb.String())
	}
}

func TestPrintExponentEngineering(t *testing.T) {
	n := parseDec(t, "12345.6789")
	var sb stringSink
	if status := PrintExponent(n, &sb, true, nil); status != Ok {
		t.Fatal(status)
	}
	if sb.String() != "12.3456789e+3" {
		t.Errorf("PrintExponent(12345.6789, engineering) = %s, want 12.3456789e+3", sb.String())
	}
}

func TestPrintExponentSmallValue(t *testing.T) {
	n := parseDec(t, "0.0001234")
	var sb stringSink
	if status := PrintExponent(n, &sb, false, nil); status != Ok {
		t.Fatal(status)
	}
	if sb.String() != "1.234e-4" {
		t.Errorf("PrintExponent(0.0001234) = %s, want 1.234e-4", sb.String())
	}
}

func TestPrintStream(t *testing.T) {
	n := parseDec(t, "1234.5")
	var sb stringSink
	if status := PrintStream(n, &sb, nil); status != Ok {
		t.Fatal(status)
	}
	want := string([]byte{1, 2, 3, 4, 5})
	if sb.String() != want {
		t.Errorf("PrintStream(1234.5) = %v, want %v", []byte(sb.String()), []byte(want))
	}
}

func TestPrintDispatchesOnBase(t *testing.T) {
	n := parseDec(t, "255")
	var sb stringSink
	if status := Print(n, &sb, 16, false, nil); status != Ok {
		t.Fatal(status)
	}
	if sb.String() != "FF" {
		t.Errorf("Print(255, base=16) = %s, want FF", sb.String())
	}
}

func TestPrintNewline(t *testing.T) {
	n := parseDec(t, "5")
	var sb stringSink
	if status := Print(n, &sb, 10, true, nil); status != Ok {
		t.Fatal(status)
	}
	if sb.String() != "5\n" {
		t.Errorf("Print with newline = %q, want %q", sb.String(), "5\n")
	}
}

func TestPrintDecimalInterrupted(t *testing.T) {
	n := parseDec(t, "12345")
	var sb stringSink
	if status := PrintDecimal(n, &sb, raisedSignal()); status != Interrupted {
		t.Errorf("PrintDecimal with raised signal = %v, want Interrupted", status)
	}
}
