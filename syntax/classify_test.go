package syntax

import (
	"testing"
)

func TestNumberNormalization(t *testing.T) {
	cases := []struct {
		text string
		kind string
		want string
	}{
		{"7", KindInteger, "7"},
		{"007", KindInteger, "7"},
		{"000", KindInteger, "0"},
		{"-042", KindInteger, "-42"},
		{"3.5", KindFloat, "3.5"},
		{"03.500", KindFloat, "3.5"},
		{"2.0000", KindFloat, "2.0"},
		{"2.00000", KindDouble, "2.0"},
		{"1.23456", KindDouble, "1.23456"},
		{"-0.50", KindFloat, "-0.5"},
	}

	for _, c := range cases {
		kind, got := classifyNumber(c.text)
		if kind != c.kind || got != c.want {
			t.Errorf("classifyNumber(%q) = (%q, %q), want (%q, %q)", c.text, kind, got, c.kind, c.want)
		}
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	for _, text := range []string{"7", "3.5", "-42", "0", "1.23456"} {
		_, once := classifyNumber(text)
		_, twice := classifyNumber(once)
		if once != twice {
			t.Errorf("normalization of %q is not idempotent: %q then %q", text, once, twice)
		}
	}
}

func TestFloatDoubleSplit(t *testing.T) {
	// the split is decided by the original fractional length, not the
	// normalized one
	kind, _ := classifyNumber("1.5000")
	if kind != KindFloat {
		t.Errorf("got %q for four fractional digits", kind)
	}

	kind, _ = classifyNumber("1.50000")
	if kind != KindDouble {
		t.Errorf("got %q for five fractional digits", kind)
	}
}

func TestMinusSplitAfterOperand(t *testing.T) {
	// `x -5` scans an eager negative literal that must split back into a
	// subtraction
	tokens, diags := scan(t, "x -5")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	want := []string{"identifier", "-", "integer"}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got tokens %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if tokens[2].Value != "5" {
		t.Errorf("got literal value %q, want %q", tokens[2].Value, "5")
	}
}

func TestMinusMergeIntoLiteral(t *testing.T) {
	// after `(` a lone minus belongs to the number
	tokens, diags := scan(t, "( - 5")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	last := tokens[len(tokens)-1]
	if last.Kind != KindInteger || last.Value != "-5" {
		t.Fatalf("got %q token %q", last.Kind, last.Value)
	}
}

func TestMinusStaysBinary(t *testing.T) {
	tokens, diags := scan(t, "x - 5")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	want := []string{"identifier", "-", "integer"}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
