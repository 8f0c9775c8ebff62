package syntax

import (
	"testing"

	"soluna/logging"
)

// scan is a test helper running the full lex-and-classify stage
func scan(t *testing.T, src string) ([]Token, []logging.Diagnostic) {
	t.Helper()
	lexemes, diags := NewLexer(src).ScanAll()
	return Classify(lexemes), diags
}

func kinds(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLongestMatch(t *testing.T) {
	tokens, diags := scan(t, "sol soluna")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(tokens) != 2 || tokens[0].Kind != "sol" || tokens[1].Kind != "soluna" {
		t.Fatalf("got tokens %v", kinds(tokens))
	}
}

func TestKeywordWithBadDelimiterBecomesIdentifier(t *testing.T) {
	// `kai` followed by `*` is not a valid keyword ending, but the same
	// spelling is a fine identifier
	tokens, diags := scan(t, "kai*2")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if tokens[0].Kind != KindIdentifier || tokens[0].Value != "kai" {
		t.Fatalf("got %q token %q", tokens[0].Kind, tokens[0].Value)
	}
}

func TestSimpleDeclaration(t *testing.T) {
	tokens, diags := scan(t, "kai x = 5;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	want := []string{"kai", "identifier", "=", "integer", ";"}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got tokens %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got kind %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnclosedString(t *testing.T) {
	_, diags := scan(t, "kai s = \"abc")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Type != logging.DiagUnclosedString {
		t.Errorf("got diagnostic type %q, want %q", diags[0].Type, logging.DiagUnclosedString)
	}
}

func TestUnclosedChar(t *testing.T) {
	_, diags := scan(t, "'a")
	if len(diags) != 1 || diags[0].Type != logging.DiagUnclosedChar {
		t.Fatalf("got diagnostics %v", diags)
	}
}

func TestUnfinishedFloat(t *testing.T) {
	_, diags := scan(t, "123.")
	if len(diags) != 1 || diags[0].Type != logging.DiagUnfinishedFlux {
		t.Fatalf("got diagnostics %v", diags)
	}
}

func TestInvalidDelimiter(t *testing.T) {
	_, diags := scan(t, "123abc")
	if len(diags) != 1 || diags[0].Type != logging.DiagInvalidDelimiter {
		t.Fatalf("got diagnostics %v", diags)
	}
}

func TestRecoveryProducesMultipleErrors(t *testing.T) {
	// two independent lexical errors in one pass
	_, diags := scan(t, "? ?")
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
	for _, d := range diags {
		if d.Type != logging.DiagUnrecognizedChar {
			t.Errorf("got diagnostic type %q", d.Type)
		}
	}
}

func TestLabelToken(t *testing.T) {
	tokens, diags := scan(t, "::top::;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if tokens[0].Kind != KindLabel || tokens[0].Value != "::top::" {
		t.Fatalf("got %q token %q", tokens[0].Kind, tokens[0].Value)
	}
}

func TestComments(t *testing.T) {
	tokens, diags := scan(t, "\\* block *\\ kai x = 1;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if tokens[0].Kind != KindComment {
		t.Fatalf("got first token kind %q", tokens[0].Kind)
	}
}

func TestCommentClosedByEndOfInput(t *testing.T) {
	tokens, diags := scan(t, "\\* never closed")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(tokens) != 1 || tokens[0].Kind != KindComment {
		t.Fatalf("got tokens %v", kinds(tokens))
	}
}

func TestPositionTracking(t *testing.T) {
	tokens, diags := scan(t, "kai x\nflux y")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if tokens[2].Line != 2 || tokens[2].Col != 1 {
		t.Errorf("got line %d col %d for `flux`, want 2:1", tokens[2].Line, tokens[2].Col)
	}
	if tokens[3].Line != 2 || tokens[3].Col != 6 {
		t.Errorf("got line %d col %d for `y`, want 2:6", tokens[3].Line, tokens[3].Col)
	}
}

func TestStringWithEscape(t *testing.T) {
	tokens, diags := scan(t, "\"a\\\"b\"")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if tokens[0].Kind != KindString || tokens[0].Value != "\"a\\\"b\"" {
		t.Fatalf("got %q token %q", tokens[0].Kind, tokens[0].Value)
	}
}
