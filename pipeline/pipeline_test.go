package pipeline

import (
	"encoding/json"
	"testing"

	"soluna/logging"
)

func TestCleanProgram(t *testing.T) {
	res := Run("kai x = 5;")

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Tokens) != 5 {
		t.Errorf("got %d tokens", len(res.Tokens))
	}
	if res.ParseTree == nil {
		t.Fatal("missing parse tree")
	}
}

func TestLexicalErrorsSuppressParsing(t *testing.T) {
	res := Run("kai s = \"abc")

	if len(res.Errors) != 1 || res.Errors[0].Type != logging.DiagUnclosedString {
		t.Fatalf("got errors %v", res.Errors)
	}
	if res.ParseTree != nil {
		t.Error("parse tree produced despite lexical errors")
	}
	// already-scanned tokens still go back to the caller
	if len(res.Tokens) == 0 {
		t.Error("tokens dropped on lexical error")
	}
}

func TestEmptySourceSkipsParsing(t *testing.T) {
	res := Run("")

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.ParseTree != nil {
		t.Error("parse tree produced for empty input")
	}
}

func TestSyntaxErrorBecomesDiagnostic(t *testing.T) {
	res := Run("kai x")

	if len(res.Errors) != 1 || res.Errors[0].Type != logging.DiagParserError {
		t.Fatalf("got errors %v", res.Errors)
	}
	if res.ParseTree != nil {
		t.Error("parse tree produced despite syntax error")
	}
}

func TestSemanticErrorBecomesDiagnostic(t *testing.T) {
	res := Run("warp;")

	if len(res.Errors) != 1 || res.Errors[0].Type != logging.DiagSemanticError {
		t.Fatalf("got errors %v", res.Errors)
	}
	if res.ParseTree != nil {
		t.Error("parse tree produced despite semantic error")
	}
}

func TestResultSerializes(t *testing.T) {
	res := Run("kai x = 5;")

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{"tokens", "errors", "parseTree"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("missing field %q", field)
		}
	}
}
