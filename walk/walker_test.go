package walk

import (
	"strings"
	"testing"

	"soluna/logging"
	"soluna/syntax"
)

// analyze is a test helper running the full front half of the pipeline and
// then the walker
func analyze(t *testing.T, src string) error {
	t.Helper()

	lexemes, diags := syntax.NewLexer(src).ScanAll()
	if len(diags) != 0 {
		t.Fatalf("unexpected lexical diagnostics: %v", diags)
	}

	tree, err := syntax.NewParser(syntax.Classify(lexemes)).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}

	return NewWalker().Analyze(tree)
}

// wantSemErr asserts a semantic error whose message contains the fragment
func wantSemErr(t *testing.T, err error, fragment string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a semantic error containing %q", fragment)
	}
	serr, ok := err.(*logging.SemanticError)
	if !ok {
		t.Fatalf("got error type %T: %s", err, err)
	}
	if !strings.Contains(serr.Message, fragment) {
		t.Fatalf("got message %q, want fragment %q", serr.Message, fragment)
	}
}

func TestCleanDeclaration(t *testing.T) {
	if err := analyze(t, "kai x = 5;"); err != nil {
		t.Fatal(err)
	}
}

func TestConstantReassignment(t *testing.T) {
	err := analyze(t, "zeta kai x = 5; x = 6;")
	wantSemErr(t, err, "constant 'x'")
}

func TestUndeclaredVariableInCondition(t *testing.T) {
	err := analyze(t, "sol x cos mos")
	wantSemErr(t, err, "'x' is not declared")
}

func TestBreakOutsideLoop(t *testing.T) {
	err := analyze(t, "warp;")
	wantSemErr(t, err, "outside of a loop")
}

func TestBreakInsideLoop(t *testing.T) {
	if err := analyze(t, "orbit iris cos warp; mos"); err != nil {
		t.Fatal(err)
	}
}

func TestSameScopeRedeclaration(t *testing.T) {
	err := analyze(t, "kai x = 1; kai x = 2;")
	wantSemErr(t, err, "already declared")
}

func TestShadowingInInnerScope(t *testing.T) {
	src := "kai x = 1; sol iris cos local kai x = 2; mos"
	if err := analyze(t, src); err != nil {
		t.Fatal(err)
	}
}

func TestGlobalByDefault(t *testing.T) {
	// an undecorated declaration inside a block lands in the global scope
	src := "sol iris cos kai g = 1; mos g = 2;"
	if err := analyze(t, src); err != nil {
		t.Fatal(err)
	}
}

func TestLocalStaysScoped(t *testing.T) {
	src := "sol iris cos local kai g = 1; mos g = 2;"
	err := analyze(t, src)
	wantSemErr(t, err, "'g' is not declared")
}

func TestConstantFromRuntimeInput(t *testing.T) {
	err := analyze(t, "zeta kai x = lumina();")
	wantSemErr(t, err, "runtime input")
}

func TestTypeMismatch(t *testing.T) {
	err := analyze(t, "kai x = \"hello\";")
	wantSemErr(t, err, "Type mismatch")
}

func TestNarrowingLiteralThatFits(t *testing.T) {
	// a float literal with no fractional significance fits an integer slot
	if err := analyze(t, "kai x = 5.0;"); err != nil {
		t.Fatal(err)
	}
}

func TestNarrowingLiteralThatDoesNotFit(t *testing.T) {
	err := analyze(t, "kai x = 5.5;")
	wantSemErr(t, err, "Type mismatch")
}

func TestForwardCallBetweenFunctions(t *testing.T) {
	src := "void first() second(); mos void second() mos"
	if err := analyze(t, src); err != nil {
		t.Fatal(err)
	}
}

func TestCallArity(t *testing.T) {
	src := "kai twice(kai n) zara n * 2; mos twice(1, 2);"
	err := analyze(t, src)
	wantSemErr(t, err, "expects 1 arguments but got 2")
}

func TestCallUndeclaredFunction(t *testing.T) {
	err := analyze(t, "missing();")
	wantSemErr(t, err, "'missing' is not declared")
}

func TestMissingReturn(t *testing.T) {
	src := "kai broken() nova(1); mos"
	err := analyze(t, src)
	wantSemErr(t, err, "must return")
}

func TestReturnValueFromVoid(t *testing.T) {
	src := "void shout() zara 1; mos"
	err := analyze(t, src)
	wantSemErr(t, err, "void function")
}

func TestDivisionByZero(t *testing.T) {
	err := analyze(t, "kai x = 5 / 0;")
	wantSemErr(t, err, "Division by zero")
}

func TestTableElementCoercion(t *testing.T) {
	err := analyze(t, "hubble kai nums = {1, \"two\"};")
	wantSemErr(t, err, "Type mismatch")
}

func TestTableIndexedWrite(t *testing.T) {
	src := "hubble kai nums = {1, 2}; nums[0] = 3;"
	if err := analyze(t, src); err != nil {
		t.Fatal(err)
	}

	err := analyze(t, "hubble kai nums = {1, 2}; nums[0] = \"three\";")
	wantSemErr(t, err, "Type mismatch")
}

func TestForLoopVariableMustBeInteger(t *testing.T) {
	err := analyze(t, "selene s = \"hi\"; phase s, 10 cos mos")
	wantSemErr(t, err, "must be an integer")
}

func TestForLoopLimitMustBeInteger(t *testing.T) {
	err := analyze(t, "phase kai i = 0, \"ten\" cos mos")
	wantSemErr(t, err, "limit must be an integer")
}

func TestConcatenationTypesAsString(t *testing.T) {
	if err := analyze(t, "selene s = \"a\" .. \"b\";"); err != nil {
		t.Fatal(err)
	}
}

func TestRelationalTypesAsBoolean(t *testing.T) {
	if err := analyze(t, "lani b = 1 < 2;"); err != nil {
		t.Fatal(err)
	}
}
