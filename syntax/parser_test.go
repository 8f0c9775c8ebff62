package syntax

import (
	"testing"

	"soluna/logging"
)

// parse is a test helper running lex, classify, and parse on clean input
func parse(t *testing.T, src string) (*Node, error) {
	t.Helper()
	lexemes, diags := NewLexer(src).ScanAll()
	if len(diags) != 0 {
		t.Fatalf("unexpected lexical diagnostics: %v", diags)
	}
	return NewParser(Classify(lexemes)).Parse()
}

func TestParseSimpleDeclaration(t *testing.T) {
	tree, err := parse(t, "kai x = 5;")
	if err != nil {
		t.Fatal(err)
	}

	globals := tree.FindChild(NGlobalDeclarations)
	if len(globals.Children) != 1 {
		t.Fatalf("got %d global declarations", len(globals.Children))
	}

	decl := globals.Children[0]
	if decl.Type != NVariableDeclaration {
		t.Fatalf("got node type %q", decl.Type)
	}
	if dt := decl.FindChild(NDataType); dt.Value != "kai" {
		t.Errorf("got declared type %q", dt.Value)
	}

	init := decl.FindChild(NVarInitialization)
	if id := init.FindChild(NIdentifier); id.Value != "x" {
		t.Errorf("got identifier %q", id.Value)
	}
	if lit := init.FindChild(NValues).Children[0]; lit.Type != NLiteral || lit.Value != "5" {
		t.Errorf("got value node %q %q", lit.Type, lit.Value)
	}
}

func TestParseErrorReportsExpectedSet(t *testing.T) {
	_, err := parse(t, "kai x")
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	serr, ok := err.(*logging.SyntaxError)
	if !ok {
		t.Fatalf("got error type %T", err)
	}
	if serr.Unexpected != "End of Input" {
		t.Errorf("got unexpected %q", serr.Unexpected)
	}

	want := map[string]bool{",": true, "=": true, ";": true}
	if len(serr.Expected) != len(want) {
		t.Fatalf("got expected set %v", serr.Expected)
	}
	for _, e := range serr.Expected {
		if !want[e] {
			t.Errorf("unexpected alternative %q", e)
		}
	}
}

func TestFunctionVsVariableLookahead(t *testing.T) {
	tree, err := parse(t, "kai x = 1; kai twice(kai n) zara n * 2; mos twice(3);")
	if err != nil {
		t.Fatal(err)
	}

	if n := len(tree.FindChild(NGlobalDeclarations).Children); n != 1 {
		t.Errorf("got %d global declarations", n)
	}
	funcs := tree.FindChild(NFunctionDeclarations)
	if len(funcs.Children) != 1 {
		t.Fatalf("got %d function declarations", len(funcs.Children))
	}

	fn := funcs.Children[0]
	if name := fn.FindChild(NFuncName); name.Value != "twice" {
		t.Errorf("got function name %q", name.Value)
	}
	if params := fn.FindChild(NParameters); len(params.Children) != 1 {
		t.Errorf("got %d parameters", len(params.Children))
	}

	body := tree.FindChild(NBlock)
	if len(body.Children) != 1 || body.Children[0].Type != NExpressionStatement {
		t.Fatalf("got main block %v", body.Children)
	}
}

func TestParseConditional(t *testing.T) {
	tree, err := parse(t, "kai x = 1; sol x == 1 cos nova(x); mos luna lumen(x); mos")
	if err != nil {
		t.Fatal(err)
	}

	stmt := tree.FindChild(NBlock).Children[0]
	if stmt.Type != NIfStatement {
		t.Fatalf("got node type %q", stmt.Type)
	}
	if stmt.FindChild(NCondition) == nil || stmt.FindChild(NTrueBlock) == nil {
		t.Fatal("missing condition or true block")
	}
	if stmt.FindChild(NElse) == nil {
		t.Fatal("missing else branch")
	}
}

func TestParseConditionWithoutCos(t *testing.T) {
	// the block opener after a condition is optional
	if _, err := parse(t, "kai x = 1; sol x mos"); err != nil {
		t.Fatal(err)
	}
}

func TestParseForLoop(t *testing.T) {
	tree, err := parse(t, "phase kai i = 0, 10, 2 cos nova(i); mos")
	if err != nil {
		t.Fatal(err)
	}

	loop := tree.FindChild(NBlock).Children[0]
	if loop.Type != NForLoop {
		t.Fatalf("got node type %q", loop.Type)
	}
	if loop.FindChild(NForInit) == nil || loop.FindChild(NForLimit) == nil || loop.FindChild(NForStep) == nil {
		t.Fatal("missing for-loop clause")
	}
}

func TestParseRepeatUntil(t *testing.T) {
	tree, err := parse(t, "kai x = 0; wax x = x + 1; wane x > 3")
	if err != nil {
		t.Fatal(err)
	}
	if stmt := tree.FindChild(NBlock).Children[0]; stmt.Type != NRepeatUntil {
		t.Fatalf("got node type %q", stmt.Type)
	}
}

func TestParseTableDeclaration(t *testing.T) {
	tree, err := parse(t, "hubble kai nums = {1, 2, 3};")
	if err != nil {
		t.Fatal(err)
	}

	decl := tree.FindChild(NGlobalDeclarations).Children[0]
	if decl.Type != NTableDeclaration {
		t.Fatalf("got node type %q", decl.Type)
	}
	if elems := decl.FindChild(NElements); len(elems.Children) != 3 {
		t.Errorf("got %d elements", len(elems.Children))
	}
}

func TestParseMultiAssignment(t *testing.T) {
	tree, err := parse(t, "kai a, b = 1, 2; a, b = b, a;")
	if err != nil {
		t.Fatal(err)
	}

	stmt := tree.FindChild(NBlock).Children[0]
	if stmt.Type != NAssignment || stmt.Value != "=" {
		t.Fatalf("got node %q %q", stmt.Type, stmt.Value)
	}
	if len(stmt.FindChild(NTargets).Children) != 2 || len(stmt.FindChild(NValues).Children) != 2 {
		t.Fatal("wrong target/value arity")
	}
}

func TestParseGotoAndLabel(t *testing.T) {
	tree, err := parse(t, "::top::; leo ::top::;")
	if err != nil {
		t.Fatal(err)
	}

	block := tree.FindChild(NBlock)
	if block.Children[0].Type != NLabelDeclaration {
		t.Errorf("got first statement %q", block.Children[0].Type)
	}
	if block.Children[1].Type != NGoto || block.Children[1].Value != "::top::" {
		t.Errorf("got second statement %q %q", block.Children[1].Type, block.Children[1].Value)
	}
}

func TestParseExpressionChain(t *testing.T) {
	tree, err := parse(t, "kai x = 1 + 2 * 3;")
	if err != nil {
		t.Fatal(err)
	}

	val := tree.FindChild(NGlobalDeclarations).Children[0].
		FindChild(NVarInitialization).FindChild(NValues).Children[0]

	// flat left-associative chaining: ((1 + 2) * 3)
	if val.Type != NBinaryExpr || val.Value != "*" {
		t.Fatalf("got root %q %q", val.Type, val.Value)
	}
	if left := val.Children[0]; left.Type != NBinaryExpr || left.Value != "+" {
		t.Fatalf("got left %q %q", left.Type, left.Value)
	}
}

func TestParseFirstErrorWins(t *testing.T) {
	_, err := parse(t, "sol mos orbit cos")
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	serr := err.(*logging.SyntaxError)
	if serr.Col != 5 {
		t.Errorf("got error at col %d, want 5", serr.Col)
	}
}
