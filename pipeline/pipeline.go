package pipeline

import (
	"fmt"

	"soluna/logging"
	"soluna/syntax"
	"soluna/walk"
)

// Result is the full outcome of analyzing one source text: the classified
// token stream, every diagnostic raised, and the parse tree when the program
// made it through the parser and analyzer.
type Result struct {
	Tokens    []syntax.Token       `json:"tokens"`
	Errors    []logging.Diagnostic `json:"errors"`
	ParseTree *syntax.Node         `json:"parseTree,omitempty"`
}

// Run analyzes one source text end to end.  Lexing always runs to completion
// and reports every lexical error it can recover past; parsing and semantic
// analysis only run on a lexically clean, nonempty token stream and stop at
// their first error.  A panic anywhere in the stages surfaces as an internal
// diagnostic rather than tearing down the caller.
func Run(source string) (res *Result) {
	res = &Result{
		Tokens: []syntax.Token{},
		Errors: []logging.Diagnostic{},
	}

	defer func() {
		if r := recover(); r != nil {
			res.ParseTree = nil
			res.Errors = append(res.Errors, logging.Diagnostic{
				Type:    logging.DiagInternalError,
				Message: fmt.Sprintf("Internal error: %v.", r),
				Line:    1,
				Col:     1,
			})
		}
	}()

	lexemes, diags := syntax.NewLexer(source).ScanAll()
	res.Tokens = syntax.Classify(lexemes)
	res.Errors = append(res.Errors, diags...)

	if len(res.Errors) > 0 || len(res.Tokens) == 0 {
		return res
	}

	tree, err := syntax.NewParser(res.Tokens).Parse()
	if err != nil {
		if serr, ok := err.(*logging.SyntaxError); ok {
			res.Errors = append(res.Errors, serr.Diagnostic())
		}
		return res
	}

	if err := walk.NewWalker().Analyze(tree); err != nil {
		if serr, ok := err.(*logging.SemanticError); ok {
			res.Errors = append(res.Errors, serr.Diagnostic())
		}
		return res
	}

	res.ParseTree = tree
	return res
}
