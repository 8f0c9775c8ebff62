package logging

import (
	"fmt"
	"sort"
	"strings"
)

// The diagnostic type tags shared by all three analysis stages.
const (
	DiagUnfinishedFlux   = "UNFINISHED_FLUX"
	DiagInvalidDelimiter = "INVALID_DELIMITER"
	DiagUnclosedString   = "UNCLOSED_STRING"
	DiagUnclosedChar     = "UNCLOSED_CHAR"
	DiagUnclosedComment  = "UNCLOSED_COMMENT"
	DiagUnrecognizedChar = "UNRECOGNIZED_CHAR"
	DiagParserError      = "PARSER_ERROR"
	DiagSemanticError    = "SEMANTIC_ERROR"
	DiagInternalError    = "INTERNAL_ERROR"
)

// Diagnostic is the single user-facing error record produced by the analysis
// pipeline.  Lexical, syntactic, and semantic errors all collapse into this
// shape at the pipeline boundary so clients only ever deal with one format.
type Diagnostic struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at line %d, col %d: %s", d.Type, d.Line, d.Col, d.Message)
}

// SyntaxError is raised by the parser on the first grammar violation.  The
// Expected set is the union of every alternative that was legal at the failure
// position, not just the last one tried.
type SyntaxError struct {
	Line       int
	Col        int
	Unexpected string
	Expected   []string
}

func (se *SyntaxError) Error() string {
	expected := make([]string, len(se.Expected))
	for i, e := range se.Expected {
		expected[i] = "'" + e + "'"
	}
	sort.Strings(expected)

	return fmt.Sprintf(
		"Syntax Error at Line %d, Col %d: Unexpected %s. Expected one of: [%s]",
		se.Line, se.Col, se.Unexpected, strings.Join(expected, ", "),
	)
}

// Diagnostic converts the syntax error into the shared diagnostic record.
func (se *SyntaxError) Diagnostic() Diagnostic {
	return Diagnostic{
		Type:    DiagParserError,
		Message: se.Error(),
		Line:    se.Line,
		Col:     se.Col,
	}
}

// SemanticError is raised by the semantic analyzer on the first violated rule.
type SemanticError struct {
	Message string
	Line    int
	Col     int
}

func (se *SemanticError) Error() string {
	return fmt.Sprintf("Semantic Error at Line %d, Col %d: %s", se.Line, se.Col, se.Message)
}

// Diagnostic converts the semantic error into the shared diagnostic record.
func (se *SemanticError) Diagnostic() Diagnostic {
	return Diagnostic{
		Type:    DiagSemanticError,
		Message: se.Message,
		Line:    se.Line,
		Col:     se.Col,
	}
}
