package walk

import (
	"strings"

	"soluna/syntax"
	"soluna/typing"
)

// boolOps force the whole expression to the boolean type
var boolOps = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"&&": true, "||": true, "and": true, "or": true,
}

// typeOf types an expression and folds it to a static string value where
// possible; "unknown" marks a value only determinable at runtime
func (w *Walker) typeOf(expr *syntax.Node) (typing.DataType, string, error) {
	switch expr.Type {
	case syntax.NLiteral:
		return w.typeOfLiteral(expr)

	case syntax.NIdentifier:
		sym, ok := w.table.Lookup(expr.Value)
		if !ok {
			return typing.Unknown, "", semErr(expr.Line, expr.Col,
				"Variable '%s' is not declared.", expr.Value)
		}
		return sym.Type, sym.Folded, nil

	case syntax.NBinaryExpr:
		return w.typeOfBinary(expr)

	case syntax.NUnaryExpr:
		return w.typeOfUnary(expr)

	case syntax.NFunctionCall:
		return w.typeOfCall(expr)

	case syntax.NTableAccess:
		return w.typeOfTableAccess(expr)

	case syntax.NInputExpression:
		return typing.Let, "unknown", nil
	}

	return typing.Unknown, "unknown", nil
}

func (w *Walker) typeOfLiteral(expr *syntax.Node) (typing.DataType, string, error) {
	switch expr.Kind {
	case syntax.KindInteger:
		return typing.Kai, expr.Value, nil
	case syntax.KindFloat:
		return typing.Flux, expr.Value, nil
	case syntax.KindDouble:
		return typing.Aster, expr.Value, nil
	case syntax.KindChar:
		return typing.Blaze, strings.Trim(expr.Value, "'"), nil
	case syntax.KindString:
		return typing.Selene, strings.Trim(expr.Value, "\""), nil
	case "iris", "sage":
		return typing.Lani, expr.Value, nil
	}
	return typing.Unknown, "unknown", nil
}

// typeOfBinary applies the operator result rules: concatenation forces the
// string type, relational and logical operators force boolean, and arithmetic
// yields the widest numeric operand type
func (w *Walker) typeOfBinary(expr *syntax.Node) (typing.DataType, string, error) {
	left, right := expr.Children[0], expr.Children[1]

	// a literal zero divisor is always an error
	if (expr.Value == "/" || expr.Value == "//") &&
		right.Type == syntax.NLiteral && right.Value == "0" {
		return typing.Unknown, "", semErr(right.Line, right.Col, "Division by zero.")
	}

	lt, lf, err := w.typeOf(left)
	if err != nil {
		return typing.Unknown, "", err
	}
	rt, rf, err := w.typeOf(right)
	if err != nil {
		return typing.Unknown, "", err
	}

	if expr.Value == ".." {
		folded := "unknown"
		if lf != "unknown" && rf != "unknown" {
			folded = lf + rf
		}
		return typing.Selene, folded, nil
	}

	if boolOps[expr.Value] {
		return typing.Lani, "unknown", nil
	}

	if lt.IsNumeric() && rt.IsNumeric() {
		return typing.Widest(lt, rt), "unknown", nil
	}

	// a dynamic or undetermined operand leaves the result undetermined
	return typing.Unknown, "unknown", nil
}

func (w *Walker) typeOfUnary(expr *syntax.Node) (typing.DataType, string, error) {
	operand := expr.Children[0]

	switch expr.Value {
	case "!", "not":
		if _, _, err := w.typeOf(operand); err != nil {
			return typing.Unknown, "", err
		}
		return typing.Lani, "unknown", nil

	case "#":
		if _, ok := w.table.Lookup(operand.Value); !ok {
			return typing.Unknown, "", semErr(operand.Line, operand.Col,
				"Variable '%s' is not declared.", operand.Value)
		}
		return typing.Kai, "unknown", nil
	}

	// increment and decrement, prefix or postfix
	t, _, err := w.typeOf(operand)
	if err != nil {
		return typing.Unknown, "", err
	}
	if !t.IsNumeric() && t != typing.Let && t != typing.Unknown {
		return typing.Unknown, "", semErr(expr.Line, expr.Col,
			"Operator '%s' requires a numeric operand.", strings.TrimPrefix(expr.Value, "postfix "))
	}

	if operand.Type == syntax.NIdentifier {
		if sym, ok := w.table.Lookup(operand.Value); ok {
			sym.Folded = "unknown"
		}
	}

	return t, "unknown", nil
}

// typeOfCall checks a call site for existence, callability, argument count,
// and per-argument coercion against the declared parameter types
func (w *Walker) typeOfCall(expr *syntax.Node) (typing.DataType, string, error) {
	sym, ok := w.table.Lookup(expr.Value)
	if !ok {
		return typing.Unknown, "", semErr(expr.Line, expr.Col,
			"Function '%s' is not declared.", expr.Value)
	}
	if !sym.IsFunction {
		return typing.Unknown, "", semErr(expr.Line, expr.Col,
			"'%s' is not a function.", expr.Value)
	}

	if len(expr.Children) != len(sym.Params) {
		return typing.Unknown, "", semErr(expr.Line, expr.Col,
			"Function '%s' expects %d arguments but got %d.",
			expr.Value, len(sym.Params), len(expr.Children))
	}

	for i, arg := range expr.Children {
		t, folded, err := w.typeOf(arg)
		if err != nil {
			return typing.Unknown, "", err
		}
		if !typing.CoerceTo(sym.Params[i], t, folded) {
			return typing.Unknown, "", semErr(arg.Line, arg.Col,
				"Type mismatch: cannot assign '%s' to '%s'.", t.Repr(), sym.Params[i].Repr())
		}
	}

	return sym.ReturnType, "unknown", nil
}

func (w *Walker) typeOfTableAccess(expr *syntax.Node) (typing.DataType, string, error) {
	base := expr.Children[0]

	elemType := typing.Let
	switch base.Type {
	case syntax.NIdentifier:
		sym, ok := w.table.Lookup(base.Value)
		if !ok {
			return typing.Unknown, "", semErr(base.Line, base.Col,
				"Variable '%s' is not declared.", base.Value)
		}
		if !sym.IsTable && sym.Type != typing.Let {
			return typing.Unknown, "", semErr(base.Line, base.Col,
				"'%s' is not a table.", base.Value)
		}
		if sym.IsTable {
			elemType = sym.ElemType
		}

	case syntax.NTableAccess:
		if _, _, err := w.typeOfTableAccess(base); err != nil {
			return typing.Unknown, "", err
		}
	}

	t, folded, err := w.typeOf(expr.Children[1])
	if err != nil {
		return typing.Unknown, "", err
	}
	if !typing.CoerceTo(typing.Kai, t, folded) {
		return typing.Unknown, "", semErr(expr.Line, expr.Col, "Table index must be an integer.")
	}

	return elemType, "unknown", nil
}

// containsInput reports whether any subexpression reads runtime input
func containsInput(expr *syntax.Node) bool {
	if expr.Type == syntax.NInputExpression {
		return true
	}
	for _, child := range expr.Children {
		if containsInput(child) {
			return true
		}
	}
	return false
}
