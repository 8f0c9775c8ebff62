package walk

import (
	"soluna/syntax"
	"soluna/typing"
)

// walkDeclaration dispatches a variable or table declaration.  Undecorated
// declarations land in the global scope regardless of where they appear; only
// a local qualifier places the symbol in the innermost scope.
func (w *Walker) walkDeclaration(decl *syntax.Node, isLocal bool) error {
	if decl.Type == syntax.NTableDeclaration {
		return w.walkTableDec(decl, isLocal)
	}
	return w.walkVarDec(decl, isLocal)
}

// declare places a symbol per the declaration context, rejecting duplicates
// within the chosen frame
func (w *Walker) declare(sym *Symbol, isLocal bool, line, col int) error {
	ok := false
	if isLocal {
		ok = w.table.DeclareLocal(sym)
	} else {
		ok = w.table.DeclareGlobal(sym)
	}

	if !ok {
		return semErr(line, col, "Variable '%s' is already declared in this scope.", sym.Name)
	}
	return nil
}

func (w *Walker) walkVarDec(decl *syntax.Node, isLocal bool) error {
	constant := decl.FindChild(syntax.NMutability) != nil
	dtype := typing.FromName(decl.FindChild(syntax.NDataType).Value)
	init := decl.FindChild(syntax.NVarInitialization)

	var idents []*syntax.Node
	for _, child := range init.Children {
		if child.Type == syntax.NIdentifier {
			idents = append(idents, child)
		}
	}

	for _, ident := range idents {
		if err := validateName(ident.Value, ident.Line, ident.Col); err != nil {
			return err
		}
	}

	values := init.FindChild(syntax.NValues)
	if values == nil {
		for _, ident := range idents {
			sym := &Symbol{Name: ident.Value, Type: dtype, Constant: constant, Folded: "unknown"}
			if err := w.declare(sym, isLocal, ident.Line, ident.Col); err != nil {
				return err
			}
		}
		return nil
	}

	if len(values.Children) != len(idents) {
		first := idents[0]
		return semErr(first.Line, first.Col,
			"Cannot initialize %d variables with %d values.", len(idents), len(values.Children))
	}

	for i, ident := range idents {
		val := values.Children[i]

		if constant && containsInput(val) {
			return semErr(ident.Line, ident.Col,
				"Constant '%s' cannot be initialized from runtime input.", ident.Value)
		}

		t, folded, err := w.typeOf(val)
		if err != nil {
			return err
		}

		if !typing.CoerceTo(dtype, t, folded) {
			return semErr(ident.Line, ident.Col,
				"Type mismatch: cannot assign '%s' to '%s'.", t.Repr(), dtype.Repr())
		}

		sym := &Symbol{Name: ident.Value, Type: dtype, Constant: constant, Folded: folded}
		if err := w.declare(sym, isLocal, ident.Line, ident.Col); err != nil {
			return err
		}
	}

	return nil
}

// walkTableDec checks a table declaration: every initializer element must
// coerce to the declared element type, and sub-declarations (functions and
// variables inside the literal) are only legal under the dynamic element type
func (w *Walker) walkTableDec(decl *syntax.Node, isLocal bool) error {
	elemType := typing.FromName(decl.FindChild(syntax.NDataType).Value)
	ident := decl.FindChild(syntax.NIdentifier)

	if err := validateName(ident.Value, ident.Line, ident.Col); err != nil {
		return err
	}

	elements := decl.FindChild(syntax.NElements)
	if err := w.walkTableElements(elements, elemType); err != nil {
		return err
	}

	sym := &Symbol{
		Name:     ident.Value,
		Type:     typing.Let,
		Folded:   "unknown",
		IsTable:  true,
		ElemType: elemType,
	}
	return w.declare(sym, isLocal, ident.Line, ident.Col)
}

func (w *Walker) walkTableElements(elements *syntax.Node, elemType typing.DataType) error {
	for _, elem := range elements.Children {
		switch elem.Type {
		case syntax.NElements:
			// nested tables carry the same element type
			if err := w.walkTableElements(elem, elemType); err != nil {
				return err
			}

		case syntax.NFunctionDefinition:
			if elemType != typing.Let {
				name := elem.FindChild(syntax.NFuncName)
				return semErr(name.Line, name.Col,
					"A table of type '%s' cannot contain declarations.", elemType.Repr())
			}
			if err := w.hoistFuncSignature(elem); err != nil {
				return err
			}
			if err := w.walkFuncBody(elem); err != nil {
				return err
			}

		case syntax.NVariableDeclaration:
			if elemType != typing.Let {
				name := elem.FindChild(syntax.NVarInitialization).FindChild(syntax.NIdentifier)
				return semErr(name.Line, name.Col,
					"A table of type '%s' cannot contain declarations.", elemType.Repr())
			}
			if err := w.walkVarDec(elem, false); err != nil {
				return err
			}

		default:
			t, folded, err := w.typeOf(elem)
			if err != nil {
				return err
			}
			if !typing.CoerceTo(elemType, t, folded) {
				return semErr(elem.Line, elem.Col,
					"Type mismatch: cannot assign '%s' to '%s'.", t.Repr(), elemType.Repr())
			}
		}
	}

	return nil
}

// walkAssignment checks both assignment shapes: table writes recheck the
// element-type coercion, variable writes enforce declaration, constantness,
// and slot-type coercion
func (w *Walker) walkAssignment(stmt *syntax.Node) error {
	first := stmt.Children[0]

	if first.Type == syntax.NTableAccess {
		elemType, err := w.walkTableTarget(first)
		if err != nil {
			return err
		}

		t, folded, err := w.typeOf(stmt.Children[1])
		if err != nil {
			return err
		}
		if !typing.CoerceTo(elemType, t, folded) {
			return semErr(stmt.Line, stmt.Col,
				"Type mismatch: cannot assign '%s' to '%s'.", t.Repr(), elemType.Repr())
		}
		return nil
	}

	targets := first.Children
	values := stmt.Children[1].Children

	if len(values) != len(targets) {
		return semErr(stmt.Line, stmt.Col,
			"Cannot assign %d values to %d targets.", len(values), len(targets))
	}

	for i, target := range targets {
		sym, ok := w.table.Lookup(target.Value)
		if !ok {
			return semErr(target.Line, target.Col, "Variable '%s' is not declared.", target.Value)
		}
		if sym.IsFunction {
			return semErr(target.Line, target.Col, "Cannot assign to function '%s'.", target.Value)
		}
		if sym.Constant {
			return semErr(target.Line, target.Col, "Cannot assign to constant '%s'.", target.Value)
		}

		t, folded, err := w.typeOf(values[i])
		if err != nil {
			return err
		}
		if !typing.CoerceTo(sym.Type, t, folded) {
			return semErr(target.Line, target.Col,
				"Type mismatch: cannot assign '%s' to '%s'.", t.Repr(), sym.Type.Repr())
		}

		// compound operators mix the old value in, so the result is no
		// longer statically known
		if stmt.Value == "=" {
			sym.Folded = folded
		} else {
			sym.Folded = "unknown"
		}
	}

	return nil
}

// walkTableTarget resolves the base identifier of an indexed write and types
// each index expression, returning the table's element type
func (w *Walker) walkTableTarget(access *syntax.Node) (typing.DataType, error) {
	base := access.Children[0]

	var elemType typing.DataType
	switch base.Type {
	case syntax.NIdentifier:
		sym, ok := w.table.Lookup(base.Value)
		if !ok {
			return typing.Unknown, semErr(base.Line, base.Col,
				"Variable '%s' is not declared.", base.Value)
		}
		if !sym.IsTable && sym.Type != typing.Let {
			return typing.Unknown, semErr(base.Line, base.Col,
				"'%s' is not a table.", base.Value)
		}
		if sym.Constant {
			return typing.Unknown, semErr(base.Line, base.Col,
				"Cannot assign to constant '%s'.", base.Value)
		}
		elemType = sym.ElemType
		if !sym.IsTable {
			elemType = typing.Let
		}

	case syntax.NTableAccess:
		// nested tables hold dynamic elements
		if _, err := w.walkTableTarget(base); err != nil {
			return typing.Unknown, err
		}
		elemType = typing.Let
	}

	t, folded, err := w.typeOf(access.Children[1])
	if err != nil {
		return typing.Unknown, err
	}
	if !typing.CoerceTo(typing.Kai, t, folded) {
		return typing.Unknown, semErr(access.Line, access.Col,
			"Table index must be an integer.")
	}

	return elemType, nil
}
