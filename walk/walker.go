package walk

import (
	"soluna/syntax"
	"soluna/typing"
)

// Walker validates a parsed program against Soluna's semantic rules: symbol
// declaration and lookup, type coercion, constantness, loop placement, and
// function contracts.  Analysis stops at the first violation.
type Walker struct {
	table *SymbolTable

	// loopDepth gates warp statements
	loopDepth int

	// fnReturns is the stack of enclosing function return types; returnSeen
	// tracks whether the current function body returned on some path
	fnReturns  []typing.DataType
	returnSeen bool
}

// NewWalker creates a walker with a fresh symbol table
func NewWalker() *Walker {
	return &Walker{table: NewSymbolTable()}
}

// Analyze walks the program tree.  Function signatures are hoisted into the
// global scope first so forward calls between functions resolve.
func (w *Walker) Analyze(root *syntax.Node) error {
	globals := root.FindChild(syntax.NGlobalDeclarations)
	funcs := root.FindChild(syntax.NFunctionDeclarations)
	body := root.FindChild(syntax.NBlock)

	if funcs != nil {
		for _, fn := range funcs.Children {
			if err := w.hoistFuncSignature(fn); err != nil {
				return err
			}
		}
	}

	if globals != nil {
		for _, decl := range globals.Children {
			if err := w.walkDeclaration(decl, false); err != nil {
				return err
			}
		}
	}

	if funcs != nil {
		for _, fn := range funcs.Children {
			if err := w.walkFuncBody(fn); err != nil {
				return err
			}
		}
	}

	if body != nil {
		if err := w.walkBlock(body); err != nil {
			return err
		}
	}

	return nil
}

// hoistFuncSignature registers a function's name, return type, and parameter
// types into the global scope before any body is walked
func (w *Walker) hoistFuncSignature(fn *syntax.Node) error {
	name := fn.FindChild(syntax.NFuncName)
	if err := validateName(name.Value, name.Line, name.Col); err != nil {
		return err
	}

	ftype := fn.FindChild(syntax.NFuncDataType)
	retType := typing.Void
	if ftype.Value != "void" {
		retType = typing.FromName(ftype.Children[0].Value)
	}

	var params []typing.DataType
	for _, param := range fn.FindChild(syntax.NParameters).Children {
		params = append(params, typing.FromName(param.FindChild(syntax.NDataType).Value))
	}

	sym := &Symbol{
		Name:       name.Value,
		Type:       typing.Let,
		Folded:     "unknown",
		IsFunction: true,
		ReturnType: retType,
		Params:     params,
	}

	if !w.table.DeclareGlobal(sym) {
		return semErr(name.Line, name.Col, "Function '%s' is already declared.", name.Value)
	}

	return nil
}

// walkFuncBody checks one function definition whose signature is already
// hoisted: parameters become scope-local symbols, and a non-void function
// must return somewhere in its body
func (w *Walker) walkFuncBody(fn *syntax.Node) error {
	name := fn.FindChild(syntax.NFuncName)
	sym, _ := w.table.Lookup(name.Value)

	w.table.PushScope()
	defer w.table.PopScope()

	for _, param := range fn.FindChild(syntax.NParameters).Children {
		pname := param.FindChild(syntax.NIdentifier)
		if err := validateName(pname.Value, pname.Line, pname.Col); err != nil {
			return err
		}

		psym := &Symbol{
			Name:   pname.Value,
			Type:   typing.FromName(param.FindChild(syntax.NDataType).Value),
			Folded: "unknown",
		}
		if !w.table.DeclareLocal(psym) {
			return semErr(pname.Line, pname.Col, "Parameter '%s' is already declared.", pname.Value)
		}
	}

	w.fnReturns = append(w.fnReturns, sym.ReturnType)
	prevSeen := w.returnSeen
	w.returnSeen = false

	err := w.walkBlock(fn.FindChild(syntax.NBlock))

	returned := w.returnSeen
	w.returnSeen = prevSeen
	w.fnReturns = w.fnReturns[:len(w.fnReturns)-1]

	if err != nil {
		return err
	}

	if sym.ReturnType != typing.Void && !returned {
		return semErr(name.Line, name.Col, "Function '%s' must return a value of type '%s'.",
			name.Value, sym.ReturnType.Repr())
	}

	return nil
}

// walkBlock walks a statement list in the current scope
func (w *Walker) walkBlock(block *syntax.Node) error {
	for _, stmt := range block.Children {
		if err := w.walkStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// walkScopedBlock walks a statement list inside its own scope frame
func (w *Walker) walkScopedBlock(block *syntax.Node) error {
	w.table.PushScope()
	defer w.table.PopScope()
	return w.walkBlock(block)
}

func (w *Walker) walkStatement(stmt *syntax.Node) error {
	switch stmt.Type {
	case syntax.NVariableDeclaration, syntax.NTableDeclaration:
		return w.walkDeclaration(stmt, false)

	case syntax.NLocalDeclaration:
		return w.walkDeclaration(stmt.Children[0], true)

	case syntax.NIfStatement:
		return w.walkIfStatement(stmt)

	case syntax.NWhileLoop:
		return w.walkWhileLoop(stmt)

	case syntax.NForLoop:
		return w.walkForLoop(stmt)

	case syntax.NRepeatUntil:
		return w.walkRepeatUntil(stmt)

	case syntax.NBreakStatement:
		if w.loopDepth == 0 {
			return semErr(stmt.Line, stmt.Col, "'warp' used outside of a loop.")
		}
		return nil

	case syntax.NReturnStatement:
		return w.walkReturn(stmt)

	case syntax.NOutputStatement:
		_, _, err := w.typeOf(stmt.Children[0])
		return err

	case syntax.NAssignment:
		return w.walkAssignment(stmt)

	case syntax.NExpressionStatement:
		_, _, err := w.typeOf(stmt.Children[0])
		return err

	case syntax.NGoto, syntax.NLabelDeclaration, syntax.NEmptyStatement:
		return nil
	}

	return nil
}

func (w *Walker) walkIfStatement(stmt *syntax.Node) error {
	for _, child := range stmt.Children {
		switch child.Type {
		case syntax.NCondition:
			if _, _, err := w.typeOf(child.Children[0]); err != nil {
				return err
			}

		case syntax.NTrueBlock:
			if err := w.walkScopedBlock(child.Children[0]); err != nil {
				return err
			}

		case syntax.NElseIf:
			if _, _, err := w.typeOf(child.FindChild(syntax.NCondition).Children[0]); err != nil {
				return err
			}
			if err := w.walkScopedBlock(child.FindChild(syntax.NBlock)); err != nil {
				return err
			}

		case syntax.NElse:
			if err := w.walkScopedBlock(child.Children[0]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *Walker) walkWhileLoop(stmt *syntax.Node) error {
	if _, _, err := w.typeOf(stmt.FindChild(syntax.NCondition).Children[0]); err != nil {
		return err
	}

	w.loopDepth++
	defer func() { w.loopDepth-- }()

	return w.walkScopedBlock(stmt.FindChild(syntax.NBlock))
}

func (w *Walker) walkRepeatUntil(stmt *syntax.Node) error {
	w.loopDepth++
	err := w.walkScopedBlock(stmt.FindChild(syntax.NBlock))
	w.loopDepth--
	if err != nil {
		return err
	}

	_, _, err = w.typeOf(stmt.FindChild(syntax.NCondition).Children[0])
	return err
}

// walkForLoop checks the induction variable (a fresh kai declaration or an
// existing integer variable), the limit, and the optional step, then walks
// the body inside a loop scope
func (w *Walker) walkForLoop(stmt *syntax.Node) error {
	init := stmt.FindChild(syntax.NForInit)
	ident := init.FindChild(syntax.NIdentifier)

	w.table.PushScope()
	defer w.table.PopScope()

	if init.FindChild(syntax.NDataType) != nil {
		// fresh declaration: always the integer type, scoped to the loop
		if err := validateName(ident.Value, ident.Line, ident.Col); err != nil {
			return err
		}

		initVal := init.Children[len(init.Children)-1]
		t, folded, err := w.typeOf(initVal)
		if err != nil {
			return err
		}
		if !typing.CoerceTo(typing.Kai, t, folded) {
			return semErr(ident.Line, ident.Col,
				"For-loop variable '%s' must be initialized with an integer.", ident.Value)
		}

		w.table.DeclareLocal(&Symbol{Name: ident.Value, Type: typing.Kai, Folded: folded})
	} else {
		sym, ok := w.table.Lookup(ident.Value)
		if !ok {
			return semErr(ident.Line, ident.Col, "Variable '%s' is not declared.", ident.Value)
		}
		if !typing.CoerceTo(typing.Kai, sym.Type, sym.Folded) {
			return semErr(ident.Line, ident.Col,
				"For-loop variable '%s' must be an integer.", ident.Value)
		}

		if len(init.Children) > 1 {
			t, folded, err := w.typeOf(init.Children[len(init.Children)-1])
			if err != nil {
				return err
			}
			if !typing.CoerceTo(typing.Kai, t, folded) {
				return semErr(ident.Line, ident.Col,
					"For-loop variable '%s' must be initialized with an integer.", ident.Value)
			}
			sym.Folded = folded
		}
	}

	limit := stmt.FindChild(syntax.NForLimit)
	t, folded, err := w.typeOf(limit.Children[0])
	if err != nil {
		return err
	}
	if !typing.CoerceTo(typing.Kai, t, folded) {
		return semErr(stmt.Line, stmt.Col, "For-loop limit must be an integer.")
	}

	if step := stmt.FindChild(syntax.NForStep); step != nil {
		t, folded, err := w.typeOf(step.Children[0])
		if err != nil {
			return err
		}
		if !typing.CoerceTo(typing.Kai, t, folded) {
			return semErr(stmt.Line, stmt.Col, "For-loop step must be an integer.")
		}
	}

	w.loopDepth++
	defer func() { w.loopDepth-- }()

	return w.walkBlock(stmt.FindChild(syntax.NBlock))
}

func (w *Walker) walkReturn(stmt *syntax.Node) error {
	if len(w.fnReturns) == 0 {
		return semErr(stmt.Line, stmt.Col, "'zara' used outside of a function.")
	}

	retType := w.fnReturns[len(w.fnReturns)-1]

	if len(stmt.Children) == 0 {
		if retType != typing.Void {
			return semErr(stmt.Line, stmt.Col,
				"Function must return a value of type '%s'.", retType.Repr())
		}
		w.returnSeen = true
		return nil
	}

	if retType == typing.Void {
		return semErr(stmt.Line, stmt.Col, "Cannot return a value from a void function.")
	}

	t, folded, err := w.typeOf(stmt.Children[0])
	if err != nil {
		return err
	}
	if !typing.CoerceTo(retType, t, folded) {
		return semErr(stmt.Line, stmt.Col,
			"Type mismatch: cannot return '%s' from a function of type '%s'.",
			t.Repr(), retType.Repr())
	}

	w.returnSeen = true
	return nil
}
