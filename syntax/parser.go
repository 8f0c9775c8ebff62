package syntax

import (
	"soluna/logging"
)

// Predict sets for the parser's choice points.
var (
	// dataTypes are the declarable value types
	dataTypes = map[string]bool{
		"kai":    true,
		"aster":  true,
		"flux":   true,
		"selene": true,
		"blaze":  true,
		"lani":   true,
		"let":    true,
	}

	// declStarters begin a variable or table declaration
	declStarters = map[string]bool{
		"zeta":   true,
		"kai":    true,
		"aster":  true,
		"flux":   true,
		"selene": true,
		"blaze":  true,
		"lani":   true,
		"let":    true,
		"hubble": true,
	}

	// blockEnders close a statement list without belonging to it
	blockEnders = map[string]bool{
		"mos":  true,
		"wane": true,
		"cos":  true,
	}

	// generalOps are the flat binary expression operators
	generalOps = map[string]bool{
		"+":   true,
		"-":   true,
		"*":   true,
		"/":   true,
		"//":  true,
		"%":   true,
		"^":   true,
		"&&":  true,
		"||":  true,
		"and": true,
		"or":  true,
		"==":  true,
		"!=":  true,
		">":   true,
		"<":   true,
		">=":  true,
		"<=":  true,
		"..":  true,
	}

	// assignOps are the simple and compound assignment operators
	assignOps = map[string]bool{
		"=":  true,
		"+=": true,
		"-=": true,
		"*=": true,
		"/=": true,
		"%=": true,
	}
)

// statementStarters is the full expected set reported when no statement
// alternative matches
var statementStarters = []string{
	"sol", "orbit", "phase", "wax", "warp", "zara", "lumina", "nova", "lumen",
	"leo", "label", "local", ";", "identifier", "!", "not", "++", "--",
	"zeta", "kai", "aster", "flux", "selene", "blaze", "lani", "let", "hubble", "void",
}

var factorStarters = []string{
	"identifier", "integer", "float", "double", "char", "string",
	"iris", "sage", "lumina", "(", "!", "not", "++", "--", "#",
}

// Parser is a recursive-descent engine over a classified token stream.  One
// function per nonterminal; choice points consult predict sets; the first
// grammar violation aborts the parse with a SyntaxError carrying the union of
// the alternatives that were legal at that position.
type Parser struct {
	tokens []Token
	cursor int
}

// NewParser creates a parser over the token stream, dropping comment tokens
func NewParser(tokens []Token) *Parser {
	clean := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != KindComment {
			clean = append(clean, tok)
		}
	}
	return &Parser{tokens: clean}
}

func (p *Parser) current() *Token {
	if p.cursor < len(p.tokens) {
		return &p.tokens[p.cursor]
	}
	return nil
}

func (p *Parser) peek(offset int) *Token {
	if p.cursor+offset < len(p.tokens) {
		return &p.tokens[p.cursor+offset]
	}
	return nil
}

// at reports whether the current token's kind is any of the given kinds
func (p *Parser) at(kinds ...string) bool {
	tok := p.current()
	if tok == nil {
		return false
	}
	for _, k := range kinds {
		if tok.Kind == k {
			return true
		}
	}
	return false
}

// fail builds the syntax error for the current position with the full set of
// alternatives that would have been accepted
func (p *Parser) fail(expected ...string) error {
	tok := p.current()
	if tok == nil {
		line, col := 0, 0
		if len(p.tokens) > 0 {
			last := p.tokens[len(p.tokens)-1]
			line, col = last.Line, last.Col+len(last.Value)
		}
		return &logging.SyntaxError{
			Line:       line,
			Col:        col,
			Unexpected: "End of Input",
			Expected:   expected,
		}
	}

	return &logging.SyntaxError{
		Line:       tok.Line,
		Col:        tok.Col,
		Unexpected: "'" + tok.Value + "'",
		Expected:   expected,
	}
}

// eat consumes the current token if it has the expected kind
func (p *Parser) eat(kind string) (Token, error) {
	tok := p.current()
	if tok == nil || tok.Kind != kind {
		return Token{}, p.fail(kind)
	}
	p.cursor++
	return *tok, nil
}

// Parse consumes the whole token stream and returns the program CST
func (p *Parser) Parse() (*Node, error) {
	globals, err := p.parseGlobalDeclarations()
	if err != nil {
		return nil, err
	}

	funcs, err := p.parseFunctionDeclarations()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if p.current() != nil {
		return nil, p.fail(statementStarters...)
	}

	return NewNode(NProgram, globals, funcs, body), nil
}

// atFunctionHeader checks the two-token lookahead that separates a function
// definition (type identifier '(') from a variable declaration
func (p *Parser) atFunctionHeader() bool {
	tok := p.current()
	if tok == nil || (!dataTypes[tok.Kind] && tok.Kind != "void") {
		return false
	}

	name, paren := p.peek(1), p.peek(2)
	return name != nil && name.Kind == KindIdentifier && paren != nil && paren.Kind == "("
}

func (p *Parser) parseGlobalDeclarations() (*Node, error) {
	node := NewNode(NGlobalDeclarations)

	for p.current() != nil && declStarters[p.current().Kind] {
		if p.atFunctionHeader() {
			break
		}

		decl, err := p.parseDecAndInit()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, decl)
	}

	return node, nil
}

func (p *Parser) parseFunctionDeclarations() (*Node, error) {
	node := NewNode(NFunctionDeclarations)

	for p.atFunctionHeader() {
		fn, err := p.parseFuncDef()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, fn)
	}

	return node, nil
}

func (p *Parser) parseDecAndInit() (*Node, error) {
	if p.at("hubble") {
		return p.parseTableDec()
	}
	return p.parseVarDec()
}

func (p *Parser) parseVarDec() (*Node, error) {
	node := NewNode(NVariableDeclaration)

	if p.at("zeta") {
		tok, _ := p.eat("zeta")
		node.Children = append(node.Children, NewValueNode(NMutability, tok.Value))
	}

	dtype, err := p.parseDataType()
	if err != nil {
		return nil, err
	}

	init, err := p.parseVarInit()
	if err != nil {
		return nil, err
	}

	node.Children = append(node.Children, dtype, init)
	return node, nil
}

func (p *Parser) parseDataType() (*Node, error) {
	tok := p.current()
	if tok == nil || !dataTypes[tok.Kind] {
		return nil, p.fail("kai", "aster", "flux", "selene", "blaze", "lani", "let")
	}

	p.cursor++
	return NewValueNode(NDataType, tok.Value), nil
}

// parseVarInit parses `identifier {, identifier} [= value {, value}] ;`
func (p *Parser) parseVarInit() (*Node, error) {
	node := NewNode(NVarInitialization)

	ident, err := p.eat(KindIdentifier)
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, NewLeaf(NIdentifier, ident))

	for p.at(",") {
		p.cursor++
		ident, err := p.eat(KindIdentifier)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, NewLeaf(NIdentifier, ident))
	}

	if !p.at("=") && !p.at(";") {
		return nil, p.fail(",", "=", ";")
	}

	if p.at("=") {
		p.cursor++

		values := NewNode(NValues)
		for {
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			values.Children = append(values.Children, val)

			if !p.at(",") {
				break
			}
			p.cursor++
		}
		node.Children = append(node.Children, values)
	}

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	return node, nil
}

func (p *Parser) parseTableDec() (*Node, error) {
	hubble, _ := p.eat("hubble")

	dtype, err := p.parseDataType()
	if err != nil {
		return nil, err
	}

	identTok, err := p.eat(KindIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat("="); err != nil {
		return nil, err
	}

	elements, err := p.parseTableElements()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	node := NewNode(NTableDeclaration, dtype, NewLeaf(NIdentifier, identTok), elements)
	node.Line, node.Col = hubble.Line, hubble.Col
	return node, nil
}

// parseTableElements parses a braced initializer list: scalar expressions,
// nested tables, or sub-declarations (functions and variables)
func (p *Parser) parseTableElements() (*Node, error) {
	if _, err := p.eat("{"); err != nil {
		return nil, err
	}

	elements := NewNode(NElements)
	for !p.at("}") {
		elem, err := p.parseTableElement()
		if err != nil {
			return nil, err
		}
		elements.Children = append(elements.Children, elem)

		if !p.at(",") {
			break
		}
		p.cursor++
	}

	if _, err := p.eat("}"); err != nil {
		return nil, err
	}

	return elements, nil
}

func (p *Parser) parseTableElement() (*Node, error) {
	if p.at("{") {
		return p.parseTableElements()
	}

	if p.atFunctionHeader() {
		return p.parseFuncDef()
	}

	if p.at("zeta") || (p.current() != nil && dataTypes[p.current().Kind] &&
		p.peek(1) != nil && p.peek(1).Kind == KindIdentifier) {
		return p.parseTableVarDec()
	}

	return p.parseExpression()
}

// parseTableVarDec parses a variable declaration inside a table literal; the
// trailing semicolon is omitted there because commas separate elements
func (p *Parser) parseTableVarDec() (*Node, error) {
	node := NewNode(NVariableDeclaration)

	if p.at("zeta") {
		tok, _ := p.eat("zeta")
		node.Children = append(node.Children, NewValueNode(NMutability, tok.Value))
	}

	dtype, err := p.parseDataType()
	if err != nil {
		return nil, err
	}

	init := NewNode(NVarInitialization)
	ident, err := p.eat(KindIdentifier)
	if err != nil {
		return nil, err
	}
	init.Children = append(init.Children, NewLeaf(NIdentifier, ident))

	if p.at("=") {
		p.cursor++
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		init.Children = append(init.Children, NewNode(NValues, val))
	}

	node.Children = append(node.Children, dtype, init)
	return node, nil
}

func (p *Parser) parseFuncDef() (*Node, error) {
	var ftype *Node
	if p.at("void") {
		tok, _ := p.eat("void")
		ftype = NewValueNode(NFuncDataType, tok.Value)
	} else {
		dtype, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		ftype = NewNode(NFuncDataType, dtype)
	}

	nameTok, err := p.eat(KindIdentifier)
	if err != nil {
		return nil, err
	}
	name := NewLeaf(NFuncName, nameTok)

	if _, err := p.eat("("); err != nil {
		return nil, err
	}

	params := NewNode(NParameters)
	if !p.at(")") {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params.Children = append(params.Children, param)

			if !p.at(",") {
				break
			}
			p.cursor++
		}
	}

	if _, err := p.eat(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat("mos"); err != nil {
		return nil, err
	}

	node := NewNode(NFunctionDefinition, ftype, name, params, body)
	node.Line, node.Col = nameTok.Line, nameTok.Col
	return node, nil
}

func (p *Parser) parseParam() (*Node, error) {
	dtype, err := p.parseDataType()
	if err != nil {
		return nil, err
	}

	ident, err := p.eat(KindIdentifier)
	if err != nil {
		return nil, err
	}

	return NewNode(NParam, dtype, NewLeaf(NIdentifier, ident)), nil
}

// parseStatements parses a zero-or-more statement list, stopping at any
// block-ending token or end of input
func (p *Parser) parseStatements() (*Node, error) {
	block := NewNode(NBlock)

	for p.current() != nil && !blockEnders[p.current().Kind] {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Children = append(block.Children, stmt)
	}

	return block, nil
}

func (p *Parser) parseStatement() (*Node, error) {
	tok := p.current()

	switch tok.Kind {
	case "sol":
		return p.parseConditional()
	case "orbit":
		return p.parseWhileLoop()
	case "phase":
		return p.parseForLoop()
	case "wax":
		return p.parseRepeatUntil()
	case "warp":
		return p.parseBreak()
	case "zara":
		return p.parseReturn()
	case "nova", "lumen":
		return p.parseOutput()
	case "leo":
		return p.parseGoto()
	case KindLabel:
		return p.parseLabelDec()
	case "local":
		p.cursor++
		decl, err := p.parseDecAndInit()
		if err != nil {
			return nil, err
		}
		return NewNode(NLocalDeclaration, decl), nil
	case ";":
		p.cursor++
		return NewNode(NEmptyStatement), nil
	case "lumina", "!", "not", "++", "--":
		return p.parseExpressionStatement()
	case KindIdentifier:
		next := p.peek(1)
		if next != nil && next.Kind == "(" {
			return p.parseFuncCallStatement()
		}
		if next != nil && (next.Kind == "++" || next.Kind == "--") {
			return p.parseExpressionStatement()
		}
		return p.parseAssignment()
	}

	if declStarters[tok.Kind] {
		return p.parseDecAndInit()
	}

	return nil, p.fail(statementStarters...)
}

// parseCondition parses a conditional's test expression, tolerating an
// optional `cos` block opener before the body
func (p *Parser) parseCondition() (*Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.at("cos") {
		p.cursor++
	}

	return NewNode(NCondition, expr), nil
}

func (p *Parser) parseConditional() (*Node, error) {
	sol, _ := p.eat("sol")

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat("mos"); err != nil {
		return nil, err
	}

	node := NewNode(NIfStatement, cond, NewNode(NTrueBlock, body))
	node.Line, node.Col = sol.Line, sol.Col

	for p.at("soluna", "luna") {
		if p.at("soluna") {
			p.cursor++

			elifCond, err := p.parseCondition()
			if err != nil {
				return nil, err
			}

			elifBody, err := p.parseStatements()
			if err != nil {
				return nil, err
			}

			if _, err := p.eat("mos"); err != nil {
				return nil, err
			}

			node.Children = append(node.Children, NewNode(NElseIf, elifCond, elifBody))
			continue
		}

		p.cursor++

		elseBody, err := p.parseStatements()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat("mos"); err != nil {
			return nil, err
		}

		node.Children = append(node.Children, NewNode(NElse, elseBody))
		break
	}

	return node, nil
}

func (p *Parser) parseWhileLoop() (*Node, error) {
	orbit, _ := p.eat("orbit")

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat("cos"); err != nil {
		return nil, err
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat("mos"); err != nil {
		return nil, err
	}

	node := NewNode(NWhileLoop, NewNode(NCondition, expr), body)
	node.Line, node.Col = orbit.Line, orbit.Col
	return node, nil
}

// parseForLoop parses `phase <init> , <limit> [, <step>] cos <body> mos`.
// The induction variable is either freshly declared with `kai` or an
// existing identifier, optionally reinitialized.
func (p *Parser) parseForLoop() (*Node, error) {
	phase, _ := p.eat("phase")

	init := NewNode(NForInit)
	switch {
	case p.at("kai"):
		p.cursor++
		init.Children = append(init.Children, NewValueNode(NDataType, "kai"))

		ident, err := p.eat(KindIdentifier)
		if err != nil {
			return nil, err
		}
		init.Children = append(init.Children, NewLeaf(NIdentifier, ident))

		if _, err := p.eat("="); err != nil {
			return nil, err
		}

		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		init.Children = append(init.Children, val)

	case p.at(KindIdentifier):
		ident, _ := p.eat(KindIdentifier)
		init.Children = append(init.Children, NewLeaf(NIdentifier, ident))

		if p.at("=") {
			p.cursor++
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			init.Children = append(init.Children, val)
		}

	default:
		return nil, p.fail("kai", "identifier")
	}

	if _, err := p.eat(","); err != nil {
		return nil, err
	}

	limit, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	node := NewNode(NForLoop, init, NewNode(NForLimit, limit))
	node.Line, node.Col = phase.Line, phase.Col

	if p.at(",") {
		p.cursor++
		step, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, NewNode(NForStep, step))
	}

	if _, err := p.eat("cos"); err != nil {
		return nil, err
	}

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat("mos"); err != nil {
		return nil, err
	}

	node.Children = append(node.Children, body)
	return node, nil
}

func (p *Parser) parseRepeatUntil() (*Node, error) {
	wax, _ := p.eat("wax")

	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat("wane"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	node := NewNode(NRepeatUntil, body, NewNode(NCondition, expr))
	node.Line, node.Col = wax.Line, wax.Col
	return node, nil
}

func (p *Parser) parseBreak() (*Node, error) {
	warp, _ := p.eat("warp")

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	node := NewNode(NBreakStatement)
	node.Line, node.Col = warp.Line, warp.Col
	return node, nil
}

func (p *Parser) parseReturn() (*Node, error) {
	zara, _ := p.eat("zara")

	node := NewNode(NReturnStatement)
	node.Line, node.Col = zara.Line, zara.Col

	if !p.at(";") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, expr)
	}

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	return node, nil
}

func (p *Parser) parseOutput() (*Node, error) {
	out := *p.current()
	p.cursor++

	if _, err := p.eat("("); err != nil {
		return nil, err
	}

	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(")"); err != nil {
		return nil, err
	}

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	node := NewValueNode(NOutputStatement, out.Kind, arg)
	node.Line, node.Col = out.Line, out.Col
	return node, nil
}

func (p *Parser) parseGoto() (*Node, error) {
	leo, _ := p.eat("leo")

	target, err := p.eat(KindLabel)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	node := NewValueNode(NGoto, target.Value)
	node.Line, node.Col = leo.Line, leo.Col
	return node, nil
}

func (p *Parser) parseLabelDec() (*Node, error) {
	label, _ := p.eat(KindLabel)

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	node := NewValueNode(NLabelDeclaration, label.Value)
	node.Line, node.Col = label.Line, label.Col
	return node, nil
}

func (p *Parser) parseExpressionStatement() (*Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	return NewNode(NExpressionStatement, expr), nil
}

func (p *Parser) parseFuncCallStatement() (*Node, error) {
	call, err := p.parseFuncCall()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	return NewNode(NExpressionStatement, call), nil
}

// parseAssignment handles both assignment shapes behind one token of
// lookahead: `id[...]... op expr ;` for table writes and
// `id {, id} op expr {, expr} ;` for variables
func (p *Parser) parseAssignment() (*Node, error) {
	first, err := p.eat(KindIdentifier)
	if err != nil {
		return nil, err
	}

	if p.at("[") {
		target := NewLeaf(NIdentifier, first)
		for p.at("[") {
			p.cursor++

			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			if _, err := p.eat("]"); err != nil {
				return nil, err
			}

			access := NewNode(NTableAccess, target, idx)
			access.Line, access.Col = first.Line, first.Col
			target = access
		}

		op := p.current()
		if op == nil || !assignOps[op.Kind] {
			return nil, p.fail("=", "+=", "-=", "*=", "/=", "%=", "[")
		}
		p.cursor++

		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat(";"); err != nil {
			return nil, err
		}

		node := NewValueNode(NAssignment, op.Value, target, val)
		node.Line, node.Col = first.Line, first.Col
		return node, nil
	}

	targets := NewNode(NTargets, NewLeaf(NIdentifier, first))
	for p.at(",") {
		p.cursor++

		ident, err := p.eat(KindIdentifier)
		if err != nil {
			return nil, err
		}
		targets.Children = append(targets.Children, NewLeaf(NIdentifier, ident))
	}

	op := p.current()
	if op == nil || !assignOps[op.Kind] {
		return nil, p.fail(",", "=", "+=", "-=", "*=", "/=", "%=", "[", "(")
	}
	p.cursor++

	values := NewNode(NValues)
	for {
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		values.Children = append(values.Children, val)

		if !p.at(",") {
			break
		}
		p.cursor++
	}

	if _, err := p.eat(";"); err != nil {
		return nil, err
	}

	node := NewValueNode(NAssignment, op.Value, targets, values)
	node.Line, node.Col = first.Line, first.Col
	return node, nil
}

func (p *Parser) parseFuncCall() (*Node, error) {
	name, err := p.eat(KindIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat("("); err != nil {
		return nil, err
	}

	node := NewValueNode(NFunctionCall, name.Value)
	node.Line, node.Col = name.Line, name.Col

	if !p.at(")") {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, arg)

			if !p.at(",") {
				break
			}
			p.cursor++
		}
	}

	if _, err := p.eat(")"); err != nil {
		return nil, err
	}

	return node, nil
}

// parseExpression parses the flat binary expression form: factors joined by
// general operators, left associative
func (p *Parser) parseExpression() (*Node, error) {
	left, err := p.parseExprFactor()
	if err != nil {
		return nil, err
	}

	for p.current() != nil && generalOps[p.current().Kind] {
		op := *p.current()
		p.cursor++

		right, err := p.parseExprFactor()
		if err != nil {
			return nil, err
		}

		bin := NewValueNode(NBinaryExpr, op.Value, left, right)
		bin.Line, bin.Col = op.Line, op.Col
		left = bin
	}

	return left, nil
}

func (p *Parser) parseExprFactor() (*Node, error) {
	tok := p.current()
	if tok == nil {
		return nil, p.fail(factorStarters...)
	}

	switch tok.Kind {
	case "!", "not", "++", "--":
		p.cursor++

		operand, err := p.parseExprFactor()
		if err != nil {
			return nil, err
		}

		node := NewValueNode(NUnaryExpr, tok.Value, operand)
		node.Line, node.Col = tok.Line, tok.Col
		return node, nil

	case "#":
		p.cursor++

		ident, err := p.eat(KindIdentifier)
		if err != nil {
			return nil, err
		}

		node := NewValueNode(NUnaryExpr, "#", NewLeaf(NIdentifier, ident))
		node.Line, node.Col = tok.Line, tok.Col
		return node, nil
	}

	return p.parseFactorValue()
}

func (p *Parser) parseFactorValue() (*Node, error) {
	tok := p.current()
	if tok == nil {
		return nil, p.fail(factorStarters...)
	}

	switch tok.Kind {
	case "lumina":
		return p.parseInputExpression()

	case KindIdentifier:
		next := p.peek(1)

		if next != nil && next.Kind == "(" {
			return p.parseFuncCall()
		}

		if next != nil && next.Kind == "[" {
			ident, _ := p.eat(KindIdentifier)
			target := NewLeaf(NIdentifier, ident)

			for p.at("[") {
				p.cursor++

				idx, err := p.parseExpression()
				if err != nil {
					return nil, err
				}

				if _, err := p.eat("]"); err != nil {
					return nil, err
				}

				access := NewNode(NTableAccess, target, idx)
				access.Line, access.Col = ident.Line, ident.Col
				target = access
			}

			return target, nil
		}

		if next != nil && (next.Kind == "++" || next.Kind == "--") {
			ident, _ := p.eat(KindIdentifier)
			op := *p.current()
			p.cursor++

			node := NewValueNode(NUnaryExpr, "postfix "+op.Value, NewLeaf(NIdentifier, ident))
			node.Line, node.Col = ident.Line, ident.Col
			return node, nil
		}

		ident, _ := p.eat(KindIdentifier)
		return NewLeaf(NIdentifier, ident), nil

	case KindInteger, KindFloat, KindDouble, KindChar, KindString, "iris", "sage":
		p.cursor++
		return NewLeaf(NLiteral, *tok), nil

	case "(":
		p.cursor++

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat(")"); err != nil {
			return nil, err
		}

		return expr, nil
	}

	return nil, p.fail(factorStarters...)
}

func (p *Parser) parseInputExpression() (*Node, error) {
	lumina, _ := p.eat("lumina")

	if _, err := p.eat("("); err != nil {
		return nil, err
	}

	if _, err := p.eat(")"); err != nil {
		return nil, err
	}

	node := NewNode(NInputExpression)
	node.Line, node.Col = lumina.Line, lumina.Col
	return node, nil
}
