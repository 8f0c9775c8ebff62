package syntax

// CST node type names.  Every grammar production becomes a named node and
// every meaningful consumed token becomes a leaf.
const (
	NProgram              = "Program"
	NGlobalDeclarations   = "GlobalDeclarations"
	NFunctionDeclarations = "FunctionDeclarations"
	NVariableDeclaration  = "VariableDeclaration"
	NVarInitialization    = "VarInitialization"
	NTableDeclaration     = "TableDeclaration"
	NLocalDeclaration     = "LocalDeclaration"
	NMutability           = "Mutability"
	NDataType             = "DataType"
	NFuncDataType         = "FuncDataType"
	NFunctionDefinition   = "FunctionDefinition"
	NFuncName             = "FuncName"
	NParameters           = "Parameters"
	NParam                = "Param"
	NBlock                = "Block"
	NIfStatement          = "IfStatement"
	NCondition            = "Condition"
	NTrueBlock            = "TrueBlock"
	NElseIf               = "ElseIf"
	NElse                 = "Else"
	NWhileLoop            = "WhileLoop"
	NForLoop              = "ForLoop"
	NForInit              = "ForInit"
	NForLimit             = "ForLimit"
	NForStep              = "ForStep"
	NRepeatUntil          = "RepeatUntil"
	NBreakStatement       = "BreakStatement"
	NReturnStatement      = "ReturnStatement"
	NOutputStatement      = "OutputStatement"
	NGoto                 = "Goto"
	NLabelDeclaration     = "LabelDeclaration"
	NAssignment           = "Assignment"
	NTargets              = "Targets"
	NValues               = "Values"
	NExpressionStatement  = "ExpressionStatement"
	NEmptyStatement       = "EmptyStatement"
	NBinaryExpr           = "BinaryExpr"
	NUnaryExpr            = "UnaryExpr"
	NFunctionCall         = "FunctionCall"
	NTableAccess          = "TableAccess"
	NInputExpression      = "InputExpression"
	NIdentifier           = "Identifier"
	NLiteral              = "Literal"
	NElements             = "Elements"
)

// Node is one node of the concrete syntax tree.  The tree is built bottom-up
// by the parser and immutable once returned; the semantic analyzer reads it
// but never restructures it.
type Node struct {
	Type     string  `json:"type"`
	Value    string  `json:"value,omitempty"`
	Children []*Node `json:"children"`

	// Kind is the token kind backing a leaf node (set for literals and
	// identifiers); positions feed semantic diagnostics.  Neither is part of
	// the serialized tree.
	Kind string `json:"-"`
	Line int    `json:"-"`
	Col  int    `json:"-"`
}

// NewNode creates an interior node
func NewNode(nodeType string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{Type: nodeType, Children: children}
}

// NewValueNode creates an interior node carrying a value
func NewValueNode(nodeType, value string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{Type: nodeType, Value: value, Children: children}
}

// NewLeaf creates a leaf node from a consumed token
func NewLeaf(nodeType string, tok Token) *Node {
	return &Node{
		Type:     nodeType,
		Value:    tok.Value,
		Children: []*Node{},
		Kind:     tok.Kind,
		Line:     tok.Line,
		Col:      tok.Col,
	}
}

// FindChild returns the first direct child of the given type, or nil
func (n *Node) FindChild(nodeType string) *Node {
	for _, child := range n.Children {
		if child.Type == nodeType {
			return child
		}
	}
	return nil
}
